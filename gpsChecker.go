package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.bug.st/serial"
)

// sentences to sift through before giving up on a fix
const gpsMaxSentences = 50

type gpsChecker struct{}

// readFix opens the receiver's port and waits for one valid RMC
// sentence, returning the UTC time it carries
func (gps *gpsChecker) readFix(rt runtimeConfig) (time.Time, error) {
	device := rt.settings.GetString(sGPSPort)
	rt.logger.Printf("Reading gps time from %s", device)

	mode := &serial.Mode{BaudRate: rt.settings.GetInt(sGPSBaud)}
	port, err := serial.Open(device, mode)
	if err != nil {
		return time.Time{}, err
	}
	defer port.Close()
	port.SetReadTimeout(2 * time.Second)

	scanner := bufio.NewScanner(port)
	for i := 0; i < gpsMaxSentences && scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "$GP") && !strings.HasPrefix(line, "$GN") {
			continue
		}
		if !strings.Contains(line, "RMC") {
			continue
		}
		if t, ok := parseRMC(line); ok {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("no fix from %s", device)
}

// parseRMC pulls the UTC time out of a $GPRMC/$GNRMC sentence:
// field 1 is hhmmss.ss, field 2 is A for a valid fix, field 9 is ddmmyy
func parseRMC(line string) (time.Time, bool) {
	// drop the checksum
	if i := strings.Index(line, "*"); i >= 0 {
		line = line[:i]
	}
	parts := strings.Split(line, ",")
	if len(parts) < 10 {
		return time.Time{}, false
	}
	if parts[2] != "A" {
		return time.Time{}, false
	}

	timeStr := parts[1]
	if len(timeStr) < 6 {
		return time.Time{}, false
	}
	hh, _ := strconv.Atoi(timeStr[0:2])
	mm, _ := strconv.Atoi(timeStr[2:4])
	ss, _ := strconv.Atoi(timeStr[4:6])
	nsec := 0
	if len(timeStr) >= 8 && timeStr[6] == '.' {
		fracStr := timeStr[7:]
		if len(fracStr) > 9 {
			fracStr = fracStr[:9]
		}
		frac, _ := strconv.Atoi(fracStr)
		for i := 0; i < 9-len(fracStr); i++ {
			frac *= 10
		}
		nsec = frac
	}

	dateStr := parts[9]
	if len(dateStr) < 6 {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(dateStr[0:2])
	month, _ := strconv.Atoi(dateStr[2:4])
	year, _ := strconv.Atoi(dateStr[4:6])
	if year < 80 {
		year += 2000
	} else {
		year += 1900
	}

	return time.Date(year, time.Month(month), day, hh, mm, ss, nsec, time.UTC), true
}
