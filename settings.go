package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
)

// settings keys
const (
	sClockMode = "mode" // civil24, civil12, sidereal
	sColon     = "colon"
	sBlink     = "colon_blink"
	sTenths    = "tenths"
	sBright    = "brightness"
	sLongitude = "longitude" // degrees, east positive
	sFudge     = "fudge"
	sWake      = "wake" // timer or poll
	sPollEvery = "poll_interval"
	sDisplay   = "display" // led, term, log
	sSPIDriver = "spi_driver"
	sSPIPort   = "spi_port"
	sSPISpeed  = "spi_speed_hz"
	sSPISelect = "spi_cs"
	sSkipTest  = "skip_lamp_test"
	sDebug     = "debug_dump"
	sLogFile   = "log_file"
	sLogSize   = "log_max_size_mb"
	sLogKeep   = "log_max_backups"
	sHTTPAddr  = "http_addr"
	sHTTPAuth  = "http_secret"
	sGPS       = "gps"
	sGPSPort   = "gps_port"
	sGPSBaud   = "gps_baud"
	sGPSEvery  = "gps_interval"
)

// keep settings generic, type-convert on the fly
type configSettings struct {
	settings map[string]interface{}
}

func defaultSettings() configSettings {
	s := make(map[string]interface{})

	// setting the type here makes the conversion "automatic" later
	s[sClockMode] = "civil24"
	s[sColon] = true
	s[sBlink] = false
	s[sTenths] = true
	s[sBright] = byte(15)
	s[sLongitude] = 0.0
	s[sFudge], _ = time.ParseDuration("250us")
	s[sWake] = "timer"
	s[sPollEvery], _ = time.ParseDuration("10ms")
	s[sDisplay] = "led"
	s[sSPIPort] = ""
	// device max is 26 MHz, ask for 20
	s[sSPISpeed] = 20000000
	s[sSPISelect] = 0
	s[sSkipTest] = false
	s[sDebug] = false
	s[sLogFile] = "/var/log/spiclock.log"
	s[sLogSize] = 10
	s[sLogKeep] = 3
	s[sHTTPAddr] = ""
	s[sHTTPAuth] = ""
	s[sGPS] = false
	s[sGPSPort] = "/dev/ttyACM0"
	s[sGPSBaud] = 9600
	s[sGPSEvery], _ = time.ParseDuration("10m")

	// off-target runs get the simulated bus
	driver := "sim"
	if runtime.GOARCH == "arm" || runtime.GOARCH == "arm64" {
		driver = "periph"
	}
	s[sSPIDriver] = driver

	return configSettings{settings: s}
}

func (s configSettings) settingsFromJSON(data []byte) error {
	tmp := defaultSettings()
	for k, initVal := range tmp.settings {
		// ignore missing fields
		if _, _, _, err := jsonparser.Get(data, k); err != nil {
			continue
		}

		var err error
		switch initVal.(type) {
		case uint8:
			var val uint64
			valSigned, err2 := jsonparser.GetInt(data, k)
			err = err2
			if err != nil {
				// try strconv ParseUint
				valString, err3 := jsonparser.GetString(data, k)
				if err3 == nil {
					valSigned, err = strconv.ParseInt(valString, 0, 64)
					val = uint64(valSigned)
				}
			} else {
				val = uint64(valSigned)
			}
			if err == nil {
				s.settings[k] = byte(val)
			}
		case int:
			var val int64
			val, err = jsonparser.GetInt(data, k)
			if err == nil {
				s.settings[k] = int(val)
			}
		case float64:
			s.settings[k], err = jsonparser.GetFloat(data, k)
		case bool:
			var bVal bool
			bVal, err = jsonparser.GetBoolean(data, k)
			if err != nil {
				// try true and false
				sVal, _ := jsonparser.GetString(data, k)
				switch strings.ToLower(sVal) {
				case "true":
					bVal = true
				case "false":
					bVal = false
				default:
					// nothing, fail
					return err
				}
			}
			s.settings[k] = bVal
			err = nil
		case time.Duration:
			var dur string
			dur, err = jsonparser.GetString(data, k)
			if err == nil {
				var dur2 time.Duration
				dur2, err = time.ParseDuration(dur)
				if err == nil {
					s.settings[k] = dur2
				}
			}
		case string:
			s.settings[k], err = jsonparser.GetString(data, k)
		default:
			err = fmt.Errorf("Bad type: %T", initVal)
		}
		if err != nil {
			return fmt.Errorf("%s: %s", k, err.Error())
		}
	}
	return nil
}

func initSettings(configFile string) configSettings {
	log.Println("initSettings")

	// defaults
	s := defaultSettings()

	// try to open the config file; everything has a usable default so
	// a missing file is not fatal
	data, err := ioutil.ReadFile(configFile)
	if err != nil {
		log.Printf("No config at '%s', using defaults", configFile)
		return s
	}

	log.Printf("Reading configuration from '%s'", configFile)

	// json parse it
	if err := s.settingsFromJSON(data); err != nil {
		log.Fatal(err.Error())
	}

	return s
}

func (s configSettings) GetString(key string) string {
	switch v := s.settings[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

func (s configSettings) GetBool(key string) bool {
	switch v := s.settings[key].(type) {
	case bool:
		return v
	default:
		return false
	}
}

func (s configSettings) GetDuration(key string) time.Duration {
	switch v := s.settings[key].(type) {
	case time.Duration:
		return v
	default:
		return -1
	}
}

func (s configSettings) GetByte(key string) byte {
	switch v := s.settings[key].(type) {
	case byte:
		return v
	case int: // cast to byte
		return byte(v)
	default:
		return 0
	}
}

func (s configSettings) GetInt(key string) int {
	switch v := s.settings[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

func (s configSettings) GetFloat64(key string) float64 {
	switch v := s.settings[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// Copy returns settings backed by a fresh map
func (s configSettings) Copy() configSettings {
	c := make(map[string]interface{}, len(s.settings))
	for k, v := range s.settings {
		c[k] = v
	}
	return configSettings{settings: c}
}

// Set overrides one value; flag handling and tests use it
func (s configSettings) Set(key string, val interface{}) {
	s.settings[key] = val
}

func (s configSettings) Dump() {
	for k, v := range s.settings {
		log.Printf("%s : %T: %v\n", k, v, v)
	}
}
