package main

import (
	"time"
)

func init() {
	wg.Add(1)
}

func startGPSWatcher(rt runtimeConfig) {
	rt.logger = &ThreadLogger{name: "GPS"}
	go runGPSWatcher(rt)
}

func runGPSWatcher(rt runtimeConfig) {
	defer wg.Done()
	defer func() {
		rt.logger.Println("exiting runGPSWatcher")
	}()

	settings := rt.settings

	if !settings.GetBool(sGPS) {
		rt.logger.Println("gps check is disabled")
		return
	}

	for true {
		select {
		case <-rt.comms.quit:
			rt.logger.Println("quit from runGPSWatcher")
			return
		default:
		}

		fix, err := rt.gps.readFix(rt)
		if err != nil {
			rt.logger.Printf("gps read failed: %s", err.Error())
		} else {
			now := rt.clock.Now()
			diff := now.Sub(fix)
			rt.stats.gpsReport(diff, now)
			if diff > time.Second || diff < -time.Second {
				rt.logger.Printf("System clock is %v away from gps time", diff)
			}
		}

		rt.clock.Sleep(settings.GetDuration(sGPSEvery))
	}
}
