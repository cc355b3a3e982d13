package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// spiclock -config={config file}

var wg sync.WaitGroup

func main() {
	configFile := flag.String("config", "/etc/default/spiclock/spiclock.conf", "config file path")
	mode := flag.String("mode", "", "clock mode override: civil24, civil12 or sidereal")
	console := flag.Bool("console", false, "render to the terminal instead of the led display")
	fg := flag.Bool("fg", false, "log to stderr instead of the log file")
	flag.Parse()

	// read config information
	settings := initSettings(*configFile)
	if *mode != "" {
		settings.Set(sClockMode, *mode)
	}
	if *console {
		settings.Set(sDisplay, "term")
	}
	if *fg {
		settings.Set(sLogFile, "-")
	}

	logClose, err := setupLogging(settings, true)
	if err != nil {
		log.Fatalf("Failed to set up logging: %s", err.Error())
	}

	// dump them (debugging)
	settings.Dump()

	rt := initRuntime(settings)

	// workers: display updates, status service, gps watcher
	startUpdates(rt)
	startStatusService(rt)
	startGPSWatcher(rt)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-sigs:
		rt.logger.Printf("Got signal: %v", sig)
	case err := <-rt.comms.fatal:
		rt.logger.Printf("Fatal: %s", err.Error())
		exitCode = 1
	}

	// tell everyone to wrap it up
	close(rt.comms.quit)
	wg.Wait()

	logClose.Close()
	os.Exit(exitCode)
}
