// utility functions
package main

import (
	"github.com/jonboulle/clockwork"
)

type commChannels struct {
	quit  chan struct{}
	fatal chan error
}

type runtimeConfig struct {
	settings configSettings
	comms    commChannels
	clock    clockwork.Clock
	display  display
	gps      gpsSource
	stats    *tickStats
	logger   *ThreadLogger
}

func initCommChannels() commChannels {
	// quit is closed to stop everyone at once; fatal is buffered so a
	// worker can report and exit without waiting on main
	return commChannels{
		quit:  make(chan struct{}),
		fatal: make(chan error, 5),
	}
}

func initRuntime(settings configSettings) runtimeConfig {
	return runtimeConfig{
		settings: settings,
		comms:    initCommChannels(),
		clock:    clockwork.NewRealClock(),
		display:  displayFromSettings(settings),
		gps:      &gpsChecker{},
		stats:    &tickStats{},
		logger:   &ThreadLogger{name: "Main"},
	}
}

func displayFromSettings(settings configSettings) display {
	switch settings.GetString(sDisplay) {
	case "term":
		return &termDisplay{}
	case "log":
		return &logDisplay{}
	default:
		return &ledDisplay{}
	}
}
