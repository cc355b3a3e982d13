package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

var testSettings configSettings
var testlog io.Closer
var cfgFile string = "./test/config.conf"

func spiTestMain(m *testing.M) {
	testSettings = initSettings(cfgFile)
	testlog, _ = setupLogging(testSettings, false)

	// run the tests
	code := m.Run()
	testlog.Close()

	os.Exit(code)
}

func logCaller(pc uintptr, file string, line int, ok bool) {
	if !ok {
		file = "?"
		line = 0
	}

	fn := runtime.FuncForPC(pc)
	var fnName string
	if fn == nil {
		fnName = "?()"
	} else {
		dotName := filepath.Ext(fn.Name())
		fnName = strings.TrimLeft(dotName, ".") + "()"
	}

	log.Printf("Starting %s (%s:%d)", fnName, filepath.Base(file), line)
}

// testGpsChecker stands in for a serial receiver
type testGpsChecker struct {
	curtime time.Time
	err     error
	reads   int
}

func (gps *testGpsChecker) readFix(rt runtimeConfig) (time.Time, error) {
	gps.reads++
	if gps.err != nil {
		return time.Time{}, gps.err
	}
	return gps.curtime, nil
}

func initTestRuntime(settings configSettings) runtimeConfig {
	return runtimeConfig{
		settings: settings.Copy(),
		comms:    initCommChannels(),
		clock:    clockwork.NewFakeClock(),
		display:  &logDisplay{},
		gps:      &testGpsChecker{},
		stats:    &tickStats{},
		logger:   &ThreadLogger{name: "Test"},
	}
}

func testRuntime() (runtimeConfig, clockwork.FakeClock, commChannels) {
	// make rt for test, log the start of the test
	logCaller(runtime.Caller(1))
	// each test starts at most one worker, balance its wg.Done
	wg.Add(1)
	rt := initTestRuntime(testSettings)
	return rt, rt.clock.(clockwork.FakeClock), rt.comms
}

// testBlockDuration advances the fake clock in steps, letting the
// worker reach its timer between each one.  The trailing block waits
// for the worker to finish the last cycle and arm its next wait, so
// asserts that follow see a settled state.
func testBlockDuration(clock clockwork.FakeClock, step time.Duration, total time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		clock.BlockUntil(1)
		clock.Advance(step)
	}
	clock.BlockUntil(1)
}

func testQuit(rt runtimeConfig) {
	close(rt.comms.quit)
}
