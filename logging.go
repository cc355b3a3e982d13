package main

import (
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ThreadLogger prefixes every line with the worker that wrote it
type ThreadLogger struct {
	name string
}

func (tl *ThreadLogger) Printf(format string, v ...interface{}) {
	log.Printf("("+tl.name+") "+format, v...)
}

func (tl *ThreadLogger) Println(v ...interface{}) {
	log.Println(append([]interface{}{"(" + tl.name + ")"}, v...)...)
}

type consoleLog struct{}

func (consoleLog) Close() error {
	return nil
}

// setupLogging points the global logger at the configured sink.  Tests
// pass toFile=false so their output stays with the test runner.
func setupLogging(settings configSettings, toFile bool) (io.Closer, error) {
	// tenth of a second resolution means stamps need microseconds
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	logFile := settings.GetString(sLogFile)
	if !toFile || logFile == "" || logFile == "-" {
		return consoleLog{}, nil
	}

	logger := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    settings.GetInt(sLogSize),
		MaxBackups: settings.GetInt(sLogKeep),
	}
	log.SetOutput(logger)
	return logger, nil
}
