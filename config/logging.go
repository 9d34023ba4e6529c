package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logFileName = "vquest.log"
	maxLogSize  = 10 * 1024 * 1024
)

// SetupLogging routes the standard logger to dir/vquest.log when debug is set and
// discards it otherwise. A log above maxLogSize is moved aside to .old first.
func SetupLogging(debug bool, dir string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		_ = os.Rename(path, path+".old")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
