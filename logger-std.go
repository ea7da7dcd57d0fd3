//go:build !tinygo

package gpio

import (
	"log"
)

func init() {
	defaultLogger = stdLogger{}
}

// stdLogger routes messages through the standard library log package.
type stdLogger struct{}

func (stdLogger) Debug(msg string) {
	log.Print("[DEBUG] " + msg)
}

func (stdLogger) Info(msg string) {
	log.Print("[INFO]  " + msg)
}

func (stdLogger) Warn(msg string) {
	log.Print("[WARN]  " + msg)
}

func (stdLogger) Error(msg string) {
	log.Print("[ERROR] " + msg)
}
