//go:build tinygo

package gpio

import (
	"machine"
)

func init() {
	defaultLogger = serialLogger{}
}

// serialLogger writes to machine.Serial directly, avoiding the memory
// overhead of the fmt package on microcontrollers.
type serialLogger struct{}

func (l serialLogger) log(level, msg string) {
	machine.Serial.Write([]byte(level))
	machine.Serial.Write([]byte(msg))
	machine.Serial.Write([]byte("\r\n"))
}

func (l serialLogger) Debug(msg string) { l.log("[DEBUG] ", msg) }
func (l serialLogger) Info(msg string)  { l.log("[INFO]  ", msg) }
func (l serialLogger) Warn(msg string)  { l.log("[WARN]  ", msg) }
func (l serialLogger) Error(msg string) { l.log("[ERROR] ", msg) }
