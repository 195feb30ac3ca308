package monitoring

import "log"

// Logf is the package-level diagnostic logger used while rendering figures.
// It defaults to log.Printf but may be replaced by SetLogger. Tests can
// redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// debugEnabled gates Debugf output. Commands flip it from the -verbose flag
// or the "verbose" config field.
var debugEnabled bool

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetVerbose enables or disables Debugf output.
func SetVerbose(v bool) {
	debugEnabled = v
}

// Debugf logs through Logf only when verbose output is enabled.
func Debugf(format string, v ...interface{}) {
	if !debugEnabled {
		return
	}
	Logf("[debug] "+format, v...)
}
