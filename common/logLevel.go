package common

import "reflect"

// LogLevel follows the teacher's tagged-constant-with-accessor-methods idiom
// (see EnumHelper): the zero value is None, and severities increase in the
// conventional syslog order down to Debug.
type LogLevel uint8

const (
	logNone LogLevel = iota
	logFatal
	logPanic
	logError
	logWarning
	logInfo
	logDebug
)

var ELogLevel = LogLevel(logNone)

func (LogLevel) None() LogLevel    { return logNone }
func (LogLevel) Fatal() LogLevel   { return logFatal }
func (LogLevel) Panic() LogLevel   { return logPanic }
func (LogLevel) Error() LogLevel   { return logError }
func (LogLevel) Warning() LogLevel { return logWarning }
func (LogLevel) Info() LogLevel    { return logInfo }
func (LogLevel) Debug() LogLevel   { return logDebug }

func (ll *LogLevel) Parse(s string) error {
	val, err := EnumHelper{}.Parse(reflect.TypeOf(ll), s, true)
	if err == nil {
		*ll = val.(LogLevel)
	}
	return err
}

func (ll LogLevel) String() string {
	return EnumHelper{}.StringInteger(ll, reflect.TypeOf(ll))
}
