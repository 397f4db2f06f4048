package logger

import (
	"fmt"
	"log"
	"os"
)

const flags = log.Ldate | log.Ltime | log.Lshortfile

var (
	infoLog  = log.New(os.Stdout, "INFO: ", flags)
	warnLog  = log.New(os.Stdout, "WARN: ", flags)
	errorLog = log.New(os.Stderr, "ERROR: ", flags)
	debugLog = log.New(os.Stdout, "DEBUG: ", flags)
)

// Depth 3 so Lshortfile reports the caller of Info/Warn/Error/Debug.
func output(l *log.Logger, format string, v []interface{}) {
	l.Output(3, fmt.Sprintf(format, v...))
}

func Info(format string, v ...interface{}) {
	output(infoLog, format, v)
}

func Warn(format string, v ...interface{}) {
	output(warnLog, format, v)
}

func Error(format string, v ...interface{}) {
	output(errorLog, format, v)
}

// Debug only writes when ENVIRONMENT is "development".
func Debug(format string, v ...interface{}) {
	if os.Getenv("ENVIRONMENT") == "development" {
		output(debugLog, format, v)
	}
}

// LogOrderError records an order-scoped failure that is logged rather than
// returned, such as a cart clear after submit or an undecodable document.
func LogOrderError(orderID, action string, err error) {
	output(warnLog, "order %s: %s failed: %v", []interface{}{orderID, action, err})
}
