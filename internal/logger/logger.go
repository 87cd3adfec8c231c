package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

var (
	InfoLogger  *log.Logger
	ErrorLogger *log.Logger
	DebugLogger *log.Logger
)

func Init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	DebugLogger = log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// kvString renders trailing key-value pairs as "key=value" tokens.
func kvString(kv []interface{}) string {
	if len(kv) == 0 {
		return ""
	}
	parts := make([]string, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		if i+1 < len(kv) {
			parts = append(parts, fmt.Sprintf("%v=%v", kv[i], kv[i+1]))
		} else {
			parts = append(parts, fmt.Sprintf("%v", kv[i]))
		}
	}
	return " " + strings.Join(parts, " ")
}

func Info(msg string, kv ...interface{}) {
	InfoLogger.Output(2, msg+kvString(kv))
}

func Infof(format string, v ...interface{}) {
	InfoLogger.Output(2, fmt.Sprintf(format, v...))
}

func Error(msg string, kv ...interface{}) {
	ErrorLogger.Output(2, msg+kvString(kv))
}

func Errorf(format string, v ...interface{}) {
	ErrorLogger.Output(2, fmt.Sprintf(format, v...))
}

func Debug(msg string, kv ...interface{}) {
	DebugLogger.Output(2, msg+kvString(kv))
}

func Debugf(format string, v ...interface{}) {
	DebugLogger.Output(2, fmt.Sprintf(format, v...))
}

func Fatal(msg string) {
	ErrorLogger.Fatal(msg)
}

func Fatalf(format string, v ...interface{}) {
	ErrorLogger.Fatalf(format, v...)
}
