package driver

import "log"

// SDKLogger adapts a standard logger to the aws-sdk-go logging interface.
type SDKLogger struct {
	logger *log.Logger
}

func NewSDKLogger(l *log.Logger) SDKLogger {
	return SDKLogger{logger: l}
}

// Log logs the parameters to the preconfigured logger.
func (l SDKLogger) Log(args ...interface{}) {
	l.logger.Println(args...)
}
