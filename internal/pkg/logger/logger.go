package logger

// Logger defines the logging interface.
//
// A call with a message followed by an even number of arguments whose keys are
// strings, e.g. Info("message created", "id", id), is logged as a message with
// structured attributes. Any other argument list is concatenated like fmt.Sprint.
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
