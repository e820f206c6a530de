package interfaces

// Logger defines the interface for logging throughout the application.
// This abstraction allows for different logging implementations (logrus, zap, etc.)
// while maintaining a consistent interface.
//
// Example usage:
//
//	logger.Info("Fetched page", map[string]interface{}{
//		"page": 3,
//		"documents": 100,
//	})
//
//	logger.Warn("Text download failed", map[string]interface{}{
//		"id": "272342",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	// Debug messages are typically used for detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	// Info messages are used for general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Warning messages indicate potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	// Error messages indicate failures that need attention.
	Error(msg string, fields map[string]interface{})
}
// NopLogger discards all log entries
type NopLogger struct{}

// Debug implements Logger
func (NopLogger) Debug(msg string, fields map[string]interface{}) {}

// Info implements Logger
func (NopLogger) Info(msg string, fields map[string]interface{}) {}

// Warn implements Logger
func (NopLogger) Warn(msg string, fields map[string]interface{}) {}

// Error implements Logger
func (NopLogger) Error(msg string, fields map[string]interface{}) {}

// LoggerOrNop returns l, or a NopLogger when l is nil
func LoggerOrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
