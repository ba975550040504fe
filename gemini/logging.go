package gemini

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"
)

// Logger provides structured logging for API calls. All client log hooks are
// nil-safe; a client without a logger logs nothing.
type Logger interface {
	// LogRequest logs an outgoing API request (API key redacted)
	LogRequest(ctx context.Context, req RequestLog)

	// LogResponse logs an API response with timing and token info
	LogResponse(ctx context.Context, resp ResponseLog)

	// LogError logs an API error
	LogError(ctx context.Context, err ErrorLog)
}

// RequestLog contains request information for logging.
type RequestLog struct {
	Model        string
	Timestamp    time.Time
	Turns        int    // Conversation turns in the request
	RequestBytes int    // Serialized request size
	APIKey       string // Will be redacted to last 4 chars
}

// ResponseLog contains response information for logging.
type ResponseLog struct {
	Model        string
	Timestamp    time.Time
	Duration     time.Duration
	TokensIn     int
	TokensOut    int
	Cost         float64
	StatusCode   int
	FinishReason string
}

// ErrorLog contains error information for logging.
type ErrorLog struct {
	Model      string
	Timestamp  time.Time
	Duration   time.Duration
	Error      error
	Kind       ErrorKind
	StatusCode int
	Retryable  bool
}

// LogLevel defines the logging verbosity level.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelError
)

// LogFormat defines the output format for logs.
type LogFormat int

const (
	LogFormatHuman LogFormat = iota
	LogFormatJSON
)

// DefaultLogger writes logs through the standard log package.
type DefaultLogger struct {
	level      LogLevel
	format     LogFormat
	redactKeys bool
}

// NewDefaultLogger creates a logger with the specified config.
func NewDefaultLogger(level LogLevel, format LogFormat, redactKeys bool) *DefaultLogger {
	return &DefaultLogger{
		level:      level,
		format:     format,
		redactKeys: redactKeys,
	}
}

// LogRequest logs an API request.
func (l *DefaultLogger) LogRequest(ctx context.Context, req RequestLog) {
	if l.level > LogLevelDebug {
		return
	}

	redacted := l.RedactAPIKey(req.APIKey)

	if l.format == LogFormatJSON {
		log.Printf(`{"level":"debug","type":"request","model":"%s","timestamp":"%s","turns":%d,"request_bytes":%d,"api_key":"%s"}`,
			req.Model, req.Timestamp.Format(time.RFC3339), req.Turns, req.RequestBytes, redacted)
	} else {
		log.Printf("[DEBUG] gemini/%s: request sent (turns=%d, bytes=%d, key=%s)",
			req.Model, req.Turns, req.RequestBytes, redacted)
	}
}

// LogResponse logs an API response.
func (l *DefaultLogger) LogResponse(ctx context.Context, resp ResponseLog) {
	if l.level > LogLevelInfo {
		return
	}

	if l.format == LogFormatJSON {
		log.Printf(`{"level":"info","type":"response","model":"%s","timestamp":"%s","duration_ms":%d,"tokens_in":%d,"tokens_out":%d,"cost":%.6f,"status_code":%d,"finish_reason":"%s"}`,
			resp.Model, resp.Timestamp.Format(time.RFC3339),
			resp.Duration.Milliseconds(), resp.TokensIn, resp.TokensOut,
			resp.Cost, resp.StatusCode, resp.FinishReason)
	} else {
		log.Printf("[INFO] gemini/%s: response received (duration=%.1fs, tokens=%d/%d, cost=$%.4f)",
			resp.Model, resp.Duration.Seconds(), resp.TokensIn, resp.TokensOut, resp.Cost)
	}
}

// LogError logs an API error.
func (l *DefaultLogger) LogError(ctx context.Context, err ErrorLog) {
	if l.level > LogLevelError {
		return
	}

	retryableStr := "non-retryable"
	if err.Retryable {
		retryableStr = "retryable"
	}

	if l.format == LogFormatJSON {
		log.Printf(`{"level":"error","type":"error","model":"%s","timestamp":"%s","duration_ms":%d,"error":"%s","kind":"%s","status_code":%d,"retryable":%t}`,
			err.Model, err.Timestamp.Format(time.RFC3339),
			err.Duration.Milliseconds(), err.Error.Error(), err.Kind,
			err.StatusCode, err.Retryable)
	} else {
		log.Printf("[ERROR] gemini/%s: call failed (status=%d, %s): %v",
			err.Model, err.StatusCode, retryableStr, err.Error)
	}
}

// RedactAPIKey shows only the last 4 characters of an API key with explicit
// redaction markers.
func (l *DefaultLogger) RedactAPIKey(key string) string {
	if !l.redactKeys {
		return key
	}
	if len(key) <= 4 {
		return "[REDACTED]"
	}
	return fmt.Sprintf("[REDACTED-%s]", key[len(key)-4:])
}

// secretParamPatterns matches query parameters that carry credentials. The
// key= parameter is how this API authenticates, so any URL that leaks into
// an error message carries the API key.
var secretParamPatterns = []*regexp.Regexp{
	regexp.MustCompile(`key=[^&"\s]+`),
	regexp.MustCompile(`apiKey=[^&"\s]+`),
	regexp.MustCompile(`api_key=[^&"\s]+`),
	regexp.MustCompile(`token=[^&"\s]+`),
	regexp.MustCompile(`access_token=[^&"\s]+`),
}

// RedactURLSecrets redacts API keys and other secrets from URLs in error
// messages before they reach logs or terminals.
//
// Example:
//
//	input:  "https://api.example.com/endpoint?key=secret123&foo=bar"
//	output: "https://api.example.com/endpoint?key=[REDACTED]&foo=bar"
func RedactURLSecrets(text string) string {
	if text == "" {
		return text
	}
	for _, re := range secretParamPatterns {
		text = re.ReplaceAllStringFunc(text, func(match string) string {
			// Keep the parameter name, drop the value.
			name, _, _ := strings.Cut(match, "=")
			return name + "=[REDACTED]"
		})
	}
	return text
}
