package logger

import (
	"context"
	"time"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey struct{}

// logContextKey is the key for LogContext in context.Context
var logContextKey = contextKey{}

// LogContext holds connection-scoped logging context
type LogContext struct {
	ConnectionID string    // Connection identifier
	Display      string    // Display string (:0, host:1, etc.)
	ByteOrder    string    // Negotiated byte order: little, big
	Message      string    // Protocol message being processed (CreateWindow, etc.)
	Sequence     uint16    // Sequence number of the message being processed
	StartTime    time.Time // For duration calculation
}

// WithContext returns a new context with the given LogContext
func WithContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, logContextKey, lc)
}

// FromContext retrieves the LogContext from context, or nil if not present
func FromContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, _ := ctx.Value(logContextKey).(*LogContext)
	return lc
}

// NewLogContext creates a new LogContext for the given connection
func NewLogContext(connectionID string) *LogContext {
	return &LogContext{
		ConnectionID: connectionID,
		StartTime:    time.Now(),
	}
}

// Clone creates a copy of the LogContext
func (lc *LogContext) Clone() *LogContext {
	if lc == nil {
		return nil
	}
	return &LogContext{
		ConnectionID: lc.ConnectionID,
		Display:      lc.Display,
		ByteOrder:    lc.ByteOrder,
		Message:      lc.Message,
		Sequence:     lc.Sequence,
		StartTime:    lc.StartTime,
	}
}

// WithDisplay returns a copy with the display set
func (lc *LogContext) WithDisplay(display string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.Display = display
	}
	return clone
}

// WithByteOrder returns a copy with the byte order set
func (lc *LogContext) WithByteOrder(order string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.ByteOrder = order
	}
	return clone
}

// WithMessage returns a copy with the in-flight message set
func (lc *LogContext) WithMessage(name string, sequence uint16) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.Message = name
		clone.Sequence = sequence
	}
	return clone
}

// DurationMs returns the duration since StartTime in milliseconds
func (lc *LogContext) DurationMs() float64 {
	if lc == nil || lc.StartTime.IsZero() {
		return 0
	}
	return float64(time.Since(lc.StartTime).Microseconds()) / 1000.0
}
