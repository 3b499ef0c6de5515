// Package bufpool provides a tiered buffer pool for message encoding.
//
// Encoding an X11 message allocates a buffer of its exact computed size.
// Message sizes cluster tightly: events and errors are always 32 bytes,
// nearly every request fits in a few hundred bytes, and only property
// transfers and image data reach into the megabytes. The pool mirrors
// those clusters with three size classes so a busy connection reuses a
// handful of buffers instead of allocating per message.
//
// Buffers larger than the large tier are allocated directly and not
// pooled, so an occasional huge reply does not pin its memory.
//
// # Thread Safety
//
// All operations are thread-safe via sync.Pool. Safe for concurrent use
// across multiple connections and goroutines.
//
// # Usage
//
//	buf := bufpool.Get(size)
//	defer bufpool.Put(buf)
package bufpool

import "sync"

// Default buffer size classes.
const (
	// DefaultFrameSize covers events, errors, and small fixed-size
	// requests (256 B).
	DefaultFrameSize = 256

	// DefaultRequestSize covers requests with bodies: attribute
	// lists, property changes, text (8 KB).
	DefaultRequestSize = 8 << 10

	// DefaultReplySize covers large replies such as full property
	// reads and query results (1 MB).
	DefaultReplySize = 1 << 20
)

// Pool manages byte slice pools organized by size class. It selects the
// smallest class that fits the requested size and falls back to direct
// allocation for oversized requests.
type Pool struct {
	frame       sync.Pool
	request     sync.Pool
	reply       sync.Pool
	frameSize   int
	requestSize int
	replySize   int
}

// Config holds the size classes for a custom pool. Zero values fall
// back to the defaults.
type Config struct {
	FrameSize   int
	RequestSize int
	ReplySize   int
}

// NewPool creates a buffer pool with the given configuration. A nil
// config uses the defaults.
func NewPool(cfg *Config) *Pool {
	if cfg == nil {
		cfg = &Config{}
	}

	p := &Pool{
		frameSize:   cfg.FrameSize,
		requestSize: cfg.RequestSize,
		replySize:   cfg.ReplySize,
	}
	if p.frameSize <= 0 {
		p.frameSize = DefaultFrameSize
	}
	if p.requestSize <= 0 {
		p.requestSize = DefaultRequestSize
	}
	if p.replySize <= 0 {
		p.replySize = DefaultReplySize
	}

	p.frame = sync.Pool{
		New: func() any {
			buf := make([]byte, p.frameSize)
			return &buf
		},
	}
	p.request = sync.Pool{
		New: func() any {
			buf := make([]byte, p.requestSize)
			return &buf
		},
	}
	p.reply = sync.Pool{
		New: func() any {
			buf := make([]byte, p.replySize)
			return &buf
		},
	}

	return p
}

// Get returns a byte slice of exactly the requested length, backed by a
// pooled buffer whose capacity may be larger. The caller must return it
// with Put when done; failing to do so only costs the reuse, not
// correctness.
//
// Sizes above the reply tier are allocated directly and never pooled.
func (p *Pool) Get(size int) []byte {
	var bufPtr *[]byte

	switch {
	case size <= p.frameSize:
		bufPtr = p.frame.Get().(*[]byte)
	case size <= p.requestSize:
		bufPtr = p.request.Get().(*[]byte)
	case size <= p.replySize:
		bufPtr = p.reply.Get().(*[]byte)
	default:
		return make([]byte, size)
	}

	return (*bufPtr)[:size]
}

// Put returns a buffer obtained from Get to its pool. Oversized buffers
// that were allocated directly are dropped for the GC.
func (p *Pool) Put(buf []byte) {
	if buf == nil {
		return
	}

	switch cap(buf) {
	case p.frameSize:
		full := buf[:cap(buf)]
		p.frame.Put(&full)
	case p.requestSize:
		full := buf[:cap(buf)]
		p.request.Put(&full)
	case p.replySize:
		full := buf[:cap(buf)]
		p.reply.Put(&full)
	}
}

// =============================================================================
// Global Pool
// =============================================================================

// globalPool is the package-level pool with default size classes.
var globalPool = NewPool(nil)

// Get returns a byte slice of exactly the requested length from the
// global pool.
func Get(size int) []byte {
	return globalPool.Get(size)
}

// Put returns a buffer to the global pool.
func Put(buf []byte) {
	globalPool.Put(buf)
}

// GetWords returns a buffer sized for a length expressed in 4-byte
// words, the unit X11 length fields use.
func GetWords(words uint32) []byte {
	return globalPool.Get(int(words) * 4)
}
