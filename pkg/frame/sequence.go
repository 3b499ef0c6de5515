package frame

import (
	"sync"

	"github.com/x11go/xwire/pkg/schema"
)

// SequenceCounter assigns request sequence numbers the way the server
// counts them: the first request on a connection is number 1, and the
// count wraps through the full 16-bit range back to 0.
//
// The server tracks the full count internally but only ever transmits
// the low 16 bits, so that is all a client needs to keep.
type SequenceCounter struct {
	mu   sync.Mutex
	last uint16
}

// Next returns the sequence number for the next request sent on the
// connection. Safe for concurrent use.
func (c *SequenceCounter) Next() uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last++
	return c.last
}

// Last returns the most recently assigned number, or 0 if no request
// has been numbered yet.
func (c *SequenceCounter) Last() uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// PendingTable maps outstanding sequence numbers to the reply schema
// expected for them. It implements PendingRequests for a Dispatcher.
//
// One-shot semantics: looking a sequence number up removes it, since
// the protocol sends at most one reply per request. Requests with no
// reply (the large majority) are simply never recorded.
type PendingTable struct {
	mu      sync.Mutex
	pending map[uint16]*schema.Reply
}

// NewPendingTable returns an empty table.
func NewPendingTable() *PendingTable {
	return &PendingTable{pending: make(map[uint16]*schema.Reply)}
}

// Expect records that the request numbered sequence will produce a
// reply decoded by sch. Recording the same sequence twice overwrites;
// after 65536 intervening requests the number has genuinely wrapped
// and the earlier entry is stale.
func (t *PendingTable) Expect(sequence uint16, sch *schema.Reply) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[sequence] = sch
}

// ReplySchema returns the schema recorded for sequence and removes the
// entry. The second return is false when nothing is outstanding under
// that number.
func (t *PendingTable) ReplySchema(sequence uint16) (*schema.Reply, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	sch, ok := t.pending[sequence]
	if ok {
		delete(t.pending, sequence)
	}
	return sch, ok
}

// Len reports the number of outstanding entries.
func (t *PendingTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}
