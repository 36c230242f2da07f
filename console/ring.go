package console

import "sync/atomic"

// ringSize is the RX queue capacity. The queue holds at most ringSize-1
// bytes: head == tail means empty, so one slot is always sacrificed.
const ringSize = 64

// Ring is the single-producer single-consumer byte queue between the
// receive interrupt and the main loop. The producer writes head and the
// cells, the consumer writes tail; each side only ever reads the other's
// index, and indices are single machine words, so no locking is needed.
type Ring struct {
	buf  [ringSize]byte
	head uint32 // next write position, producer-owned
	tail uint32 // next read position, consumer-owned
}

// Put enqueues one byte. Returns false when the queue is full; the byte
// is dropped, which is the console's deliberate back-pressure (there is
// no RX flow control).
func (r *Ring) Put(c byte) bool {
	head := atomic.LoadUint32(&r.head)
	next := (head + 1) % ringSize
	if next == atomic.LoadUint32(&r.tail) {
		return false
	}
	r.buf[head] = c
	atomic.StoreUint32(&r.head, next)
	return true
}

// Get dequeues one byte, reporting false when the queue is empty.
func (r *Ring) Get() (byte, bool) {
	tail := atomic.LoadUint32(&r.tail)
	if tail == atomic.LoadUint32(&r.head) {
		return 0, false
	}
	c := r.buf[tail]
	atomic.StoreUint32(&r.tail, (tail+1)%ringSize)
	return c, true
}

// Empty reports whether the queue has no pending bytes.
func (r *Ring) Empty() bool {
	return atomic.LoadUint32(&r.head) == atomic.LoadUint32(&r.tail)
}

// Len returns the number of pending bytes.
func (r *Ring) Len() int {
	head := atomic.LoadUint32(&r.head)
	tail := atomic.LoadUint32(&r.tail)
	return int((head - tail + ringSize) % ringSize)
}
