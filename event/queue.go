package event

import (
	"github.com/lixenwraith/bug-snake/parameter"
)

// Queue is a fixed ring buffer of game events
// Single owner: producers and the consumer all run on the tick goroutine
// Overflow: oldest events are overwritten when full
type Queue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // read index
	tail   uint64 // write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, dropping the oldest one on overflow
func (q *Queue) Push(ev GameEvent) {
	q.events[q.tail&parameter.EventBufferMask] = ev
	q.tail++
	if q.tail-q.head > parameter.EventQueueSize {
		q.head = q.tail - parameter.EventQueueSize
	}
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []GameEvent {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}

	result := make([]GameEvent, 0, n)
	for i := q.head; i < q.tail; i++ {
		result = append(result, q.events[i&parameter.EventBufferMask])
	}
	q.head = q.tail
	return result
}
