package event

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Input is one raw event from the terminal input source: either a bubbletea
// message (key, resize, focus) or a transport error.
type Input struct {
	Msg tea.Msg
	Err error
}

// Queue is an unbounded FIFO between the terminal reader and the
// multiplexer. Push never blocks, so the UI goroutine cannot stall behind a
// slow consumer; events are delivered on C in arrival order.
type Queue struct {
	mu      sync.Mutex
	pending []Input
	closed  bool
	wake    chan struct{}
	done    chan struct{}
	once    sync.Once
	out     chan Input
}

// NewQueue starts the delivery goroutine. Close must be called to stop it.
func NewQueue() *Queue {
	q := &Queue{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
		out:  make(chan Input),
	}
	go q.deliver()
	return q
}

// C is the channel the multiplexer reads. It is closed after Close; events
// still pending at that point are dropped.
func (q *Queue) C() <-chan Input {
	return q.out
}

// Push appends an event. Events pushed after Close are discarded.
func (q *Queue) Push(in Input) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.pending = append(q.pending, in)
	q.mu.Unlock()
	q.signal()
}

// Close ends the stream. Safe to call more than once.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.once.Do(func() { close(q.done) })
}

func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *Queue) deliver() {
	defer close(q.out)
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.mu.Unlock()
			select {
			case <-q.wake:
				continue
			case <-q.done:
				return
			}
		}
		next := q.pending[0]
		q.pending[0] = Input{}
		q.pending = q.pending[1:]
		q.mu.Unlock()

		select {
		case q.out <- next:
		case <-q.done:
			return
		}
	}
}
