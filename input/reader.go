package input

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bug-snake/engine"
)

// EventSource is the subset of tcell.Screen the reader polls
type EventSource interface {
	PollEvent() tcell.Event
	Sync()
}

// Reader decodes terminal events into engine commands
type Reader struct {
	src  EventSource
	keys *KeyTable
	out  chan<- engine.Command
	mute func() bool
}

// NewReader creates a reader, nil keys selects the default table
// mute is invoked for the mute binding and may be nil
func NewReader(src EventSource, keys *KeyTable, out chan<- engine.Command, mute func() bool) *Reader {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Reader{src: src, keys: keys, out: out, mute: mute}
}

// Run polls until the source is finalized or ctx is done, then closes the output channel
// Run in its own goroutine via core.Go
func (r *Reader) Run(ctx context.Context) {
	defer close(r.out)

	for {
		ev := r.src.PollEvent()
		if ev == nil {
			return
		}
		if !r.handle(ctx, ev) {
			return
		}
	}
}

// handle processes one event, returning false when the reader should stop
func (r *Reader) handle(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry := r.keys.Lookup(ev)
		switch entry.Intent {
		case IntentToggleMute:
			if r.mute != nil {
				log.Printf("[INPUT] mute=%v", r.mute())
			}
			return true
		case IntentCommand:
			select {
			case r.out <- entry.Command:
				return true
			case <-ctx.Done():
				return false
			}
		}
	case *tcell.EventResize:
		r.src.Sync()
	}
	return ctx.Err() == nil
}
