package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/milele-cleaning/milele/internal/schedule"
)

// timerMsg is delivered when a bridged timer fires. seq identifies the
// scheduling call so a message that was already queued when its timer
// was replaced can be recognized and dropped.
type timerMsg struct {
	src *timerBridge
	key string
	seq uint64
}

// timerBridge turns scheduler callbacks into Bubble Tea messages.
type timerBridge struct {
	sched  *schedule.Scheduler
	events chan timerMsg
	done   chan struct{}
	once   sync.Once

	mu   sync.Mutex
	seqs map[string]uint64
}

func newTimerBridge(clock schedule.Clock) *timerBridge {
	return &timerBridge{
		sched:  schedule.New(clock),
		events: make(chan timerMsg, 16),
		done:   make(chan struct{}),
		seqs:   make(map[string]uint64),
	}
}

// after schedules key to fire in d, replacing any pending timer for key.
func (b *timerBridge) after(key string, d time.Duration) error {
	b.mu.Lock()
	b.seqs[key]++
	seq := b.seqs[key]
	b.mu.Unlock()

	return b.sched.Schedule(key, d, func() {
		select {
		case b.events <- timerMsg{src: b, key: key, seq: seq}:
		case <-b.done:
		}
	})
}

// cancel drops the pending timer for key and invalidates queued messages.
func (b *timerBridge) cancel(key string) {
	b.mu.Lock()
	b.seqs[key]++
	b.mu.Unlock()
	b.sched.Cancel(key)
}

// current reports whether msg is the latest firing for its key.
func (b *timerBridge) current(msg timerMsg) bool {
	if msg.src != b {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.seqs[msg.key] == msg.seq
}

// listen waits for the next timer message. It returns nil once the bridge
// is closed.
func (b *timerBridge) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.done:
			return nil
		default:
		}
		select {
		case m := <-b.events:
			return m
		case <-b.done:
			return nil
		}
	}
}

// close stops every timer and releases listeners.
func (b *timerBridge) close() {
	b.once.Do(func() {
		b.sched.Stop()
		close(b.done)
	})
}

// closed reports whether close has been called.
func (b *timerBridge) closed() bool {
	return b.sched.Stopped()
}
