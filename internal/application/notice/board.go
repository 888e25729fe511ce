// Package notice is the single channel through which the engine surfaces soft failures to the view.
package notice

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// User-facing messages.
const (
	OfflineData     = "Using offline data. Some features may be limited."
	ShortlistFailed = "Failed to update shortlist. Please try again."
)

// HistorySize is how many notices a board remembers; older ones are dropped on Post.
const HistorySize = 100

// Notice is one transient message. It is dismissed automatically at ExpiresAt.
type Notice struct {
	Message   string    `json:"message"`
	PostedAt  time.Time `json:"posted_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Board records notices and tells subscribers about new ones.
type Board struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	notices []Notice
	subs    []chan Notice
}

// NewBoard returns a board whose notices stay active for ttl.
func NewBoard(ttl time.Duration) *Board {
	return NewBoardWithClock(ttl, time.Now)
}

// NewBoardWithClock is NewBoard with an injectable clock (tests).
func NewBoardWithClock(ttl time.Duration, now func() time.Time) *Board {
	return &Board{ttl: ttl, now: now}
}

// Post records msg and delivers it to every subscriber that has room; slow subscribers miss it.
func (b *Board) Post(msg string) Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	at := b.now()
	n := Notice{Message: msg, PostedAt: at, ExpiresAt: at.Add(b.ttl)}
	b.notices = append(b.notices, n)
	if over := len(b.notices) - HistorySize; over > 0 {
		b.notices = append(b.notices[:0:0], b.notices[over:]...)
	}
	log.Warn().Str("notice", msg).Msg("Notice posted")

	for _, ch := range b.subs {
		select {
		case ch <- n:
		default:
		}
	}
	return n
}

// Active returns the notices not yet dismissed, oldest first.
func (b *Board) Active() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	out := make([]Notice, 0, len(b.notices))
	for _, n := range b.notices {
		if now.Before(n.ExpiresAt) {
			out = append(out, n)
		}
	}
	return out
}

// All returns the last HistorySize notices, oldest first.
func (b *Board) All() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Notice, len(b.notices))
	copy(out, b.notices)
	return out
}

// Count returns how many of the remembered notices carry msg.
func (b *Board) Count(msg string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, x := range b.notices {
		if x.Message == msg {
			n++
		}
	}
	return n
}

// Subscribe returns a channel receiving notices posted from now on.
func (b *Board) Subscribe(buffer int) <-chan Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan Notice, buffer)
	b.subs = append(b.subs, ch)
	return ch
}
