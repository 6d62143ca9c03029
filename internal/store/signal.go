package store

import (
	"sync"

	"go.uber.org/zap"
)

const (
	SignalCreated         = "isCreated"
	SignalEdited          = "isEdited"
	SignalUpdated         = "isUpdated"
	SignalDeleted         = "isDeleted"
	SignalPasswordUpdated = "isPasswordUpdated"
	SignalMailSent        = "isMailSent"
	SignalVerified        = "isVerified"
)

// Signal tells views that an operation finished and they may navigate or
// reset a form. It carries no payload.
type Signal struct {
	Slice string
	Name  string
}

// Bus fans redirect signals out to subscribers. Publishing never blocks: a
// subscriber whose buffer is full misses the signal.
type Bus struct {
	mu     sync.Mutex
	logger *zap.Logger
	subs   map[int]chan Signal
	nextID int
}

func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		logger: logger,
		subs:   make(map[int]chan Signal),
	}
}

// Subscribe returns a channel of signals and a function that closes it.
func (b *Bus) Subscribe(buf int) (<-chan Signal, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Signal, buf)
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
}

func (b *Bus) publish(sig Signal) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- sig:
		default:
			b.logger.Sugar().Warnf("dropped signal %s/%s: subscriber buffer full", sig.Slice, sig.Name)
		}
	}
}
