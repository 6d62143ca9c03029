package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/BloggingApp/blog-client/internal/api"
	"go.uber.org/zap"
)

// Executor performs one call to the remote API. *api.Client implements it.
type Executor interface {
	Do(ctx context.Context, op api.Op) (json.RawMessage, error)
}

// Lifecycle is the request status every slice carries. A nil error field is
// absent.
type Lifecycle struct {
	Loading   bool    `json:"loading"`
	AppErr    *string `json:"appErr"`
	ServerErr *string `json:"serverErr"`
}

func (l *Lifecycle) pending() {
	l.Loading = true
}

// pendingClear is the pending transition of slices that also wipe the
// previous error when a request starts.
func (l *Lifecycle) pendingClear() {
	l.Loading = true
	l.AppErr = nil
	l.ServerErr = nil
}

func (l *Lifecycle) fulfilled() {
	l.Loading = false
	l.AppErr = nil
	l.ServerErr = nil
}

func (l *Lifecycle) rejected(err error) {
	l.Loading = false
	l.AppErr = nil
	if msg, ok := api.RejectionMessage(err); ok {
		l.AppErr = &msg
	}
	serverErr := err.Error()
	l.ServerErr = &serverErr
}

// ErrorText joins the present error fields for inline display.
func (l Lifecycle) ErrorText() string {
	var parts []string
	if l.AppErr != nil {
		parts = append(parts, *l.AppErr)
	}
	if l.ServerErr != nil {
		parts = append(parts, *l.ServerErr)
	}
	return strings.Join(parts, " ")
}

type OutcomeKind int

const (
	Completed OutcomeKind = iota
	ReadyToNavigate
	Rejected
)

func (k OutcomeKind) String() string {
	switch k {
	case Completed:
		return "completed"
	case ReadyToNavigate:
		return "ready-to-navigate"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// Outcome is one event produced by an intent, in the order it was reduced.
type Outcome struct {
	Kind    OutcomeKind
	Signal  string
	Payload interface{}
	Err     error
}

// slice is the part shared by every state partition: the lock that makes
// it the single writer of its state, plus its collaborators.
type slice struct {
	mu     sync.Mutex
	name   string
	exec   Executor
	bus    *Bus
	logger *zap.Logger
}

// operation describes one intent. pending, fulfilled and rejected run under
// the slice lock; call runs without it.
type operation[T any] struct {
	name      string
	call      func(ctx context.Context) (T, error)
	pending   func()
	fulfilled func(T)
	rejected  func(error)

	// signal and navigate are set for intents that emit a redirect signal.
	signal   string
	navigate func()
}

// dispatch drives op through pending -> succeeded | failed. Concurrent
// dispatches of the same operation are not ordered: whichever resolves last
// leaves its result in the slice. A rejection from the remote API is handled
// here and not returned; a transport fault is applied to state and returned.
func dispatch[T any](ctx context.Context, s *slice, op operation[T]) ([]Outcome, error) {
	s.mu.Lock()
	op.pending()
	s.mu.Unlock()

	payload, err := op.call(ctx)

	var outcomes []Outcome
	s.mu.Lock()
	if err != nil {
		op.rejected(err)
		outcomes = append(outcomes, Outcome{Kind: Rejected, Err: err})
	} else {
		if op.signal != "" {
			op.navigate()
			outcomes = append(outcomes, Outcome{Kind: ReadyToNavigate, Signal: op.signal})
		}
		op.fulfilled(payload)
		outcomes = append(outcomes, Outcome{Kind: Completed, Payload: payload})
	}
	s.mu.Unlock()

	if err != nil {
		if api.IsFault(err) {
			s.logger.Sugar().Errorf("failed to %s %s: %s", op.name, s.name, err.Error())
			return outcomes, err
		}
		s.logger.Sugar().Debugf("%s %s rejected: %s", s.name, op.name, err.Error())
		return outcomes, nil
	}

	if op.signal != "" {
		s.bus.publish(Signal{Slice: s.name, Name: op.signal})
	}

	return outcomes, nil
}

// fetch runs op and decodes the response into T. The remote API did answer
// when the body does not decode, so that is a rejection and not a fault.
func fetch[T any](ctx context.Context, exec Executor, op api.Op) (T, error) {
	var result T
	data, err := exec.Do(ctx, op)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return result, &api.RejectionError{
			Body: data,
			Err:  fmt.Errorf("failed to decode response: %w", err),
		}
	}

	return result, nil
}

func authOp(op api.Op, token string) api.Op {
	op.RequiresAuth = true
	op.Token = token
	return op
}
