package store

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/BloggingApp/blog-client/internal/api"
	"github.com/BloggingApp/blog-client/internal/dto"
)

type MailState struct {
	Lifecycle
	MailSent   json.RawMessage `json:"mailSent"`
	IsMailSent bool            `json:"isMailSent"`
}

type MailSlice struct {
	slice
	token func() string
	state MailState
}

func (s *MailSlice) Snapshot() MailState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *MailSlice) Send(ctx context.Context, req dto.SendMailRequest) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[json.RawMessage]{
		name: "send",
		call: func(ctx context.Context) (json.RawMessage, error) {
			return s.exec.Do(ctx, authOp(api.Op{
				Method: http.MethodPost,
				Path:   "/api/email",
				Body:   req,
			}, s.token()))
		},
		pending: s.state.pending,
		fulfilled: func(sent json.RawMessage) {
			s.state.MailSent = sent
			s.state.IsMailSent = false
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
		signal:   SignalMailSent,
		navigate: func() { s.state.IsMailSent = true },
	})
}

func (s *MailSlice) ConsumeMailSent() bool { return s.consume(&s.state.IsMailSent) }
