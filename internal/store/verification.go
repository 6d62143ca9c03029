package store

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/BloggingApp/blog-client/internal/api"
	"github.com/BloggingApp/blog-client/internal/dto"
)

// VerificationState is the account-verification slice. IsVerified is raised
// by the verify signal and dropped by the verify fulfilled handler right
// after, so it reads false at rest.
type VerificationState struct {
	Lifecycle
	Token      json.RawMessage `json:"token"`
	Verified   json.RawMessage `json:"verified"`
	IsVerified bool            `json:"isVerified"`
}

type VerificationSlice struct {
	slice
	token func() string
	state VerificationState
}

func (s *VerificationSlice) Snapshot() VerificationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SendToken asks the remote API to mail a verification token to the signed
// in user.
func (s *VerificationSlice) SendToken(ctx context.Context) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[json.RawMessage]{
		name: "request token for",
		call: func(ctx context.Context) (json.RawMessage, error) {
			return s.exec.Do(ctx, authOp(api.Op{
				Method: http.MethodPost,
				Path:   "/api/users/generate-verify-email-token",
				Body:   struct{}{},
			}, s.token()))
		},
		pending: s.state.pending,
		fulfilled: func(token json.RawMessage) {
			s.state.Token = token
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
	})
}

func (s *VerificationSlice) Verify(ctx context.Context, token string) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[json.RawMessage]{
		name: "verify",
		call: func(ctx context.Context) (json.RawMessage, error) {
			return s.exec.Do(ctx, authOp(api.Op{
				Method: http.MethodPut,
				Path:   "/api/users/verify-account",
				Body:   dto.VerifyAccountRequest{Token: token},
			}, s.token()))
		},
		pending: s.state.pending,
		fulfilled: func(verified json.RawMessage) {
			s.state.Verified = verified
			s.state.IsVerified = false
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
		signal:   SignalVerified,
		navigate: func() { s.state.IsVerified = true },
	})
}

func (s *VerificationSlice) ConsumeVerified() bool { return s.consume(&s.state.IsVerified) }
