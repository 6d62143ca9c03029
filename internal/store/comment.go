package store

import (
	"context"
	"net/http"
	"net/url"

	"github.com/BloggingApp/blog-client/internal/api"
	"github.com/BloggingApp/blog-client/internal/dto"
	"github.com/BloggingApp/blog-client/internal/model"
)

// CommentState is the comment slice. Every failure also drops
// CommentCreated.
type CommentState struct {
	Lifecycle
	CommentCreated *model.Comment            `json:"commentCreated"`
	CommentDeleted *string                   `json:"commentDeleted"`
	CommentUpdated *dto.UpdateCommentRequest `json:"commentUpdated"`
	CommentDetails *model.Comment            `json:"commentDetails"`
	IsUpdated      bool                      `json:"isUpdated"`
}

type CommentSlice struct {
	slice
	token func() string
	state CommentState
}

func (s *CommentSlice) Snapshot() CommentState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *CommentSlice) rejected(err error) {
	s.state.CommentCreated = nil
	s.state.rejected(err)
}

func (s *CommentSlice) Create(ctx context.Context, req dto.CreateCommentRequest) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.Comment]{
		name: "create",
		call: func(ctx context.Context) (*model.Comment, error) {
			return fetch[*model.Comment](ctx, s.exec, authOp(api.Op{
				Method: http.MethodPost,
				Path:   "/api/comments",
				Body:   req,
			}, s.token()))
		},
		pending: s.state.pending,
		fulfilled: func(comment *model.Comment) {
			s.state.CommentCreated = comment
			s.state.fulfilled()
		},
		rejected: s.rejected,
	})
}

// Delete removes a comment. The stored payload is the id, not the response.
func (s *CommentSlice) Delete(ctx context.Context, id string) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[string]{
		name: "delete",
		call: func(ctx context.Context) (string, error) {
			_, err := s.exec.Do(ctx, authOp(api.Op{
				Method: http.MethodDelete,
				Path:   "/api/comments/" + url.PathEscape(id),
			}, s.token()))
			return id, err
		},
		pending: s.state.pending,
		fulfilled: func(id string) {
			s.state.CommentDeleted = &id
			s.state.fulfilled()
		},
		rejected: s.rejected,
	})
}

// Update edits a comment's description. The stored payload is req itself.
// A request without id or description is rejected without calling the
// remote API.
func (s *CommentSlice) Update(ctx context.Context, req dto.UpdateCommentRequest) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[dto.UpdateCommentRequest]{
		name: "update",
		call: func(ctx context.Context) (dto.UpdateCommentRequest, error) {
			if req.ID == "" || req.Description == "" {
				return req, ErrInvalidComment
			}
			_, err := s.exec.Do(ctx, authOp(api.Op{
				Method: http.MethodPut,
				Path:   "/api/comments/" + url.PathEscape(req.ID),
				Body:   struct {
					Description string `json:"description"`
				}{req.Description},
			}, s.token()))
			return req, err
		},
		pending: s.state.pending,
		fulfilled: func(comment dto.UpdateCommentRequest) {
			s.state.CommentUpdated = &comment
			s.state.IsUpdated = false
			s.state.fulfilled()
		},
		rejected: s.rejected,
		signal:   SignalUpdated,
		navigate: func() { s.state.IsUpdated = true },
	})
}

func (s *CommentSlice) Fetch(ctx context.Context, id string) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.Comment]{
		name: "fetch",
		call: func(ctx context.Context) (*model.Comment, error) {
			return fetch[*model.Comment](ctx, s.exec, authOp(api.Op{
				Method: http.MethodGet,
				Path:   "/api/comments/" + url.PathEscape(id),
			}, s.token()))
		},
		pending: s.state.pending,
		fulfilled: func(comment *model.Comment) {
			s.state.CommentDetails = comment
			s.state.fulfilled()
		},
		rejected: s.rejected,
	})
}

func (s *CommentSlice) ConsumeUpdated() bool { return s.consume(&s.state.IsUpdated) }
