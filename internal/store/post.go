package store

import (
	"context"
	"net/http"
	"net/url"

	"github.com/BloggingApp/blog-client/internal/api"
	"github.com/BloggingApp/blog-client/internal/dto"
	"github.com/BloggingApp/blog-client/internal/model"
)

// PostState is the post slice. All three flags are cleared by their own
// fulfilled handler, so at rest they read false and views learn about the
// redirect from the signal bus.
type PostState struct {
	Lifecycle
	PostCreated *model.Post   `json:"postCreated"`
	PostUpdated *model.Post   `json:"postUpdated"`
	PostList    []*model.Post `json:"postList"`
	PostDetails *model.Post   `json:"postDetails"`
	Likes       *model.Post   `json:"likes"`
	UnLikes     *model.Post   `json:"unLikes"`
	IsCreated   bool          `json:"isCreated"`
	IsUpdated   bool          `json:"isUpdated"`
	IsDeleted   bool          `json:"isDeleted"`
}

type PostSlice struct {
	slice
	token func() string
	state PostState
}

func (s *PostSlice) Snapshot() PostState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *PostSlice) Create(ctx context.Context, req dto.CreatePostRequest) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.Post]{
		name: "create",
		call: func(ctx context.Context) (*model.Post, error) {
			return fetch[*model.Post](ctx, s.exec, authOp(api.Op{
				Method: http.MethodPost,
				Path:   "/api/posts",
				Form: &api.Form{
					Fields: map[string]string{
						"title":       req.Title,
						"description": req.Description,
						"category":    req.Category,
					},
					FileField: "image",
					File:      req.Image,
				},
			}, s.token()))
		},
		pending: s.state.pending,
		fulfilled: func(post *model.Post) {
			s.state.PostCreated = post
			s.state.IsCreated = false
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
		signal:   SignalCreated,
		navigate: func() { s.state.IsCreated = true },
	})
}

func (s *PostSlice) Update(ctx context.Context, req dto.UpdatePostRequest) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.Post]{
		name: "update",
		call: func(ctx context.Context) (*model.Post, error) {
			return fetch[*model.Post](ctx, s.exec, authOp(api.Op{
				Method: http.MethodPut,
				Path:   "/api/posts/" + url.PathEscape(req.ID),
				Body:   req,
			}, s.token()))
		},
		pending: s.state.pending,
		fulfilled: func(post *model.Post) {
			s.state.PostUpdated = post
			s.state.IsUpdated = false
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
		signal:   SignalUpdated,
		navigate: func() { s.state.IsUpdated = true },
	})
}

// Delete stores the deleted post in PostUpdated; the slice has no separate
// field for it.
func (s *PostSlice) Delete(ctx context.Context, id string) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.Post]{
		name: "delete",
		call: func(ctx context.Context) (*model.Post, error) {
			return fetch[*model.Post](ctx, s.exec, authOp(api.Op{
				Method: http.MethodDelete,
				Path:   "/api/posts/" + url.PathEscape(id),
			}, s.token()))
		},
		pending: s.state.pending,
		fulfilled: func(post *model.Post) {
			s.state.PostUpdated = post
			s.state.IsDeleted = false
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
		signal:   SignalDeleted,
		navigate: func() { s.state.IsDeleted = true },
	})
}

// List fetches posts, filtered by category title when category is not
// empty.
func (s *PostSlice) List(ctx context.Context, category string) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[[]*model.Post]{
		name: "list",
		call: func(ctx context.Context) ([]*model.Post, error) {
			return fetch[[]*model.Post](ctx, s.exec, api.Op{
				Method: http.MethodGet,
				Path:   "/api/posts",
				Query:  url.Values{"category": {category}},
			})
		},
		pending: s.state.pending,
		fulfilled: func(posts []*model.Post) {
			s.state.PostList = posts
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
	})
}

func (s *PostSlice) Details(ctx context.Context, id string) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.Post]{
		name: "fetch details of",
		call: func(ctx context.Context) (*model.Post, error) {
			return fetch[*model.Post](ctx, s.exec, api.Op{
				Method: http.MethodGet,
				Path:   "/api/posts/" + url.PathEscape(id),
			})
		},
		pending: s.state.pending,
		fulfilled: func(post *model.Post) {
			s.state.PostDetails = post
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
	})
}

// ToggleLike asks the remote API to flip the caller's like on the post. The
// slice does not touch PostList or PostDetails; views refetch.
func (s *PostSlice) ToggleLike(ctx context.Context, postID string) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.Post]{
		name: "like",
		call: func(ctx context.Context) (*model.Post, error) {
			return fetch[*model.Post](ctx, s.exec, authOp(api.Op{
				Method: http.MethodPut,
				Path:   "/api/posts/likes",
				Body:   dto.PostIDRequest{PostID: postID},
			}, s.token()))
		},
		pending: s.state.pending,
		fulfilled: func(post *model.Post) {
			s.state.Likes = post
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
	})
}

func (s *PostSlice) ToggleUnlike(ctx context.Context, postID string) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.Post]{
		name: "unlike",
		call: func(ctx context.Context) (*model.Post, error) {
			return fetch[*model.Post](ctx, s.exec, authOp(api.Op{
				Method: http.MethodPut,
				Path:   "/api/posts/unLikes",
				Body:   dto.PostIDRequest{PostID: postID},
			}, s.token()))
		},
		pending: s.state.pending,
		fulfilled: func(post *model.Post) {
			s.state.UnLikes = post
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
	})
}

func (s *PostSlice) ConsumeCreated() bool { return s.consume(&s.state.IsCreated) }
func (s *PostSlice) ConsumeUpdated() bool { return s.consume(&s.state.IsUpdated) }
func (s *PostSlice) ConsumeDeleted() bool { return s.consume(&s.state.IsDeleted) }
