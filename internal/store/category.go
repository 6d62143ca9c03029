package store

import (
	"context"
	"net/http"
	"net/url"

	"github.com/BloggingApp/blog-client/internal/api"
	"github.com/BloggingApp/blog-client/internal/dto"
	"github.com/BloggingApp/blog-client/internal/model"
)

// CategoryState is the category slice. IsCreated and IsEdited stay set once
// raised, until a view consumes them; IsDeleted is cleared again by the
// delete fulfilled handler.
type CategoryState struct {
	Lifecycle
	Category        *model.Category   `json:"category"`
	CategoryList    []*model.Category `json:"categoryList"`
	UpdateCategory  *model.Category   `json:"updateCategory"`
	DeletedCategory *model.Category   `json:"deletedCategory"`
	IsCreated       bool              `json:"isCreated"`
	IsEdited        bool              `json:"isEdited"`
	IsDeleted       bool              `json:"isDeleted"`
}

type CategorySlice struct {
	slice
	token func() string
	state CategoryState
}

func (s *CategorySlice) Snapshot() CategoryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *CategorySlice) Create(ctx context.Context, req dto.CategoryRequest) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.Category]{
		name: "create",
		call: func(ctx context.Context) (*model.Category, error) {
			return fetch[*model.Category](ctx, s.exec, authOp(api.Op{
				Method: http.MethodPost,
				Path:   "/api/category",
				Body:   dto.CategoryRequest{Title: req.Title},
			}, s.token()))
		},
		pending: s.state.pending,
		fulfilled: func(category *model.Category) {
			s.state.Category = category
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
		signal:   SignalCreated,
		navigate: func() { s.state.IsCreated = true },
	})
}

func (s *CategorySlice) List(ctx context.Context) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[[]*model.Category]{
		name: "list",
		call: func(ctx context.Context) ([]*model.Category, error) {
			return fetch[[]*model.Category](ctx, s.exec, authOp(api.Op{
				Method: http.MethodGet,
				Path:   "/api/category",
			}, s.token()))
		},
		pending: s.state.pending,
		fulfilled: func(categories []*model.Category) {
			s.state.CategoryList = categories
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
	})
}

func (s *CategorySlice) Fetch(ctx context.Context, id string) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.Category]{
		name: "fetch",
		call: func(ctx context.Context) (*model.Category, error) {
			return fetch[*model.Category](ctx, s.exec, authOp(api.Op{
				Method: http.MethodGet,
				Path:   "/api/category/" + url.PathEscape(id),
			}, s.token()))
		},
		pending: s.state.pending,
		fulfilled: func(category *model.Category) {
			s.state.Category = category
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
	})
}

func (s *CategorySlice) Update(ctx context.Context, req dto.CategoryRequest) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.Category]{
		name: "update",
		call: func(ctx context.Context) (*model.Category, error) {
			return fetch[*model.Category](ctx, s.exec, authOp(api.Op{
				Method: http.MethodPut,
				Path:   "/api/category/" + url.PathEscape(req.ID),
				Body:   dto.CategoryRequest{Title: req.Title},
			}, s.token()))
		},
		pending: s.state.pending,
		fulfilled: func(category *model.Category) {
			s.state.UpdateCategory = category
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
		signal:   SignalEdited,
		navigate: func() { s.state.IsEdited = true },
	})
}

func (s *CategorySlice) Delete(ctx context.Context, id string) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.Category]{
		name: "delete",
		call: func(ctx context.Context) (*model.Category, error) {
			return fetch[*model.Category](ctx, s.exec, authOp(api.Op{
				Method: http.MethodDelete,
				Path:   "/api/category/" + url.PathEscape(id),
			}, s.token()))
		},
		pending: s.state.pending,
		fulfilled: func(category *model.Category) {
			s.state.DeletedCategory = category
			s.state.IsDeleted = false
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
		signal:   SignalDeleted,
		navigate: func() { s.state.IsDeleted = true },
	})
}

func (s *CategorySlice) ConsumeCreated() bool { return s.consume(&s.state.IsCreated) }
func (s *CategorySlice) ConsumeEdited() bool  { return s.consume(&s.state.IsEdited) }
func (s *CategorySlice) ConsumeDeleted() bool { return s.consume(&s.state.IsDeleted) }
