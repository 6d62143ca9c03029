package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/BloggingApp/blog-client/internal/api"
	"github.com/BloggingApp/blog-client/internal/dto"
	"github.com/BloggingApp/blog-client/internal/model"
	"github.com/BloggingApp/blog-client/internal/session"
)

// UsersState is the users slice. Profile fetches and unfollows keep their
// own request status so that they do not disturb forms bound to the main
// one.
type UsersState struct {
	Lifecycle
	UserAuth          *model.Credential `json:"userAuth"`
	Registered        *model.User       `json:"registered"`
	Profile           *model.User       `json:"profile"`
	ProfileStatus     Lifecycle         `json:"profileStatus"`
	UsersList         []*model.User     `json:"usersList"`
	UserDetails       *model.User       `json:"userDetails"`
	Followed          *model.User       `json:"followed"`
	UnFollowed        *model.User       `json:"unFollowed"`
	UnfollowStatus    Lifecycle         `json:"unfollowStatus"`
	UserUpdated       *model.User       `json:"userUpdated"`
	PasswordUpdated   *model.User       `json:"passwordUpdated"`
	ProfilePhoto      *model.User       `json:"profilePhoto"`
	Blocked           *model.User       `json:"blocked"`
	Unblocked         *model.User       `json:"unblocked"`
	PasswordToken     json.RawMessage   `json:"passwordToken"`
	PasswordReset     json.RawMessage   `json:"passwordReset"`
	IsUpdated         bool              `json:"isUpdated"`
	IsPasswordUpdated bool              `json:"isPasswordUpdated"`
}

type UsersSlice struct {
	slice
	storage session.Storage
	state   UsersState
}

func (s *UsersSlice) Snapshot() UsersState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the bearer token of the signed-in user, or "".
func (s *UsersSlice) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.UserAuth == nil {
		return ""
	}
	return s.state.UserAuth.Token
}

func (s *UsersSlice) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.UserAuth != nil
}

func (s *UsersSlice) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.UserAuth != nil && s.state.UserAuth.IsAdmin
}

// users runs a users-slice operation whose destination is a *model.User,
// using the main request status.
func (s *UsersSlice) users(ctx context.Context, name string, op api.Op, dest func(*model.User)) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.User]{
		name: name,
		call: func(ctx context.Context) (*model.User, error) {
			if op.RequiresAuth {
				op.Token = s.Token()
			}
			return fetch[*model.User](ctx, s.exec, op)
		},
		pending: s.state.pendingClear,
		fulfilled: func(user *model.User) {
			dest(user)
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
	})
}

func (s *UsersSlice) Register(ctx context.Context, req dto.RegisterRequest) ([]Outcome, error) {
	return s.users(ctx, "register", api.Op{
		Method: http.MethodPost,
		Path:   "/api/users/register",
		Body:   req,
	}, func(user *model.User) { s.state.Registered = user })
}

// Login authenticates and, before the slice sees the result, overwrites the
// stored credential so that the next start is already signed in.
func (s *UsersSlice) Login(ctx context.Context, req dto.LoginRequest) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.Credential]{
		name: "login",
		call: func(ctx context.Context) (*model.Credential, error) {
			credential, err := fetch[*model.Credential](ctx, s.exec, api.Op{
				Method: http.MethodPost,
				Path:   "/api/users/login",
				Body:   req,
			})
			if err != nil || credential == nil {
				return credential, err
			}
			if err := session.Persist(ctx, s.storage, *credential); err != nil {
				return nil, &api.FaultError{Err: err}
			}
			return credential, nil
		},
		pending: s.state.pendingClear,
		fulfilled: func(credential *model.Credential) {
			s.state.UserAuth = credential
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
	})
}

func (s *UsersSlice) Profile(ctx context.Context, id string) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.User]{
		name: "fetch profile of",
		call: func(ctx context.Context) (*model.User, error) {
			return fetch[*model.User](ctx, s.exec, authOp(api.Op{
				Method: http.MethodGet,
				Path:   "/api/users/profile/" + url.PathEscape(id),
			}, s.Token()))
		},
		pending: s.state.ProfileStatus.pendingClear,
		fulfilled: func(user *model.User) {
			s.state.Profile = user
			s.state.ProfileStatus.fulfilled()
		},
		rejected: s.state.ProfileStatus.rejected,
	})
}

func (s *UsersSlice) List(ctx context.Context) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[[]*model.User]{
		name: "list",
		call: func(ctx context.Context) ([]*model.User, error) {
			return fetch[[]*model.User](ctx, s.exec, authOp(api.Op{
				Method: http.MethodGet,
				Path:   "/api/users",
			}, s.Token()))
		},
		pending: s.state.pendingClear,
		fulfilled: func(users []*model.User) {
			s.state.UsersList = users
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
	})
}

func (s *UsersSlice) Details(ctx context.Context, id string) ([]Outcome, error) {
	return s.users(ctx, "fetch details of", api.Op{
		Method: http.MethodGet,
		Path:   "/api/users/" + url.PathEscape(id),
	}, func(user *model.User) { s.state.UserDetails = user })
}

// Follow makes the signed-in user follow id. Success or failure, any
// previous unfollow result is dropped.
func (s *UsersSlice) Follow(ctx context.Context, id string) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.User]{
		name: "follow",
		call: func(ctx context.Context) (*model.User, error) {
			return fetch[*model.User](ctx, s.exec, authOp(api.Op{
				Method: http.MethodPut,
				Path:   "/api/users/follow",
				Body:   dto.FollowRequest{FollowID: id},
			}, s.Token()))
		},
		pending: s.state.pendingClear,
		fulfilled: func(user *model.User) {
			s.state.Followed = user
			s.state.UnFollowed = nil
			s.state.fulfilled()
		},
		rejected: func(err error) {
			s.state.rejected(err)
			s.state.UnFollowed = nil
		},
	})
}

// Unfollow reports through UnfollowStatus. Only success drops Followed.
func (s *UsersSlice) Unfollow(ctx context.Context, id string) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.User]{
		name: "unfollow",
		call: func(ctx context.Context) (*model.User, error) {
			return fetch[*model.User](ctx, s.exec, authOp(api.Op{
				Method: http.MethodPut,
				Path:   "/api/users/unfollow",
				Body:   dto.UnfollowRequest{UnFollowID: id},
			}, s.Token()))
		},
		pending: s.state.UnfollowStatus.pendingClear,
		fulfilled: func(user *model.User) {
			s.state.UnFollowed = user
			s.state.Followed = nil
			s.state.UnfollowStatus.fulfilled()
		},
		rejected: s.state.UnfollowStatus.rejected,
	})
}

func (s *UsersSlice) Update(ctx context.Context, req dto.UpdateProfileRequest) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.User]{
		name: "update",
		call: func(ctx context.Context) (*model.User, error) {
			return fetch[*model.User](ctx, s.exec, authOp(api.Op{
				Method: http.MethodPut,
				Path:   "/api/users",
				Body:   req,
			}, s.Token()))
		},
		pending: s.state.pendingClear,
		fulfilled: func(user *model.User) {
			s.state.UserUpdated = user
			s.state.IsUpdated = false
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
		signal:   SignalUpdated,
		navigate: func() { s.state.IsUpdated = true },
	})
}

func (s *UsersSlice) UpdatePassword(ctx context.Context, password string) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[*model.User]{
		name: "update password of",
		call: func(ctx context.Context) (*model.User, error) {
			return fetch[*model.User](ctx, s.exec, authOp(api.Op{
				Method: http.MethodPut,
				Path:   "/api/users/password",
				Body:   dto.UpdatePasswordRequest{Password: password},
			}, s.Token()))
		},
		pending: s.state.pendingClear,
		fulfilled: func(user *model.User) {
			s.state.PasswordUpdated = user
			s.state.IsPasswordUpdated = false
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
		signal:   SignalPasswordUpdated,
		navigate: func() { s.state.IsPasswordUpdated = true },
	})
}

func (s *UsersSlice) UploadPhoto(ctx context.Context, image *dto.Upload) ([]Outcome, error) {
	return s.users(ctx, "upload photo of", api.Op{
		Method:       http.MethodPut,
		Path:         "/api/users/profile-photo-upload",
		Form:         &api.Form{FileField: "image", File: image},
		RequiresAuth: true,
	}, func(user *model.User) { s.state.ProfilePhoto = user })
}

func (s *UsersSlice) Block(ctx context.Context, id string) ([]Outcome, error) {
	return s.users(ctx, "block", api.Op{
		Method:       http.MethodPut,
		Path:         "/api/users/block-user/" + url.PathEscape(id),
		Body:         struct{}{},
		RequiresAuth: true,
	}, func(user *model.User) { s.state.Blocked = user })
}

func (s *UsersSlice) Unblock(ctx context.Context, id string) ([]Outcome, error) {
	return s.users(ctx, "unblock", api.Op{
		Method:       http.MethodPut,
		Path:         "/api/users/unblock-user/" + url.PathEscape(id),
		Body:         struct{}{},
		RequiresAuth: true,
	}, func(user *model.User) { s.state.Unblocked = user })
}

// Logout forgets the credential locally. The remote API is not told; the
// token stays valid there until it expires.
func (s *UsersSlice) Logout(ctx context.Context) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[struct{}]{
		name: "logout",
		call: func(ctx context.Context) (struct{}, error) {
			if err := s.storage.Delete(ctx); err != nil {
				return struct{}{}, &api.FaultError{Err: err}
			}
			return struct{}{}, nil
		},
		pending: func() { s.state.Loading = false },
		fulfilled: func(struct{}) {
			s.state.UserAuth = nil
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
	})
}

func (s *UsersSlice) PasswordResetToken(ctx context.Context, email string) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[json.RawMessage]{
		name: "request password reset token for",
		call: func(ctx context.Context) (json.RawMessage, error) {
			return s.exec.Do(ctx, api.Op{
				Method: http.MethodPost,
				Path:   "/api/users/forget-password-token",
				Body:   dto.PasswordResetTokenRequest{Email: email},
			})
		},
		pending: s.state.pendingClear,
		fulfilled: func(token json.RawMessage) {
			s.state.PasswordToken = token
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
	})
}

func (s *UsersSlice) PasswordReset(ctx context.Context, req dto.PasswordResetRequest) ([]Outcome, error) {
	return dispatch(ctx, &s.slice, operation[json.RawMessage]{
		name: "reset password of",
		call: func(ctx context.Context) (json.RawMessage, error) {
			return s.exec.Do(ctx, api.Op{
				Method: http.MethodPut,
				Path:   "/api/users/reset-password",
				Body:   req,
			})
		},
		pending: s.state.pendingClear,
		fulfilled: func(reset json.RawMessage) {
			s.state.PasswordReset = reset
			s.state.fulfilled()
		},
		rejected: s.state.rejected,
	})
}

func (s *UsersSlice) ConsumeUpdated() bool         { return s.consume(&s.state.IsUpdated) }
func (s *UsersSlice) ConsumePasswordUpdated() bool { return s.consume(&s.state.IsPasswordUpdated) }
