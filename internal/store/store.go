// Package store holds the client's application state: six slices, each the
// single writer of its own partition, driven by intents that call the remote
// API and reduce the outcome.
package store

import (
	"context"

	"github.com/BloggingApp/blog-client/internal/session"
	"go.uber.org/zap"
)

const (
	SliceUsers        = "users"
	SliceCategory     = "category"
	SlicePost         = "post"
	SliceComment      = "comment"
	SliceMail         = "sendMail"
	SliceVerification = "accountVerification"
)

type Store struct {
	Users        *UsersSlice
	Category     *CategorySlice
	Post         *PostSlice
	Comment      *CommentSlice
	Mail         *MailSlice
	Verification *VerificationSlice
	Bus          *Bus
}

// State is a point-in-time copy of every slice.
type State struct {
	Users        UsersState        `json:"users"`
	Category     CategoryState     `json:"category"`
	Post         PostState         `json:"post"`
	Comment      CommentState      `json:"comment"`
	Mail         MailState         `json:"sendMail"`
	Verification VerificationState `json:"accountVerification"`
}

// New builds the state tree. The users slice starts with whatever credential
// storage holds, so the client opens signed in when a session survived.
func New(ctx context.Context, logger *zap.Logger, exec Executor, storage session.Storage) *Store {
	bus := NewBus(logger)

	users := &UsersSlice{
		slice:   slice{name: SliceUsers, exec: exec, bus: bus, logger: logger},
		storage: storage,
	}
	users.state.UserAuth = session.Bootstrap(ctx, storage, logger)

	return &Store{
		Users: users,
		Category: &CategorySlice{
			slice: slice{name: SliceCategory, exec: exec, bus: bus, logger: logger},
			token: users.Token,
		},
		Post: &PostSlice{
			slice: slice{name: SlicePost, exec: exec, bus: bus, logger: logger},
			token: users.Token,
		},
		Comment: &CommentSlice{
			slice: slice{name: SliceComment, exec: exec, bus: bus, logger: logger},
			token: users.Token,
		},
		Mail: &MailSlice{
			slice: slice{name: SliceMail, exec: exec, bus: bus, logger: logger},
			token: users.Token,
		},
		Verification: &VerificationSlice{
			slice: slice{name: SliceVerification, exec: exec, bus: bus, logger: logger},
			token: users.Token,
		},
		Bus: bus,
	}
}

func (st *Store) Snapshot() State {
	return State{
		Users:        st.Users.Snapshot(),
		Category:     st.Category.Snapshot(),
		Post:         st.Post.Snapshot(),
		Comment:      st.Comment.Snapshot(),
		Mail:         st.Mail.Snapshot(),
		Verification: st.Verification.Snapshot(),
	}
}

// SliceSnapshot returns the copy of one slice by its state-tree name.
func (st *Store) SliceSnapshot(name string) (interface{}, bool) {
	switch name {
	case SliceUsers:
		return st.Users.Snapshot(), true
	case SliceCategory:
		return st.Category.Snapshot(), true
	case SlicePost:
		return st.Post.Snapshot(), true
	case SliceComment:
		return st.Comment.Snapshot(), true
	case SliceMail:
		return st.Mail.Snapshot(), true
	case SliceVerification:
		return st.Verification.Snapshot(), true
	}
	return nil, false
}

// consume returns flag and clears it. Views call the Consume methods once
// they acted on a redirect.
func (s *slice) consume(flag *bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := *flag
	*flag = false
	return v
}
