package store

import "github.com/BloggingApp/blog-client/internal/api"

// ErrInvalidComment rejects a comment update locally, without a request.
var ErrInvalidComment = &api.RejectionError{Message: "Invalid comment object"}
