package dto

import "io"

// Upload is a file picked by the user for a multipart request.
type Upload struct {
	Filename string
	Content  io.Reader
}

type CreatePostRequest struct {
	Title       string  `form:"title"`
	Description string  `form:"description"`
	Category    string  `form:"category"`
	Image       *Upload `form:"-"`
}

type UpdatePostRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
}

type PostIDRequest struct {
	PostID string `json:"postId"`
}
