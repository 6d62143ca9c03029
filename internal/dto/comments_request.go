package dto

type CreateCommentRequest struct {
	Description string `json:"description"`
	PostID      string `json:"postId"`
}

type UpdateCommentRequest struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
