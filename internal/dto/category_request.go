package dto

type CategoryRequest struct {
	ID    string `json:"-"`
	Title string `json:"title"`
}
