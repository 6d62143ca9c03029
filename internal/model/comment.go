package model

import "time"

type Comment struct {
	ID          string    `json:"_id"`
	Description string    `json:"description"`
	Author      *User     `json:"user,omitempty"`
	PostID      string    `json:"post"`
	CreatedAt   time.Time `json:"createdAt"`
}
