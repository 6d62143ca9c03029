package model

import "time"

type Category struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Author    *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
