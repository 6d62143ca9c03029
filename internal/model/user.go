package model

import "time"

type User struct {
	ID                string    `json:"_id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	ProfilePhoto      string    `json:"profilePhoto"`
	Email             string    `json:"email"`
	Bio               string    `json:"bio,omitempty"`
	IsAdmin           bool      `json:"isAdmin"`
	IsBlocked         bool      `json:"isBlocked"`
	IsAccountVerified bool      `json:"isAccountVerified"`
	Followers         []string  `json:"followers,omitempty"`
	Following         []string  `json:"following,omitempty"`
	Posts             []*Post   `json:"posts,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}
