package model

import "time"

type Post struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Category    string     `json:"category"`
	Author      *User      `json:"author,omitempty"`
	Likes       []string   `json:"likes"`
	UnLikes     []string   `json:"unLikes"`
	NumViews    int64      `json:"numViews"`
	Comments    []*Comment `json:"comments,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// IsLikedBy reports whether userID is in the post's likes set.
func (p *Post) IsLikedBy(userID string) bool {
	return contains(p.Likes, userID)
}

func (p *Post) IsUnLikedBy(userID string) bool {
	return contains(p.UnLikes, userID)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
