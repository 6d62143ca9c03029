package model

// Credential is the authenticated session record returned by login and kept
// in durable client storage between runs.
type Credential struct {
	ID           string `json:"_id"`
	Token        string `json:"token"`
	IsAdmin      bool   `json:"isAdmin"`
	IsVerified   bool   `json:"isVerified"`
	ProfilePhoto string `json:"profilePhoto"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
}
