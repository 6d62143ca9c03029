package dto

import "time"

// ErrorResponse is the body the remote API sends with a rejected request.
type ErrorResponse struct {
	Message string `json:"message"`
}

type BasicResponse struct {
	Ok        bool      `json:"ok"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

func NewBasicResponse(ok bool, details string) BasicResponse {
	return BasicResponse{
		Ok:        ok,
		Details:   details,
		Timestamp: time.Now(),
	}
}

type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
	IsAdmin       bool `json:"isAdmin"`
}

type OutcomeResponse struct {
	Kind    string      `json:"kind"`
	Signal  string      `json:"signal,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// IntentResponse is what an intent route answers: the outcomes in the order
// they were reduced and the slice as it stands afterwards.
type IntentResponse struct {
	Outcomes []OutcomeResponse `json:"outcomes"`
	State    interface{}       `json:"state"`
}
