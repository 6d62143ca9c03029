package dto

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password"`
}

type FollowRequest struct {
	FollowID string `json:"followId"`
}

type UnfollowRequest struct {
	UnFollowID string `json:"unFollowId"`
}

type PasswordResetTokenRequest struct {
	Email string `json:"email"`
}

type PasswordResetRequest struct {
	Password   string `json:"password"`
	ResetToken string `json:"resetToken"`
}
