package dto

type SendMailRequest struct {
	RecipientEmail string `json:"to"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
}

type VerifyAccountRequest struct {
	Token string `json:"token"`
}
