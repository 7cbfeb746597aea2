package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents session token information
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType" example:"Bearer"`
	ExpiresIn int    `json:"expiresIn" example:"86400"`
}
