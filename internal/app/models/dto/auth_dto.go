package dto

// RegisterRequest represents a user registration payload. Every field is
// required; presence is the only format rule.
type RegisterRequest struct {
	Type        string `json:"type" binding:"required" example:"admin"`
	FullName    string `json:"full_name" binding:"required" example:"Amit Kumar"`
	Username    string `json:"username" binding:"required" example:"amit"`
	Email       string `json:"email" binding:"required" example:"amit@example.com"`
	Password    string `json:"password" binding:"required" example:"amit@123"`
	SubmittedBy string `json:"submitted_by" binding:"required" example:"admin"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"amit"`
	Password string `json:"password" binding:"required" example:"amit@123"`
}

// TokenResponse carries the bearer token issued on a successful login.
// The field name matches the original wire format.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
