// models/auth.go - Auth-related models
package models

// ============== AUTH REQUESTS ==============

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Email            string           `json:"email" validate:"required,email"`
	Password         string           `json:"password" validate:"required,min=6"`
	FirstName        string           `json:"firstName" validate:"required"`
	LastName         string           `json:"lastName" validate:"required"`
	Phone            string           `json:"phone" validate:"required,phone"`
	EmergencyContact *PersonalContact `json:"emergencyContact,omitempty"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ============== AUTH RESPONSES ==============

type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}
