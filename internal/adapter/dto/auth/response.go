package auth

import personDTO "github.com/csiedev/meeting-records/internal/adapter/dto/person"

// LoginResponse represents the response to a successful login
type LoginResponse struct {
	AccessToken  string                    `json:"access_token"`
	RefreshToken string                    `json:"refresh_token,omitempty"`
	TokenType    string                    `json:"token_type"`
	ExpiresIn    int64                     `json:"expires_in"`
	Person       *personDTO.PersonResponse `json:"person"`
}
