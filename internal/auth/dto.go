package auth

import "github.com/cardlinkhq/cardlink-backend/internal/admins"

// LoginRequest carries the credential pair for the admin login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns the signed access token plus the authenticated
// admin's public fields.
type LoginResponse struct {
	Token string           `json:"token"`
	Admin *admins.AdminDTO `json:"admin"`
}
