package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

// Claims is the JWT payload the backend issues at login.
type Claims struct {
	UserID     string  `json:"user_id"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	UserType   string  `json:"user_type,omitempty"`
	TikangCash float64 `json:"tikang_cash,omitempty"`
	jwt.RegisteredClaims
}

// DecodeClaims parses a token without verifying its signature: this layer
// never holds the signing secret, so decoded claims are untrusted. The
// resulting profile is marked unverified and must not be used for balance
// or role-gated decisions.
func DecodeClaims(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return claims, nil
}

// Profile projects decoded claims into an unverified profile.
func (c *Claims) Profile() *owner.UserProfile {
	return &owner.UserProfile{
		UserID:     c.UserID,
		FullName:   c.FullName,
		Email:      c.Email,
		UserType:   c.UserType,
		TikangCash: c.TikangCash,
		Verified:   false,
	}
}
