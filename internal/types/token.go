package types

import "github.com/golang-jwt/jwt/v5"

// RoleAdmin is the only role the API issues tokens for.
const RoleAdmin = "admin"

// TokenClaims represents the claims in a JWT token
type TokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// IsAdmin reports whether the token grants write access to the catalog.
func (c *TokenClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
