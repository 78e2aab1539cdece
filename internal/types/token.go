package types

// TokenClaims is the identity carried by a bearer token.
type TokenClaims struct {
	UserID   uint   `json:"id"`
	Username string `json:"username"`
}
