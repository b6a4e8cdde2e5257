package auth

import "time"

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// Token es un bearer token emitido en el login.
type Token struct {
	Value     string
	ExpiresAt time.Time
}
