package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "MarketAI"
	JWTExpirationTime        = time.Hour * 24
)

// UserClaims carries the business identity encoded in our tokens.
type UserClaims struct {
	UserID uint64 `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
