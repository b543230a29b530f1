package auth

import (
	"time"

	"github.com/heartmarshall/default-registry/internal/domain"
)

// TokenResult is returned by Login.
type TokenResult struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *domain.User
}
