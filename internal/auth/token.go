// Package auth issues and verifies the signed, time-limited tokens
// that prove an account's identity on each request.
package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the claim set recovered from a verified token.
type Identity struct {
	UserID string
	Email  string
}

// Manager signs and verifies access tokens with a process-wide secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// IssueToken binds the account id and email into a signed HS256 token.
func (m *Manager) IssueToken(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyToken fails closed: malformed, expired and badly signed tokens
// all come back as the same single invalid outcome. Callers must not
// be able to tell the reasons apart.
func (m *Manager) VerifyToken(tokenString string) (*Identity, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, false
	}
	email, _ := claims["email"].(string)

	return &Identity{UserID: userID, Email: email}, true
}

// Authenticate resolves the request credential to an identity. Absent
// and invalid credentials are indistinguishable to the caller; both
// return ok=false.
func (m *Manager) Authenticate(r *http.Request) (*Identity, bool) {
	tokenString := TokenFromRequest(r)
	if tokenString == "" {
		return nil, false
	}
	return m.VerifyToken(tokenString)
}

// TokenFromRequest extracts the credential from the Authorization or
// X-Authorization header. Both a raw token value and a
// "Bearer <token>" value are accepted; the prefix match is
// case-insensitive.
func TokenFromRequest(r *http.Request) string {
	value := r.Header.Get("Authorization")
	if value == "" {
		value = r.Header.Get("X-Authorization")
	}
	if value == "" {
		return ""
	}

	parts := strings.SplitN(value, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return value
}
