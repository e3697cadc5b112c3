package jwt

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carries the authenticated user id. Tokens are issued by an upstream
// identity provider; this service only needs the shared HMAC secret to verify
// them. GenerateToken exists for tooling and tests.
type Claims struct {
	UserID string `json:"user_id"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateToken(userID string, expiresIn time.Duration) (string, error)
	ValidateToken(tokenString string) (Claims, error)
}

type HMACService struct {
	secret []byte

	now func() time.Time
}

func NewHMACService(secret string) *HMACService {
	return &HMACService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

func (s *HMACService) GenerateToken(userID string, expiresIn time.Duration) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || len(s.secret) == 0 || expiresIn <= 0 {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		UserID: userID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(expiresIn)),
			Subject:   userID,
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	if len(s.secret) == 0 {
		return Claims{}, ErrTokenInvalid
	}

	p := jwtlib.NewParser(jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if c.UserID == "" {
		c.UserID = c.Subject
	}
	if c.UserID == "" {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}
