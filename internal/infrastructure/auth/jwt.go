// Package auth verifies identity tokens issued by the external identity
// provider and mints equivalent tokens for local development.
package auth

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pulseboard/internal/domain/access"
	"pulseboard/internal/shared/errors"
)

// Claims carries the identity provider's profile claims. The subject is the user id.
type Claims struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	issuer           string
	accessExpMinutes int
	now              func() time.Time
}

func NewJWTService(secret, issuer string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		issuer:           issuer,
		accessExpMinutes: accessExpMinutes,
		now:              time.Now,
	}
}

// Verify parses an HS256 identity token into a caller. Expired tokens yield
// a token-expired AuthError; anything else unverifiable yields token-invalid.
func (s *JWTService) Verify(tokenString string) (*access.Caller, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.NewTokenExpiredError()
		}
		return nil, errors.NewTokenInvalidError(err.Error())
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.NewTokenInvalidError("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.NewTokenInvalidError("token has no subject")
	}

	return &access.Caller{
		ID:        claims.Subject,
		Email:     claims.Email,
		FirstName: claims.GivenName,
		LastName:  claims.FamilyName,
	}, nil
}

// Issue signs a token for caller. It stands in for the identity provider
// in local setups.
func (s *JWTService) Issue(caller access.Caller) (string, error) {
	if caller.ID == "" {
		return "", fmt.Errorf("user id is required")
	}

	now := s.now().UTC()
	claims := &Claims{
		Email:      caller.Email,
		GivenName:  caller.FirstName,
		FamilyName: caller.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.ID,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.accessExpMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// AccessExpMinutes returns the token lifetime in minutes
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
