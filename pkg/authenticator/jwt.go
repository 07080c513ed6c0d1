package authenticator

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/timebank-lab/backend/config"
)

// TokenEngine issues and verifies access tokens whose subject is the external
// identity of a user.
type TokenEngine interface {
	Generate(sub string) (string, error)
	Verify(token string) (string, error)
}

type jwtTokenEngine struct {
	expiration time.Duration
	issuer     string

	secret  string
	counter int64
	lock    sync.Mutex
}

func NewTokenEngine(cfg config.AuthConfigs) *jwtTokenEngine {
	return &jwtTokenEngine{
		secret:     cfg.TokenSecret,
		issuer:     cfg.Issuer,
		expiration: cfg.TokenExpiration,
	}
}

func (e *jwtTokenEngine) Generate(sub string) (string, error) {
	if sub == "" {
		return "", errors.New("empty subject")
	}

	e.lock.Lock()
	e.counter++
	counter := e.counter
	e.lock.Unlock()

	now := time.Now()
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(e.expiration)),
		ID:        strconv.FormatInt(counter, 10),
		Issuer:    e.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Subject:   sub,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(e.secret))
}

func (e *jwtTokenEngine) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(
		token, &claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(e.secret), nil
		},
	)
	if err != nil {
		return "", err
	}

	if e.issuer != "" && !claims.VerifyIssuer(e.issuer, true) {
		return "", errors.New("invalid issuer")
	}

	if claims.Subject == "" {
		return "", errors.New("missing subject")
	}

	return claims.Subject, nil
}
