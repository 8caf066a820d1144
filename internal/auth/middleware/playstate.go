package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const playStateTTL = 24 * time.Hour

var ErrBadPlayState = errors.New("invalid or expired quiz progress")

type playClaims struct {
	QuizID string `json:"quiz_id"`
	PlayID string `json:"play_id"`
	jwt.RegisteredClaims
}

// SignPlayState binds a stored play to the quiz and viewer it was started
// for. Progress itself stays on the server.
func (a *AuthService) SignPlayState(playID, quizID, viewer string) (string, error) {
	now := time.Now()
	claims := &playClaims{
		QuizID: quizID,
		PlayID: playID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   viewer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(playStateTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.hmac)
}

// ParsePlayState verifies a token from SignPlayState and returns its play id
// when it was issued for the same quiz and viewer.
func (a *AuthService) ParsePlayState(tokenStr, quizID, viewer string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &playClaims{}, a.keyFunc,
		jwt.WithIssuer(issuer), jwt.WithSubject(viewer))
	if err != nil {
		return "", ErrBadPlayState
	}
	c, ok := token.Claims.(*playClaims)
	if !ok || !token.Valid || c.QuizID != quizID || c.PlayID == "" {
		return "", ErrBadPlayState
	}
	return c.PlayID, nil
}
