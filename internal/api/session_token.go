package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/rangepicker/internal/services"
)

var errInvalidSessionToken = errors.New("invalid session token")

func (handler *Handler) buildSessionToken(sessionID string) (string, error) {
	now := handler.now()
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.tokenKey)
}

func (handler *Handler) parseSessionToken(raw string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return handler.tokenKey, nil
	}, jwt.WithTimeFunc(handler.now))
	if err != nil || !token.Valid {
		return "", errInvalidSessionToken
	}
	if claims.ExpiresAt == nil || claims.SessionID == "" {
		return "", errInvalidSessionToken
	}
	return claims.SessionID, nil
}

// SessionRequired checks that the session token names the session in the
// path, then loads that session into the request context.
func (handler *Handler) SessionRequired(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Get(sessionTokenHeader))
	if raw == "" {
		return apiError(c, fiber.StatusUnauthorized, "missing session token")
	}

	sessionID, err := handler.parseSessionToken(raw)
	if err != nil || sessionID != c.Params("id") {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	session, err := handler.sessions.Get(sessionID)
	if err != nil {
		return handler.serviceError(c, err)
	}

	c.Locals(contextSessionKey, session)
	c.Locals(contextSessionID, sessionID)
	return c.Next()
}

func currentSession(c *fiber.Ctx) (*services.PickerSession, string, bool) {
	session, ok := c.Locals(contextSessionKey).(*services.PickerSession)
	if !ok || session == nil {
		return nil, "", false
	}
	sessionID, _ := c.Locals(contextSessionID).(string)
	return session, sessionID, true
}
