package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kemet-travel/kemet-api/internal/jwt"
	"github.com/kemet-travel/kemet-api/internal/middlewares"
)

// authedRequest builds a request carrying the claims AuthMiddleware would
// have stored for the given caller.
func authedRequest(method, target string, body io.Reader, callerID uuid.UUID, role string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	claims := &jwt.Claims{
		Role: role,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject: callerID.String(),
		},
	}
	return req.WithContext(middlewares.SetClaimsToContext(req.Context(), claims))
}
