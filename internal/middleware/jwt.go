package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http"              // HTTP status codes for responses
    "strings"               // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/jnanasetu/auth-service/internal/utils" // shared token verification
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject (the user's email) into the request
// context.  The provided secret must match the one used when issuing
// tokens.  Verification goes through utils.VerifyToken so the signature,
// algorithm and expiry rules are identical to the rest of the service.
// Reset-purpose tokens are rejected here: they authorize exactly one
// operation (password reset) and are not a session credential.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Read the Authorization header.  A valid header should start
            // with "Bearer " followed by the JWT.  If it doesn't, respond
            // with 401 Unauthorized.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            claims, err := utils.VerifyToken(secret, raw)
            if err != nil {
                // Expired, tampered and malformed all collapse to one reply.
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }
            if purpose, _ := claims["purpose"].(string); purpose != "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }
            email, _ := claims["sub"].(string)
            if email == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            // Store the subject in the context for handlers downstream.
            c.Set("email", email)
            return next(c)
        }
    }
}
