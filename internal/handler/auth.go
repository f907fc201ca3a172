package handler

import (
    "context"              // context with cancellation for DB calls
    "errors"               // sentinel error matching
    "fmt"                  // reset link construction
    "net/http"             // HTTP status codes and primitives
    "time"                 // timeouts for DB calls and token TTLs

    "github.com/golang-jwt/jwt/v5" // claim maps for issued tokens
    "github.com/labstack/echo/v4"  // Echo framework for HTTP routing

    "github.com/jnanasetu/auth-service/internal/config"   // app configuration
    "github.com/jnanasetu/auth-service/internal/identity" // federated identity verification
    "github.com/jnanasetu/auth-service/internal/mail"     // outbound notifications
    "github.com/jnanasetu/auth-service/internal/model"    // user record and sentinel hash
    "github.com/jnanasetu/auth-service/internal/repository" // store sentinel errors
    "github.com/jnanasetu/auth-service/internal/utils"    // hashing and token issuing
)

// resetPurpose is the purpose claim required on password-reset tokens.
// Access tokens carry no purpose claim at all.
const resetPurpose = "reset"

// forgotPasswordMessage is returned by ForgotPassword regardless of whether
// the email is registered, so account existence cannot be inferred from
// this endpoint.
const forgotPasswordMessage = "If the email is registered, a reset link will be sent."

// UserStore is the credential-store surface the handlers need. It is
// implemented by repository.UserRepo; tests supply an in-memory fake.
type UserStore interface {
    Create(ctx context.Context, fullName, email, hashedPassword string, termsAccepted bool) (uint64, error)
    GetByEmail(ctx context.Context, email string) (model.User, error)
    UpdatePassword(ctx context.Context, email, hashedPassword string) error
}

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
    Cfg    config.Config
    Users  UserStore
    Google identity.Verifier
    Mail   mail.Sender
}

func NewAuthHandler(cfg config.Config, u UserStore, g identity.Verifier, m mail.Sender) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Users: u, Google: g, Mail: m}
}

// ----- DTOs -----

type registerReq struct {
    FullName        string `json:"full_name" validate:"required"`
    Email           string `json:"email" validate:"required,email"`
    Password        string `json:"password" validate:"required,min=8"`
    ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
    TermsAccepted   bool   `json:"terms_accepted" validate:"required"` // required rejects false
}
type loginReq struct {
    Email    string `json:"email" validate:"required,email"`
    Password string `json:"password" validate:"required"`
}
type googleReq struct {
    IDToken string `json:"id_token" validate:"required"`
}
type forgotPasswordReq struct {
    Email string `json:"email" validate:"required,email"`
}
type resetPasswordReq struct {
    Token           string `json:"token" validate:"required"`
    NewPassword     string `json:"new_password" validate:"required,min=8"`
    ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// tokenResp is the shared success shape for register, login and google.
type tokenResp struct {
    AccessToken string `json:"access_token"`
    TokenType   string `json:"token_type"`
    FullName    string `json:"full_name"`
}

func (h *AuthHandler) accessToken(email string) (string, error) {
    ttl := time.Duration(h.Cfg.AccessTTLMin) * time.Minute
    return utils.IssueToken(h.Cfg.JWTSecret, jwt.MapClaims{"sub": email}, ttl)
}

// Register: validate, create the user, best-effort welcome mail, then issue
// an access token. Email uniqueness is enforced by the store's unique
// index; a duplicate insert maps to a client error, never a 500, and never
// returns a token.
func (h *AuthHandler) Register(c echo.Context) error {
    var req registerReq
    if !bindAndValidate(c, &req) {
        return nil
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    hash, err := utils.HashPassword(req.Password)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
    }
    if _, err := h.Users.Create(ctx, req.FullName, req.Email, hash, req.TermsAccepted); err != nil {
        if errors.Is(err, repository.ErrEmailExists) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email already registered"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
    }

    // The user row is committed; a mail failure must not fail registration.
    if err := h.Mail.SendWelcome(ctx, req.Email, req.FullName); err != nil {
        c.Logger().Errorf("welcome mail to %s failed: %v", req.Email, err)
    }

    token, err := h.accessToken(req.Email)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
    }
    return c.JSON(http.StatusOK, tokenResp{AccessToken: token, TokenType: "bearer", FullName: req.FullName})
}

// Login: look up by email and verify the password. An unknown email and a
// wrong password produce byte-identical responses so neither factor is
// revealed. Accounts holding the google_oauth sentinel can never pass
// verification here.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if !bindAndValidate(c, &req) {
        return nil
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Users.GetByEmail(ctx, req.Email)
    if err != nil {
        if errors.Is(err, repository.ErrUserNotFound) {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Incorrect email or password"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    if !utils.VerifyPassword(u.HashedPassword, req.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Incorrect email or password"})
    }

    token, err := h.accessToken(u.Email)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
    }
    return c.JSON(http.StatusOK, tokenResp{AccessToken: token, TokenType: "bearer", FullName: u.FullName})
}

// GoogleAuth: verify the Google ID token against the configured client id,
// then authenticate — transparently creating a local account on first
// sign-in. Created accounts store the google_oauth sentinel instead of a
// password hash and record terms_accepted=true.
func (h *AuthHandler) GoogleAuth(c echo.Context) error {
    var req googleReq
    if !bindAndValidate(c, &req) {
        return nil
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
    defer cancel()

    ident, err := h.Google.Verify(ctx, req.IDToken)
    if err != nil {
        // Single generic message for every verification failure.
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid Google token"})
    }

    u, err := h.Users.GetByEmail(ctx, ident.Email)
    if errors.Is(err, repository.ErrUserNotFound) {
        if _, cerr := h.Users.Create(ctx, ident.Name, ident.Email, model.GoogleOAuthSentinel, true); cerr != nil && !errors.Is(cerr, repository.ErrEmailExists) {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
        }
        // Re-read so a concurrent create still resolves to one record.
        u, err = h.Users.GetByEmail(ctx, ident.Email)
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    token, err := h.accessToken(u.Email)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
    }
    return c.JSON(http.StatusOK, tokenResp{AccessToken: token, TokenType: "bearer", FullName: u.FullName})
}

// ForgotPassword: issue a reset-purpose token and mail a reset link when
// the account exists. The response body is identical whether or not the
// email is registered.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
    var req forgotPasswordReq
    if !bindAndValidate(c, &req) {
        return nil
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Users.GetByEmail(ctx, req.Email)
    if err != nil {
        if errors.Is(err, repository.ErrUserNotFound) {
            return c.JSON(http.StatusOK, echo.Map{"message": forgotPasswordMessage})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    ttl := time.Duration(h.Cfg.ResetTTLMin) * time.Minute
    token, err := utils.IssueToken(h.Cfg.JWTSecret, jwt.MapClaims{"sub": u.Email, "purpose": resetPurpose}, ttl)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
    }
    resetLink := fmt.Sprintf("%s/reset-password?token=%s", h.Cfg.FrontendURL, token)
    if err := h.Mail.SendPasswordReset(ctx, u.Email, resetLink); err != nil {
        c.Logger().Errorf("password reset mail to %s failed: %v", u.Email, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"message": forgotPasswordMessage})
}

// ResetPassword: redeem a reset-purpose token and overwrite the stored
// hash. Signature, decoding and expiry failures all collapse to one
// generic message; only the purpose check and an unknown subject get their
// own messages, since the caller already holds a validly signed token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
    var req resetPasswordReq
    if !bindAndValidate(c, &req) {
        return nil
    }

    claims, err := utils.VerifyToken(h.Cfg.JWTSecret, req.Token)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid or expired token."})
    }
    if purpose, _ := claims["purpose"].(string); purpose != resetPurpose {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid token purpose."})
    }
    email, _ := claims["sub"].(string)
    if email == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid or expired token."})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    hash, err := utils.HashPassword(req.NewPassword)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reset failed"})
    }
    if err := h.Users.UpdatePassword(ctx, email, hash); err != nil {
        if errors.Is(err, repository.ErrUserNotFound) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "User not found."})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reset failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "Password changed successfully."})
}

// Me: simple protected endpoint returning the authenticated identity.
func (h *AuthHandler) Me(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{
        "email": c.Get("email"),
    })
}
