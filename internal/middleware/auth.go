package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"restaurant-finder-api/internal/models"
)

// SubjectKey is the context key holding the authenticated token subject
const SubjectKey = "subject"

var (
	// ErrMissingToken is returned when no Authorization header is present
	ErrMissingToken = errors.New("authorization header is required")
	// ErrMalformedHeader is returned when the header is not "Bearer <token>"
	ErrMalformedHeader = errors.New("invalid authorization header format, expected: Bearer <token>")
)

// Claims represents JWT claims
type Claims struct {
	Scopes []string `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret     string
	TokenDuration time.Duration
	Issuer        string
}

// AuthService validates bearer tokens for the API. A service without a secret
// is disabled and accepts every request.
type AuthService struct {
	config *AuthConfig
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) *AuthService {
	if config.TokenDuration == 0 {
		config.TokenDuration = 24 * time.Hour
	}
	if config.Issuer == "" {
		config.Issuer = "restaurant-finder-api"
	}
	return &AuthService{config: config}
}

// Enabled reports whether requests must carry a bearer token
func (a *AuthService) Enabled() bool {
	return a != nil && a.config.JWTSecret != ""
}

// GenerateToken issues an HS256 token for subject
func (a *AuthService) GenerateToken(subject string, scopes []string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.config.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    a.config.Issuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(a.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns the claims
func (a *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(a.config.JWTSecret), nil
	}, jwt.WithIssuer(a.config.Issuer))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Authorize checks an Authorization header value. It returns nil claims and
// no error when auth is disabled.
func (a *AuthService) Authorize(header string) (*Claims, error) {
	if !a.Enabled() {
		return nil, nil
	}
	if header == "" {
		return nil, ErrMissingToken
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return nil, ErrMalformedHeader
	}

	return a.ValidateToken(token)
}

// Authentication middleware that validates bearer tokens when auth is enabled
func Authentication(authService *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authService.Authorize(c.GetHeader("Authorization"))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"request_id": c.GetString(RequestIDKey),
				"error":      err.Error(),
				"path":       c.Request.URL.Path,
			}).Warn("Token validation failed")

			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewErrorResponse(LabelUnauthorized, err.Error(), time.Now()))
			return
		}

		if claims != nil {
			c.Set(SubjectKey, claims.Subject)
		}
		c.Next()
	}
}
