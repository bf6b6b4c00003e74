package storefront

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const accountIDContextKey = "account_id"

var (
	// ErrMissingToken indicates the request carried no bearer token.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken indicates the bearer token failed validation.
	ErrInvalidToken = errors.New("invalid bearer token")
)

// TokenValidator verifies HS256 bearer tokens whose subject is the ledger account id.
type TokenValidator struct {
	signingKey []byte
	issuer     string
	parser     *jwt.Parser
}

// NewTokenValidator constructs a validator for the given key and issuer.
func NewTokenValidator(signingKey []byte, issuer string) (*TokenValidator, error) {
	if len(signingKey) == 0 {
		return nil, fmt.Errorf("jwt signing key is required")
	}
	if strings.TrimSpace(issuer) == "" {
		return nil, fmt.Errorf("jwt issuer is required")
	}
	return &TokenValidator{
		signingKey: signingKey,
		issuer:     issuer,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Issue signs a token for accountID valid for ttl.
func (validator *TokenValidator) Issue(accountID string, ttl time.Duration, now time.Time) (string, error) {
	if strings.TrimSpace(accountID) == "" {
		return "", fmt.Errorf("account id is required")
	}
	claims := jwt.RegisteredClaims{
		Issuer:    validator.issuer,
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now.UTC()),
		ExpiresAt: jwt.NewNumericDate(now.UTC().Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(validator.signingKey)
}

// AccountID validates raw and returns its subject.
func (validator *TokenValidator) AccountID(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrMissingToken
	}
	claims := &jwt.RegisteredClaims{}
	_, err := validator.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return validator.signingKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}
	return subject, nil
}

// GinMiddleware rejects requests without a valid bearer token and stores the account id.
func (validator *TokenValidator) GinMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		accountID, err := validator.AccountID(bearerToken(ctx.GetHeader("Authorization")))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse("unauthorized", err.Error()))
			return
		}
		ctx.Set(accountIDContextKey, accountID)
		ctx.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func accountIDFrom(ctx *gin.Context) string {
	return ctx.GetString(accountIDContextKey)
}
