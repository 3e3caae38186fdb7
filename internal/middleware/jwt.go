package middleware

import (
	"errors"
	"time"

	"github.com/gigsters-app/gigsters/internal/common"
	"github.com/gigsters-app/gigsters/internal/logger"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// tokenContextKey is where echo-jwt leaves the parsed token
const tokenContextKey = "user"

// Claims is the access token payload. The subject is the user id.
type Claims struct {
	Roles       []string `json:"roles,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// JWTConfig builds the echo-jwt configuration. A JWKS url takes precedence over the shared
// secret; the returned stop func ends the background key refresh.
func JWTConfig(secret, jwksURL string, log *logger.Logger) (echojwt.Config, func(), error) {
	config := echojwt.Config{
		ContextKey: tokenContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			log.Debugw("rejected access token", "path", c.Path(), "error", err)
			return common.SendUnauthorizedError(c)
		},
	}

	if jwksURL == "" {
		config.SigningKey = []byte(secret)
		config.SigningMethod = jwt.SigningMethodHS256.Alg()
		return config, func() {}, nil
	}

	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshTimeout:    10 * time.Second,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			log.Warnw("jwks refresh failed", "url", jwksURL, "error", err)
		},
	})
	if err != nil {
		return echojwt.Config{}, nil, err
	}
	config.KeyFunc = jwks.Keyfunc
	return config, jwks.EndBackground, nil
}

// Principal turns the verified token into a common.Principal on the request context.
// It must run after the echo-jwt middleware.
func Principal() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := principalFromToken(c.Get(tokenContextKey))
			if err != nil {
				return common.SendUnauthorizedError(c)
			}
			c.SetRequest(c.Request().WithContext(common.WithPrincipal(c.Request().Context(), principal)))
			return next(c)
		}
	}
}

func principalFromToken(value any) (*common.Principal, error) {
	token, ok := value.(*jwt.Token)
	if !ok || !token.Valid {
		return nil, errors.New("missing token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, err
	}
	return &common.Principal{
		UserID:      userID,
		Roles:       claims.Roles,
		Permissions: claims.Permissions,
	}, nil
}
