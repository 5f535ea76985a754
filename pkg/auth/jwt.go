package auth

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"todoapi/internal/core/port"
)

const tokenValidity = 24 * time.Hour

// JWT signs and verifies HS256 access tokens carrying {sub, email}.
type JWT struct {
	Secret string
}

func NewFromEnv() *JWT {
	return &JWT{Secret: os.Getenv("JWT_SECRET")}
}

func (j *JWT) Issue(userID int, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   time.Now().Add(tokenValidity).Unix(),
	})

	return token.SignedString([]byte(j.Secret))
}

func (j *JWT) Verify(tokenString string) (port.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(j.Secret), nil
	})

	if err != nil {
		return port.TokenClaims{}, err
	}

	if !token.Valid {
		return port.TokenClaims{}, fmt.Errorf("invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return port.TokenClaims{}, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(float64)

	if !ok {
		return port.TokenClaims{}, fmt.Errorf("missing subject claim")
	}

	email, _ := claims["email"].(string)

	return port.TokenClaims{UserID: int(sub), Email: email}, nil
}

// GinMiddleware resolves the Bearer token and stores the caller's user id in
// the gin context under "x-user-id". Every route behind it can trust that the
// id belongs to an authenticated caller.
func (j *JWT) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")

		if bearer == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request"},
			})

			c.Abort()
			return
		}

		if !strings.HasPrefix(bearer, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Invalid authorization format"},
			})

			c.Abort()
			return
		}

		claims, err := j.Verify(bearer[len("Bearer "):])

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request", err.Error()},
			})
			c.Abort()
			return
		}

		c.Set("x-user-id", claims.UserID)
		c.Set("x-user-email", claims.Email)
		c.Next()
	}
}
