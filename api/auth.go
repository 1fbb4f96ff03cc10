package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

type apiClaims struct {
	Subject   string `json:"sub"`
	ExpiresAt int64  `json:"exp"`
}

func (m ApiHandler) parseToken(jwtStr string) (*apiClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.JwtSigningSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	out := apiClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = int64(exp)
	}

	return &out, nil
}

// requireAuth guards mutating routes. Expects "Authorization: Bearer <jwt>"
// signed with the shared secret from secrets.json.
func (m ApiHandler) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		returnErrorJsonCode(fmt.Errorf("missing authorization header"), c, 401)
		return
	}

	jwtStr := strings.TrimPrefix(header, "Bearer ")
	claims, err := m.parseToken(jwtStr)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	c.Set("subject", claims.Subject)
	c.Next()
}
