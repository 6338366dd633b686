package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pos-terminal/internal/auth"
	"pos-terminal/internal/domain"
)

const operatorKey = "operator"
const tokenKey = "token"

// authMiddleware resolves the bearer token into an operator and aborts with
// 401 when it cannot.
func authMiddleware(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token = strings.TrimSpace(token)

		operator, err := svc.Resolve(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(operatorKey, operator)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// requireRole guards administrative routes.
func requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		operator := currentOperator(c)
		if operator == nil || operator.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

func currentOperator(c *gin.Context) *domain.Operator {
	v, ok := c.Get(operatorKey)
	if !ok {
		return nil
	}
	operator, ok := v.(*domain.Operator)
	if !ok {
		return nil
	}
	return operator
}

func currentToken(c *gin.Context) string {
	v, ok := c.Get(tokenKey)
	if !ok {
		return ""
	}
	token, _ := v.(string)
	return token
}
