package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pos-terminal/internal/auth"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	operator, token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"operator": operator,
	})
}

// logout revokes the session token and clears the operator's cart, matching
// the terminal behavior of abandoning the pending order on sign-out.
func (h *handlers) logout(c *gin.Context) {
	operator := currentOperator(c)
	h.auth.Logout(currentToken(c))
	if operator != nil {
		h.engine.ClearCart(operator.ID)
	}
	c.Status(http.StatusNoContent)
}
