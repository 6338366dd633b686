package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pos-terminal/internal/domain"
)

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *handlers) getCart(c *gin.Context) {
	operator := currentOperator(c)
	discount, ok := discountParam(c)
	if !ok {
		return
	}
	h.respondCart(c, operator.ID, discount)
}

func (h *handlers) addCartItem(c *gin.Context) {
	operator := currentOperator(c)
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
		return
	}
	if err := h.engine.AddToCart(operator.ID, req.ProductID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "add failed"})
		return
	}
	h.respondCart(c, operator.ID, decimal.Zero)
}

func (h *handlers) setCartItemQuantity(c *gin.Context) {
	operator := currentOperator(c)
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
		return
	}
	h.engine.SetQuantity(operator.ID, c.Param("productId"), req.Quantity)
	h.respondCart(c, operator.ID, decimal.Zero)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	operator := currentOperator(c)
	h.engine.RemoveFromCart(operator.ID, c.Param("productId"))
	h.respondCart(c, operator.ID, decimal.Zero)
}

func (h *handlers) clearCart(c *gin.Context) {
	operator := currentOperator(c)
	h.engine.ClearCart(operator.ID)
	c.Status(http.StatusNoContent)
}

func (h *handlers) respondCart(c *gin.Context, operatorID string, discount decimal.Decimal) {
	c.JSON(http.StatusOK, cartResponse{
		Lines:   h.engine.Cart(operatorID),
		Pricing: toPricingResponse(h.engine.Pricing(operatorID, discount)),
	})
}

// discountParam parses the optional discount query parameter. A malformed or
// negative value answers 400 and reports false.
func discountParam(c *gin.Context) (decimal.Decimal, bool) {
	raw := strings.TrimSpace(c.Query("discount"))
	if raw == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discount"})
		return decimal.Decimal{}, false
	}
	return d, true
}
