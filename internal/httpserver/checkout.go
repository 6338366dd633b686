package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type checkoutRequest struct {
	AmountPaid string `json:"amountPaid" binding:"required"`
	Discount   string `json:"discount"`
}

// checkout parses the tendered amount and discount, then asks the engine to
// finalize. Parse failures and engine rejections both end the attempt, but
// they answer with distinct reasons so the register UI can tell them apart.
func (h *handlers) checkout(c *gin.Context) {
	operator := currentOperator(c)

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amountPaid required"})
		return
	}

	amountPaid, err := decimal.NewFromString(strings.TrimSpace(req.AmountPaid))
	if err != nil || amountPaid.IsNegative() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid payment amount"})
		return
	}
	discount := decimal.Zero
	if raw := strings.TrimSpace(req.Discount); raw != "" {
		discount, err = decimal.NewFromString(raw)
		if err != nil || discount.IsNegative() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid discount"})
			return
		}
	}

	sale := h.engine.Checkout(operator, amountPaid, discount)
	if sale == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "checkout rejected"})
		return
	}

	if h.archive != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := h.archive.Insert(ctx, *sale); err != nil {
			// The sale is already final; archiving is best effort.
			h.logger.Printf("checkout: archive sale id=%s failed: %v", sale.ID, err)
		}
	}

	c.JSON(http.StatusCreated, sale)
}
