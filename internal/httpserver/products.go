package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pos-terminal/internal/domain"
)

type productRequest struct {
	Name       string `json:"name" binding:"required"`
	CategoryID string `json:"categoryId"`
	Price      string `json:"price" binding:"required"`
	Stock      int    `json:"stock"`
	SKU        string `json:"sku" binding:"required"`
	Image      string `json:"image"`
}

func (r productRequest) toProduct() (domain.Product, string) {
	price, err := decimal.NewFromString(strings.TrimSpace(r.Price))
	if err != nil {
		return domain.Product{}, "invalid price"
	}
	if price.IsNegative() {
		return domain.Product{}, "price must not be negative"
	}
	if r.Stock < 0 {
		return domain.Product{}, "stock must not be negative"
	}
	return domain.Product{
		Name:       r.Name,
		CategoryID: r.CategoryID,
		Price:      price,
		Stock:      r.Stock,
		SKU:        r.SKU,
		Image:      r.Image,
	}, ""
}

func (h *handlers) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.engine.Products()})
}

func (h *handlers) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.engine.Categories()})
}

func (h *handlers) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, price and sku required"})
		return
	}
	product, problem := req.toProduct()
	if problem != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": problem})
		return
	}
	created := h.engine.CreateProduct(product)
	c.JSON(http.StatusCreated, created)
}

// updateProduct replaces the full product record. Unknown ids are a silent
// no-op in the engine; the handler still answers 200 with the submitted
// payload, mirroring the forgiving administrative surface.
func (h *handlers) updateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, price and sku required"})
		return
	}
	product, problem := req.toProduct()
	if problem != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": problem})
		return
	}
	product.ID = c.Param("id")
	h.engine.UpdateProduct(product)
	c.JSON(http.StatusOK, product)
}

func (h *handlers) deleteProduct(c *gin.Context) {
	h.engine.DeleteProduct(c.Param("id"))
	c.Status(http.StatusNoContent)
}
