package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/cartdao-demo/internal/domain"
)

type CartService interface {
	GetCart(ctx context.Context, username string) ([]domain.Product, error)
	Cart(ctx context.Context, username string) (domain.Cart, error)
	AddToCart(ctx context.Context, username string, productID int64) error
	RemoveFromCart(ctx context.Context, username string, productID int64) error
	DeleteCart(ctx context.Context, username string) error
}

type CartHandler struct {
	svc    CartService
	logger *slog.Logger
}

type addItemRequest struct {
	ProductID *int64 `json:"product_id" binding:"required"`
}

func NewCartHandler(svc CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		svc:    svc,
		logger: logger,
	}
}

func (h *CartHandler) Register(r gin.IRouter) {
	carts := r.Group("/v1/carts/:username")
	carts.GET("", h.GetCart)
	carts.GET("/products", h.GetProducts)
	carts.POST("/items", h.AddItem)
	carts.DELETE("/items/:productID", h.RemoveItem)
	carts.DELETE("", h.DeleteCart)
}

// GET /v1/carts/:username
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.svc.Cart(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// GET /v1/carts/:username/products
func (h *CartHandler) GetProducts(c *gin.Context) {
	products, err := h.svc.GetCart(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// POST /v1/carts/:username/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	if err := h.svc.AddToCart(c.Request.Context(), c.Param("username"), *req.ProductID); err != nil {
		h.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DELETE /v1/carts/:username/items/:productID
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.svc.RemoveFromCart(c.Request.Context(), c.Param("username"), productID); err != nil {
		h.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DELETE /v1/carts/:username
func (h *CartHandler) DeleteCart(c *gin.Context) {
	if err := h.svc.DeleteCart(c.Request.Context(), c.Param("username")); err != nil {
		h.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CartHandler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrMalformedContents):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(c.Request.Context(), "cart request failed",
			slog.String("request_id", c.GetString(requestIDKey)),
			slog.String("path", c.FullPath()),
			slog.Any("err", err))
		c.JSON(status, gin.H{"error": http.StatusText(status)})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
