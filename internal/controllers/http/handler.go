package http

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-service/internal/domain"
	"storefront-service/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	products  *services.ProductService
	orders    *services.OrderService
	inventory *services.InventoryService
	logger    *zap.Logger
}

func NewHandler(p *services.ProductService, o *services.OrderService, i *services.InventoryService, logger *zap.Logger) *Handler {
	return &Handler{products: p, orders: o, inventory: i, logger: logger}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, basePath string) {
	api := r.Group(basePath)

	api.GET("/healthz", h.Health)

	products := api.Group("/products")
	products.GET("", h.ListProducts)
	products.GET("/search", h.SearchProducts)
	products.GET("/category/:category", h.ListProductsByCategory)
	products.GET("/brand/:brand", h.ListProductsByBrand)
	products.GET("/:id", h.GetProduct)
	products.POST("", h.CreateProduct)
	products.PUT("/:id", h.UpdateProduct)
	products.DELETE("/:id", h.DeleteProduct)
	products.DELETE("", h.DeleteAllProducts)

	orders := api.Group("/orders")
	orders.GET("", h.ListOrders)
	orders.GET("/status/:status", h.ListOrdersByStatus)
	orders.GET("/:id", h.GetOrder)
	orders.POST("", h.CreateOrder)
	orders.PUT("/:id/status", h.UpdateOrderStatus)
	orders.PUT("/:id/replace", h.ReplaceOrder)
	orders.PUT("/:id", h.UpdateOrder)
	orders.DELETE("/:id", h.DeleteOrder)

	inventory := api.Group("/inventory")
	inventory.GET("", h.ListInventory)
	inventory.GET("/low-stock", h.ListLowStock)
	inventory.GET("/product/:productId", h.GetInventoryByProduct)
	inventory.GET("/:id", h.GetInventory)
	inventory.POST("", h.CreateInventory)
	inventory.PUT("/:id", h.UpdateInventory)
	inventory.POST("/:id/adjust", h.AdjustStock)
	inventory.DELETE("/:id", h.DeleteInventory)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps service errors onto status codes.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("correlation_id", c.GetString(CorrelationIDKey)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return id, true
}
