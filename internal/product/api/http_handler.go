package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/product-console/internal/platform/logger"
	"github.com/ridloal/product-console/internal/product/domain"
	"github.com/ridloal/product-console/internal/product/service"
)

const msgNotFound = "Product not found"

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(ps service.ProductService) *ProductHandler {
	return &ProductHandler{productService: ps}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", h.ListProducts)
		productRoutes.POST("", h.CreateProduct)
		productRoutes.GET("/:id", h.GetProduct)
		productRoutes.PUT("/:id", h.UpdateProduct)
		productRoutes.DELETE("/:id", h.DeleteProduct)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		logger.Error("ListProducts: service error", err)
		c.JSON(http.StatusInternalServerError, domain.MessageResponse{Message: "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, "GetProduct", "Failed to retrieve product", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct answers 201 with the new id as plain text.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req domain.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.MessageResponse{Message: "Invalid request payload: " + err.Error()})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, "CreateProduct", "Failed to create product", err)
		return
	}

	c.Header("Location", c.FullPath()+"/"+product.ID)
	c.String(http.StatusCreated, product.ID)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req domain.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.MessageResponse{Message: "Invalid request payload: " + err.Error()})
		return
	}

	if _, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), req); err != nil {
		h.writeError(c, "UpdateProduct", "Failed to update product", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, "DeleteProduct", "Failed to delete product", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) writeError(c *gin.Context, op, fallback string, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, domain.ValidationErrorResponse{Errors: vErr.Fields})
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, domain.MessageResponse{Message: msgNotFound})
	default:
		logger.Error(op+": service error", err)
		c.JSON(http.StatusInternalServerError, domain.MessageResponse{Message: fallback})
	}
}
