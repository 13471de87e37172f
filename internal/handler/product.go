package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"shopchat/internal/model"
	"shopchat/internal/repository"
	"shopchat/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	products *service.ProductService
	log      zerolog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(products *service.ProductService, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{products: products, log: log}
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	var filter model.ProductFilter
	filter.Search = strings.TrimSpace(c.Query("search"))

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		filter.Category = &category
	}

	var ok bool
	if filter.MinPrice, ok = priceParam(c, "min_price"); !ok {
		c.JSON(http.StatusBadRequest, model.Error("Invalid min_price format."))
		return
	}
	if filter.MaxPrice, ok = priceParam(c, "max_price"); !ok {
		c.JSON(http.StatusBadRequest, model.Error("Invalid max_price format."))
		return
	}

	products, err := h.products.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("product listing failed")
		c.JSON(http.StatusInternalServerError, model.Error(msgInternalError))
		return
	}

	if len(products) == 0 {
		c.JSON(http.StatusOK, model.Success("No products found matching your criteria.", []model.Product{}))
		return
	}
	c.JSON(http.StatusOK, model.Success("Products retrieved successfully.", products))
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.Error("Invalid product id."))
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, model.Error("Product not found."))
		return
	}
	if err != nil {
		h.log.Error().Err(err).Int64("product_id", id).Msg("product lookup failed")
		c.JSON(http.StatusInternalServerError, model.Error(msgInternalError))
		return
	}

	c.JSON(http.StatusOK, model.Success("Product retrieved successfully.", product))
}

// priceParam reads an optional price query parameter. ok is false when the
// parameter is present but not a number.
func priceParam(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}
