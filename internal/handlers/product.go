// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/elnet/electronics-network/internal/services"
	"github.com/elnet/electronics-network/internal/utils"
)

const resourceProduct = "product"

type ProductHandler struct {
	productService  *services.ProductService
	supplierService *services.SupplierService
	paginator       utils.Paginator
}

func NewProductHandler(productService *services.ProductService, supplierService *services.SupplierService, paginator utils.Paginator) *ProductHandler {
	return &ProductHandler{
		productService:  productService,
		supplierService: supplierService,
		paginator:       paginator,
	}
}

// GET /v1/products
func (h *ProductHandler) List(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	params := h.paginator.Params(c)
	products, total, err := h.productService.ListProducts(caller, params)
	if err != nil {
		respondError(c, err, resourceProduct)
		return
	}

	views := make([]services.ProductView, 0, len(products))
	for i := range products {
		views = append(views, services.NewProductView(&products[i]))
	}
	utils.PaginatedResponse(c, utils.CreatePaginationResult(views, total, params))
}

// POST /v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req services.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.CreateProduct(caller, &req)
	if err != nil {
		respondError(c, err, resourceProduct)
		return
	}

	utils.CreatedResponse(c, services.NewProductView(product))
}

// GET /v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(caller, id)
	if err != nil {
		respondError(c, err, resourceProduct)
		return
	}

	utils.SuccessResponse(c, services.NewProductView(product))
}

// PUT /v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(caller, id, &req)
	if err != nil {
		respondError(c, err, resourceProduct)
		return
	}

	utils.SuccessResponse(c, services.NewProductView(product))
}

// DELETE /v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(caller, id); err != nil {
		respondError(c, err, resourceProduct)
		return
	}

	utils.NoContentResponse(c)
}

// GET /v1/products/:id/supplier_levels
func (h *ProductHandler) SupplierLevels(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	levels, err := h.supplierService.SupplierLevelsOf(caller, id)
	if err != nil {
		respondError(c, err, resourceProduct)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product_id":      id,
		"supplier_levels": levels,
	})
}
