// Package handler はproductsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/products/domain/entity"
	"shop_backend/internal/feature/products/transport/http/dto"
	"shop_backend/internal/feature/products/usecase"
)

// ProductUsecase は商品操作のユースケースを定義します。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ProductUsecase interface {
	Create(ctx context.Context, name, description string, price float64) (uint, error)
	List(ctx context.Context) ([]entity.Product, error)
	Update(ctx context.Context, id uint, name, description string, price float64) error
	Delete(ctx context.Context, id uint) error
}

// ProductHandler は商品に関するHTTPリクエストを処理します。
type ProductHandler struct {
	uc ProductUsecase
}

// NewProductHandler は新しい ProductHandler を作成します。
func NewProductHandler(uc ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create は商品を作成するAPIです。
// priceが数値でない、または負数のリクエストは400で拒否します。
// 成功時は採番されたidとともに201を返します。
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a non-negative number"})
		return
	}
	id, err := h.uc.Create(c.Request.Context(), req.Name, req.Description, req.Price)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResp{Message: "product created", ID: id})
}

// List は商品の一覧を取得するAPIです。
// Usecaseを呼び出して一覧を取得し、DTOに変換してJSONレスポンスとして返します。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.ProductItem, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductItem{ID: p.ID, Name: p.Name, Description: p.Description, Price: p.Price})
	}
	c.JSON(http.StatusOK, out)
}

// Update は指定IDの商品を更新するAPIです。
// 対象の行が存在しない場合は404を返します。
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	var req dto.ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a non-negative number"})
		return
	}
	if err := h.uc.Update(c.Request.Context(), id, req.Name, req.Description, req.Price); err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

// Delete は指定IDの商品を削除するAPIです。
// 対象の行が存在しない場合は404を返します。
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// parseID はパスパラメータのIDを解釈します。数値でないIDはどの行にも
// 一致しないため、呼び出し側はnot foundとして扱います。
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
