// Package handler はclientsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/clients/domain/entity"
	"shop_backend/internal/feature/clients/transport/http/dto"
	"shop_backend/internal/feature/clients/usecase"
)

// ClientUsecase は顧客操作のユースケースを定義します。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ClientUsecase interface {
	Create(ctx context.Context, name, phone, email string) (uint, error)
	List(ctx context.Context) ([]entity.Client, error)
	Update(ctx context.Context, id uint, name, phone, email string) error
	Delete(ctx context.Context, id uint) error
}

// ClientHandler は顧客に関するHTTPリクエストを処理します。
type ClientHandler struct {
	uc ClientUsecase
}

// NewClientHandler は新しい ClientHandler を作成します。
func NewClientHandler(uc ClientUsecase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create は顧客を作成するAPIです。
// 成功時は採番されたidとともに201を返します。
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	id, err := h.uc.Create(c.Request.Context(), req.Name, req.Phone, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResp{Message: "client created", ID: id})
}

// List は顧客の一覧を取得するAPIです。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.ClientItem, 0, len(clients))
	for _, cl := range clients {
		out = append(out, dto.ClientItem{ID: cl.ID, Name: cl.Name, Phone: cl.Phone, Email: cl.Email})
	}
	c.JSON(http.StatusOK, out)
}

// Update は指定IDの顧客を更新するAPIです。
// 対象の行が存在しない場合は404を返します。
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	var req dto.ClientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.uc.Update(c.Request.Context(), id, req.Name, req.Phone, req.Email); err != nil {
		if errors.Is(err, usecase.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client updated"})
}

// Delete は指定IDの顧客を削除するAPIです。
// 対象の行が存在しない場合は404を返します。
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
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
