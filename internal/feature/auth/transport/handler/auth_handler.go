// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/transport/http/dto"
	"shop_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、採番されたIDを返します。
	Register(ctx context.Context, username, email, password string) (uint, error)
	// Login はユーザーを認証し、成功時に公開アイデンティティを返します。
	Login(ctx context.Context, email, password string) (*entity.Identity, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - 必須フィールド欠落時は400を返却
// - username/email重複時は400を返却（どの列が衝突したかは公開しない）
// - 成功時は採番されたuserIdとともに201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	userID, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		case errors.Is(err, usecase.ErrUserAlreadyExists):
			slog.Warn("register conflict", "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not register user, try another username/email"})
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error while processing the password"})
		}
		return
	}

	slog.Info("user registered", "user_id", userID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.RegisterResp{Message: "user registered successfully", UserID: userID})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - 必須フィールド欠落時は400を返却
// - 認証失敗時は401を返却（未登録メールとパスワード不一致で同一レスポンス）
// - 認証成功時は公開アイデンティティ付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	identity, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			// ユーザー列挙攻撃を防止するため、実際の失敗理由を公開しない
			slog.Warn("login failed", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		default:
			slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		}
		return
	}

	slog.Info("user login successful", "user_id", identity.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginResp{
		Message: "login successful",
		User:    dto.IdentityItem{ID: identity.ID, Email: identity.Email},
	})
}
