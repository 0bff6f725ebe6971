package router

import (
	authhandler "shop_backend/internal/feature/auth/transport/handler"
	clienthandler "shop_backend/internal/feature/clients/transport/handler"
	producthandler "shop_backend/internal/feature/products/transport/handler"
	"shop_backend/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, products *producthandler.ProductHandler,
	clients *clienthandler.ClientHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")

	// 認証（登録・ログイン）
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// CRUDルートは元の契約どおり認証なしで公開する
	// （クライアントがログイン結果を保持するだけで、再認証は行わない）
	api.POST("/products", products.Create)
	api.GET("/products", products.List)
	api.PUT("/products/:id", products.Update)
	api.DELETE("/products/:id", products.Delete)

	api.POST("/clients", clients.Create)
	api.GET("/clients", clients.List)
	api.PUT("/clients/:id", clients.Update)
	api.DELETE("/clients/:id", clients.Delete)

	return r
}
