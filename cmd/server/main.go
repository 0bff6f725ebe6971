package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"shop_backend/internal/app/router"
	authadapters "shop_backend/internal/feature/auth/adapters"
	authhandler "shop_backend/internal/feature/auth/transport/handler"
	authusecase "shop_backend/internal/feature/auth/usecase"
	clientadapters "shop_backend/internal/feature/clients/adapters"
	clienthandler "shop_backend/internal/feature/clients/transport/handler"
	clientusecase "shop_backend/internal/feature/clients/usecase"
	productadapters "shop_backend/internal/feature/products/adapters"
	producthandler "shop_backend/internal/feature/products/transport/handler"
	productusecase "shop_backend/internal/feature/products/usecase"
	"shop_backend/internal/platform/config"
	infradb "shop_backend/internal/platform/db"
	"shop_backend/internal/platform/password"
)

func main() {
	// 設定
	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	// ロガー（構造化JSON、レベルは設定から）
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	// db（接続＋マイグレーション）
	db := infradb.OpenDB(cfg.DB)

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	productRepo := productadapters.NewProductGorm(db)
	clientRepo := clientadapters.NewClientGorm(db)

	// Usecase
	hasher := password.NewBcryptHasher(cfg.BcryptCost)
	authUC := authusecase.NewAuthUsecase(userRepo, hasher)
	productUC := productusecase.NewProductUsecase(productRepo)
	clientUC := clientusecase.NewClientUsecase(clientRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	productH := producthandler.NewProductHandler(productUC)
	clientH := clienthandler.NewClientHandler(clientUC)

	// ルータ生成
	r := router.NewRouter(authH, productH, clientH)

	slog.Info("server starting", "port", cfg.Port, "db_driver", cfg.DB.Driver)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// logLevel は設定文字列をslogのレベルへ変換します。不明な値はinfoになります。
func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
