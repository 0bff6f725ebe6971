// Package db はGORMによるリレーショナルデータベース接続を提供します。
package db

import (
	"fmt"
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "shop_backend/internal/feature/auth/domain/entity"
	cliententity "shop_backend/internal/feature/clients/domain/entity"
	productentity "shop_backend/internal/feature/products/domain/entity"
	"shop_backend/internal/platform/config"
)

// Dialector は設定で選択されたドライバのgorm Dialectorを返します。
// 未知のドライバ名はエラーになります。
func Dialector(cfg config.DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite", "":
		return gsqlite.Open(cfg.DSN), nil
	case "postgres":
		return gpostgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

// OpenDB はデータベースへ接続し、スキーマを移行して接続を返します。
// エンジン起動待ちのため、接続は期限付きでリトライします。
// テーブル（User, Product, Client）は存在しなければ作成されます。
func OpenDB(cfg config.DBConfig) *gorm.DB {
	dialector, err := Dialector(cfg)
	if err != nil {
		log.Fatalf("invalid DB config: %v", err)
	}

	var db *gorm.DB

	deadline := time.Now().Add(60 * time.Second)
	for {
		// TranslateError: ユニーク制約違反をgorm.ErrDuplicatedKeyへ変換する
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	// マイグレーション（User, Product, Client）
	if err := db.AutoMigrate(
		&authentity.User{},
		&productentity.Product{},
		&cliententity.Client{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
