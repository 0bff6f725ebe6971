// Package adapters はproductsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"shop_backend/internal/feature/products/domain/entity"
	"shop_backend/internal/feature/products/usecase"
	"shop_backend/internal/platform/storage"
)

// productGorm はProductRepositoryインターフェースのGORM実装です。
// 共通のRecordStoreをProductスキーマに束縛した薄いアダプタです。
type productGorm struct {
	store *storage.RecordStore[entity.Product]
}

var _ usecase.ProductRepository = (*productGorm)(nil)

// NewProductGorm は指定されたDB接続でproductGormリポジトリの新しいインスタンスを生成します。
func NewProductGorm(db *gorm.DB) *productGorm {
	return &productGorm{store: storage.NewRecordStore[entity.Product](db)}
}

// Insert は商品を追加し、採番されたIDをエンティティに書き戻します。
func (r *productGorm) Insert(ctx context.Context, p *entity.Product) error {
	return r.store.Insert(ctx, p)
}

// ListAll はすべての商品を返します。
func (r *productGorm) ListAll(ctx context.Context) ([]entity.Product, error) {
	return r.store.ListAll(ctx)
}

// Update は指定IDの商品の全カラムを更新し、変更行数を返します。
func (r *productGorm) Update(ctx context.Context, id uint, name, description string, price float64) (int64, error) {
	return r.store.Update(ctx, id, map[string]any{
		"name":        name,
		"description": description,
		"price":       price,
	})
}

// Delete は指定IDの商品を削除し、変更行数を返します。
func (r *productGorm) Delete(ctx context.Context, id uint) (int64, error) {
	return r.store.Delete(ctx, id)
}
