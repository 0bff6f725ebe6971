// Package adapters はclientsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"shop_backend/internal/feature/clients/domain/entity"
	"shop_backend/internal/feature/clients/usecase"
	"shop_backend/internal/platform/storage"
)

// clientGorm はClientRepositoryインターフェースのGORM実装です。
// 共通のRecordStoreをClientスキーマに束縛した薄いアダプタです。
type clientGorm struct {
	store *storage.RecordStore[entity.Client]
}

var _ usecase.ClientRepository = (*clientGorm)(nil)

// NewClientGorm は指定されたDB接続でclientGormリポジトリの新しいインスタンスを生成します。
func NewClientGorm(db *gorm.DB) *clientGorm {
	return &clientGorm{store: storage.NewRecordStore[entity.Client](db)}
}

// Insert は顧客を追加し、採番されたIDをエンティティに書き戻します。
func (r *clientGorm) Insert(ctx context.Context, cl *entity.Client) error {
	return r.store.Insert(ctx, cl)
}

// ListAll はすべての顧客を返します。
func (r *clientGorm) ListAll(ctx context.Context) ([]entity.Client, error) {
	return r.store.ListAll(ctx)
}

// Update は指定IDの顧客の全カラムを更新し、変更行数を返します。
func (r *clientGorm) Update(ctx context.Context, id uint, name, phone, email string) (int64, error) {
	return r.store.Update(ctx, id, map[string]any{
		"name":  name,
		"phone": phone,
		"email": email,
	})
}

// Delete は指定IDの顧客を削除し、変更行数を返します。
func (r *clientGorm) Delete(ctx context.Context, id uint) (int64, error) {
	return r.store.Delete(ctx, id)
}
