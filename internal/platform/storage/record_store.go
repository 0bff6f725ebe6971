// Package storage provides a generic GORM-backed record store used by the
// persistence adapters. Each store instance is bound to one model type and
// covers the four operations every collection in this system needs:
// uniqueness-enforcing insert, full-table scan, keyed update and keyed delete.
package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateKey is returned by Insert when the engine reports a unique
// constraint violation.
var ErrDuplicateKey = errors.New("duplicate key")

// pgUniqueViolation is the SQLSTATE PostgreSQL reports for a unique
// constraint violation.
const pgUniqueViolation = "23505"

// RecordStore はひとつのモデル型に対する永続化操作を提供します。
// すべてのクエリはGORMのビルダー経由でパラメータ化され、呼び出し側の値が
// SQL文字列に連結されることはありません。
type RecordStore[T any] struct {
	db *gorm.DB
}

// NewRecordStore は指定されたgorm.DB接続でRecordStoreの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewRecordStore[T any](db *gorm.DB) *RecordStore[T] {
	return &RecordStore[T]{db: db}
}

// Insert persists a new record. The engine assigns the identifier and GORM
// writes it back into the record. Unique constraint violations are reported
// as ErrDuplicateKey; every other engine failure passes through unchanged.
func (s *RecordStore[T]) Insert(ctx context.Context, record *T) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

// ListAll returns every record in the table. Each call issues a fresh scan;
// nothing is cached between calls.
func (s *RecordStore[T]) ListAll(ctx context.Context) ([]T, error) {
	var records []T
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Update applies the given column values to the record with the given id and
// reports how many rows changed (0 or 1). The caller decides what zero rows
// means.
func (s *RecordStore[T]) Update(ctx context.Context, id uint, fields map[string]any) (int64, error) {
	var model T
	result := s.db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes the record with the given id and reports how many rows
// were deleted (0 or 1).
func (s *RecordStore[T]) Delete(ctx context.Context, id uint) (int64, error) {
	var model T
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// isDuplicateKey はエンジンが報告したユニーク制約違反かどうかを判定します。
// 判定はエラーメッセージの文字列一致ではなく、条件コードで行います。
func isDuplicateKey(err error) bool {
	// GORMの方言トランスレータ（TranslateError有効時、sqlite含む）
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// PostgreSQL: SQLSTATE 23505 unique_violation
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	return false
}
