// Package usecase はclientsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"shop_backend/internal/feature/clients/domain/entity"
)

// ClientRepository は顧客エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ClientRepository interface {
	// Insert は新しい顧客を永続化し、採番されたIDをエンティティに書き戻します。
	Insert(ctx context.Context, client *entity.Client) error

	// ListAll はテーブル全体を読み直してすべての顧客を返します。
	ListAll(ctx context.Context) ([]entity.Client, error)

	// Update は指定IDの顧客を更新し、変更された行数を返します。
	Update(ctx context.Context, id uint, name, phone, email string) (int64, error)

	// Delete は指定IDの顧客を削除し、変更された行数を返します。
	Delete(ctx context.Context, id uint) (int64, error)
}

// ClientUsecase provides business logic for client operations.
type ClientUsecase struct {
	repo ClientRepository
}

// NewClientUsecase creates a new ClientUsecase with the given repository.
func NewClientUsecase(r ClientRepository) *ClientUsecase {
	return &ClientUsecase{repo: r}
}

// Create persists a new client and returns its store-assigned id.
func (u *ClientUsecase) Create(ctx context.Context, name, phone, email string) (uint, error) {
	client := &entity.Client{Name: name, Phone: phone, Email: email}
	if err := u.repo.Insert(ctx, client); err != nil {
		return 0, err
	}
	return client.ID, nil
}

// List returns all clients from the repository.
func (u *ClientUsecase) List(ctx context.Context) ([]entity.Client, error) {
	return u.repo.ListAll(ctx)
}

// Update rewrites the client with the given id. A zero affected-row count
// is reported as ErrClientNotFound, never silently ignored.
func (u *ClientUsecase) Update(ctx context.Context, id uint, name, phone, email string) error {
	affected, err := u.repo.Update(ctx, id, name, phone, email)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrClientNotFound
	}
	return nil
}

// Delete removes the client with the given id, reporting ErrClientNotFound
// when no row matched.
func (u *ClientUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrClientNotFound
	}
	return nil
}
