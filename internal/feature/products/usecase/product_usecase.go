// Package usecase はproductsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"shop_backend/internal/feature/products/domain/entity"
)

// ProductRepository は商品エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ProductRepository interface {
	// Insert は新しい商品を永続化し、採番されたIDをエンティティに書き戻します。
	Insert(ctx context.Context, product *entity.Product) error

	// ListAll はテーブル全体を読み直してすべての商品を返します。
	ListAll(ctx context.Context) ([]entity.Product, error)

	// Update は指定IDの商品を更新し、変更された行数を返します。
	Update(ctx context.Context, id uint, name, description string, price float64) (int64, error)

	// Delete は指定IDの商品を削除し、変更された行数を返します。
	Delete(ctx context.Context, id uint) (int64, error)
}

// ProductUsecase provides business logic for product operations.
type ProductUsecase struct {
	repo ProductRepository
}

// NewProductUsecase creates a new ProductUsecase with the given repository.
func NewProductUsecase(r ProductRepository) *ProductUsecase {
	return &ProductUsecase{repo: r}
}

// Create persists a new product and returns its store-assigned id.
func (u *ProductUsecase) Create(ctx context.Context, name, description string, price float64) (uint, error) {
	product := &entity.Product{Name: name, Description: description, Price: price}
	if err := u.repo.Insert(ctx, product); err != nil {
		return 0, err
	}
	return product.ID, nil
}

// List returns all products from the repository.
func (u *ProductUsecase) List(ctx context.Context) ([]entity.Product, error) {
	return u.repo.ListAll(ctx)
}

// Update rewrites the product with the given id. A zero affected-row count
// is reported as ErrProductNotFound, never silently ignored.
func (u *ProductUsecase) Update(ctx context.Context, id uint, name, description string, price float64) error {
	affected, err := u.repo.Update(ctx, id, name, description, price)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete removes the product with the given id, reporting ErrProductNotFound
// when no row matched.
func (u *ProductUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}
