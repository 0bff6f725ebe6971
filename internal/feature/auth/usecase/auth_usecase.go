// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shop_backend/internal/feature/auth/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じusernameまたはemailのユーザーが既に存在する場合、ErrUserAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// PasswordHasher はパスワードのハッシュ化と検証のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/password）ではなくコンシューマー（usecase）が定義します。
type PasswordHasher interface {
	// Hash は平文パスワードのソルト付きハッシュを返します。
	Hash(plain string) (string, error)
	// Verify は平文がハッシュと一致するかを判定します。
	Verify(plain, hashed string) bool
}

// AuthUsecase は認証ビジネスロジックを実装します。
// リクエスト間で状態を持ちません。
type AuthUsecase struct {
	users  UserRepository
	hasher PasswordHasher
}

// NewAuthUsecase はAuthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, hasher PasswordHasher) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		hasher: hasher,
	}
}

// normalizeEmail は保存・検索キーとして使う正規化済みメールアドレスを返します。
// 前後の空白を除去し、小文字に変換します。RegisterとLoginで同一の正規化を適用します。
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録し、採番されたIDを返します。
// 正規化後のメールアドレスまたはパスワードが空の場合はErrMissingCredentialsを返します。
// username/emailの重複はErrUserAlreadyExistsとして報告し、どちらの列が衝突したかは公開しません。
func (u *AuthUsecase) Register(ctx context.Context, username, email, password string) (uint, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return 0, ErrMissingCredentials
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Username: username, Email: email, Password: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Login はユーザーを認証し、成功時に公開アイデンティティ（IDとemailのみ）を返します。
// ユーザー未登録とパスワード不一致は同一のErrInvalidCredentialsになります。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもハッシュ検証を実行します。
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*entity.Identity, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// ハッシュ検証が常に実行されることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	match := u.hasher.Verify(password, passwordHash)

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || !match {
		return nil, ErrInvalidCredentials
	}

	return &entity.Identity{ID: user.ID, Email: user.Email}, nil
}
