// Package usecase はusersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"user_backend/internal/feature/users/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// name/title/descriptionのいずれかが既存ユーザーと重複する場合、ErrUserAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdateFields は指定されたカラムのみを1トランザクション内で更新し、更新後のユーザーを返します。
	// 対象が存在しない場合はErrUserNotFound、一意制約違反の場合はErrUserAlreadyExistsを返します。
	UpdateFields(ctx context.Context, id uint, fields map[string]any) (*entity.User, error)

	// Delete は指定されたIDのユーザーを完全に削除します。
	// 対象が存在しない場合、ErrUserNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// PasswordHasher はパスワードのハッシュ化を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/password）ではなくコンシューマー（usecase）が定義します。
type PasswordHasher interface {
	// Hash は平文パスワードから検証可能なダイジェストを生成します。
	Hash(plaintext string) (string, error)
}

// userUsecase はユーザーアカウントのCRUDロジックを実装します。
type userUsecase struct {
	users  UserRepository
	hasher PasswordHasher
}

// NewUserUsecase はuserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository, hasher PasswordHasher) *userUsecase {
	return &userUsecase{
		users:  users,
		hasher: hasher,
	}
}

// Create は検証済みフィールドから新規ユーザーを登録します。
// パスワードは永続化前に必ずハッシュ化されます。存在チェックは行わず、
// 重複はストアの一意制約に委ねます（check-then-actの競合を避けるため）。
func (u *userUsecase) Create(ctx context.Context, fields map[string]string) (*entity.User, error) {
	digest, err := u.hasher.Hash(fields["password"])
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:        fields["name"],
		Password:    digest,
		Title:       fields["title"],
		Description: fields["description"],
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get はIDでユーザーを取得します。
func (u *userUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Update は入力に含まれていたフィールドのみを変更します。
// パスワードが含まれる場合はハッシュ化してから渡します。
// 空の入力は何も変更せず、現在のユーザーをそのまま返します。
func (u *userUsecase) Update(ctx context.Context, id uint, fields map[string]string) (*entity.User, error) {
	changes := make(map[string]any, len(fields))
	for name, value := range fields {
		changes[name] = value
	}

	if plaintext, ok := fields["password"]; ok {
		digest, err := u.hasher.Hash(plaintext)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		changes["password"] = digest
	}

	return u.users.UpdateFields(ctx, id, changes)
}

// Delete はIDでユーザーを完全に削除します。
func (u *userUsecase) Delete(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}
