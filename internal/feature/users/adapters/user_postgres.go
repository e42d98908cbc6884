// Package adapters はusersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

// PostgreSQLエラー23505: 一意制約違反
const pgUniqueViolation = "23505"

// userPostgres はUserRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
type userPostgres struct {
	db *gorm.DB
}

// userPostgresがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres は指定されたgorm.DB接続でuserPostgresの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// isUniqueViolation は一意制約違反かどうかを判定します。
// TranslateError有効時はgorm.ErrDuplicatedKeyに変換されるため両方をチェックします。
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// Create はユーザーをデータベースに追加します。
// IDとRegistrationTimeはストアが採番・設定します。
// name/title/descriptionが既存行と重複する場合、usecase.ErrUserAlreadyExistsを返します。
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateFields は指定されたカラムのみを更新し、更新後のユーザーを返します。
// 取得と更新を1トランザクションで行い、接続はすべての経路で確実に返却されます。
// 空のfieldsは何も変更せず現在の行を返します。
func (r *userPostgres) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrUserNotFound
			}
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&u).Updates(fields).Error; err != nil {
			if isUniqueViolation(err) {
				return usecase.ErrUserAlreadyExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Delete はIDでユーザー行を完全に削除します（ソフトデリートなし）。
// 対象が存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userPostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u entity.User
		if err := tx.First(&u, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrUserNotFound
			}
			return err
		}
		return tx.Delete(&u).Error
	})
}
