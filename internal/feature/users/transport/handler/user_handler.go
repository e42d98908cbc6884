// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/transport/http/dto"
	"user_backend/internal/feature/users/usecase"
	"user_backend/internal/feature/users/validation"
)

// UserUsecase はユーザーアカウント操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	// Create は検証済みフィールドから新規ユーザーを登録します。
	Create(ctx context.Context, fields map[string]string) (*entity.User, error)
	// Get はIDでユーザーを取得します。
	Get(ctx context.Context, id uint) (*entity.User, error)
	// Update は入力に含まれていたフィールドのみを変更します。
	Update(ctx context.Context, id uint, fields map[string]string) (*entity.User, error)
	// Delete はIDでユーザーを完全に削除します。
	Delete(ctx context.Context, id uint) error
}

// UserHandler はユーザーリソースのHTTPリクエストを処理します。
// 検証 → ハッシュ化 → 永続化の順に委譲し、ドメインエラーをHTTPステータスへ変換します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からUserUsecaseを注入します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// parseID はパスパラメータ:idを解析します。整数でない場合は400を返します。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		slog.Warn("invalid user id", "id", c.Param("id"), "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return 0, false
	}
	return uint(id), true
}

// writeDomainError はユースケースのエラーをHTTPレスポンスへ変換します。
// 内部エラーの詳細はクライアントへ公開しません。
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "user already exist"})
	default:
		slog.Error("persistence failure", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// Get はGET /user/:id を処理します。
// - 存在しないIDは404を返却
// - 成功時は200で公開プロジェクションを返却
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Create はPOST /user を処理します。
// - リクエストJSONをCreateスキーマで検証、違反時は400を返却
// - 一意制約違反時は409を返却
// - 成功時は201で作成されたユーザーのプロジェクションを返却
func (h *UserHandler) Create(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		slog.Warn("create user: malformed body", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid json body"})
		return
	}
	fields, verr := validation.Validate(raw, validation.SchemaCreate)
	if verr != nil {
		slog.Warn("create user: validation failed", "field", verr.Field, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: verr})
		return
	}

	user, err := h.users.Create(c.Request.Context(), fields)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	slog.Info("user created", "id", user.ID, "name", user.Name)
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// Patch はPATCH /user/:id を処理します。
// 入力に含まれていたフィールドのみを変更する部分更新です。
// - 検証違反時は400、対象不在時は404、一意制約違反時は409を返却
// - 成功時は200で更新後のプロジェクションを返却
func (h *UserHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		slog.Warn("update user: malformed body", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid json body"})
		return
	}
	fields, verr := validation.Validate(raw, validation.SchemaUpdate)
	if verr != nil {
		slog.Warn("update user: validation failed", "field", verr.Field, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: verr})
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, fields)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	slog.Info("user updated", "id", user.ID)
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Delete はDELETE /user/:id を処理します。
// - 対象不在時は404を返却
// - 成功時は200で確認応答を返却
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	slog.Info("user deleted", "id", id)
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "deleted"})
}
