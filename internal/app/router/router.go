package router

import (
	usershandler "user_backend/internal/feature/users/transport/handler"
	"user_backend/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

// NewRouter はHTTPルートを組み立てます。
func NewRouter(users *usershandler.UserHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// ユーザーリソース
	r.POST("/user", users.Create)
	r.GET("/user/:id", users.Get)
	r.PATCH("/user/:id", users.Patch)
	r.DELETE("/user/:id", users.Delete)

	return r
}
