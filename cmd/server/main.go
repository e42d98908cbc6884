package main

import (
	"log"
	"os"

	"user_backend/internal/app/router"
	usersadapters "user_backend/internal/feature/users/adapters"
	usershandler "user_backend/internal/feature/users/transport/handler"
	usersusecase "user_backend/internal/feature/users/usecase"
	"user_backend/internal/platform/db"
	"user_backend/internal/platform/password"
)

func main() {
	// db: プロセス全体で共有するコネクションプールを1度だけ構築
	gdb := db.OpenDB()
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatalf("failed to get database handle: %v", err)
	}
	// シャットダウン時にプールを1度だけ解放
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Println("[ERROR] Failed to close database pool:", err)
		}
	}()

	// Repository
	userRepo := usersadapters.NewUserPostgres(gdb)

	// Usecase
	hasher := password.New()
	userUC := usersusecase.NewUserUsecase(userRepo, hasher)

	// Handler
	userH := usershandler.NewUserHandler(userUC)

	// ルータ生成
	router := router.NewRouter(userH)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := router.Run(addr); err != nil {
		log.Fatal(err)
	}
}
