package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"myblog/cmd/app"
	"myblog/internal/config"
	handlers "myblog/internal/handler"
	"myblog/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/tables", handler.TablesHandler).Methods(http.MethodGet)

	auth := router.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/login/", handler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/signup/", handler.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/activate-account/{token}", handler.ActivateAccount).Methods(http.MethodGet)
	auth.HandleFunc("/users/profile/", handler.GetProfile).Methods(http.MethodGet)
	auth.HandleFunc("/users/update-profile/", handler.UpdateProfile).Methods(http.MethodPut)
	auth.HandleFunc("/users/forget-password/{email}/", handler.ForgetPassword).Methods(http.MethodPost)
	auth.HandleFunc("/reset-password/verify-token/{token}/", handler.VerifyResetToken).Methods(http.MethodGet)
	auth.HandleFunc("/reset-password/update-password/{token}/", handler.UpdatePasswordByToken).Methods(http.MethodPost)
	auth.HandleFunc("/users/change-email/{new_email}/", handler.ChangeEmail).Methods(http.MethodPost)
	auth.HandleFunc("/update-email/verify-token/{token}/", handler.ConfirmEmailChange).Methods(http.MethodGet)
	auth.HandleFunc("/change-password/{new_password}/", handler.ChangePassword).Methods(http.MethodPost)
	auth.HandleFunc("/all-users/", handler.GetAllUsers).Methods(http.MethodGet)
	auth.HandleFunc("/users/{user_id}/deactivate/", handler.DeactivateUser).Methods(http.MethodGet)
	auth.HandleFunc("/users/{user_id}/reactivate", handler.ReactivateUser).Methods(http.MethodGet)
	auth.HandleFunc("/users/", handler.DeleteUser).Methods(http.MethodDelete)

	posts := router.PathPrefix("/api/posts").Subrouter()
	posts.HandleFunc("/", handler.CreatePost).Methods(http.MethodPost)
	posts.HandleFunc("/", handler.GetAllPosts).Methods(http.MethodGet)
	posts.HandleFunc("/users/", handler.GetUserPosts).Methods(http.MethodGet)
	posts.HandleFunc("/hashtags/{hashtag}", handler.GetPostsByHashtag).Methods(http.MethodGet)
	posts.HandleFunc("/{post_id}/", handler.GetPost).Methods(http.MethodGet)
	posts.HandleFunc("/{post_id}/", handler.UpdatePost).Methods(http.MethodPut)
	posts.HandleFunc("/{post_id}/", handler.DeletePost).Methods(http.MethodDelete)
	posts.HandleFunc("/{post_id}/comments/", handler.AddComment).Methods(http.MethodPost)
	posts.HandleFunc("/comments/{comment_id}/", handler.UpdateComment).Methods(http.MethodPut)
	posts.HandleFunc("/comments/{comment_id}/", handler.DeleteComment).Methods(http.MethodDelete)
	posts.HandleFunc("/{post_id}/like/", handler.LikePost).Methods(http.MethodPost)
	posts.HandleFunc("/{post_id}/like/", handler.RemoveLike).Methods(http.MethodDelete)
	posts.HandleFunc("/{post_id}/dislike/", handler.DislikePost).Methods(http.MethodPost)
	posts.HandleFunc("/{post_id}/dislike/", handler.RemoveDislike).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(services.Auth),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
