package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"myblog/internal/apperrors"
	"myblog/internal/config"
	"myblog/internal/repository"
	"myblog/internal/service"
)

type Handlers struct {
	AuthService   service.AuthService
	UserService   service.UserService
	PostService   service.PostService
	ImageService  service.ImageService
	TablesService service.TablesService
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:   service.Auth,
		UserService:   service.User,
		PostService:   service.Post,
		ImageService:  service.Image,
		TablesService: service.Tables,
		Cfg:           config,
		Validate:      validator.New(),
	}
}

// currentUserID достаёт id пользователя, положенный auth-middleware в контекст
func currentUserID(r *http.Request) (int, error) {
	id, ok := r.Context().Value("userID").(int)
	if !ok {
		return 0, apperrors.NotAuthenticated("Not authenticated. Provide a bearer token.")
	}
	return id, nil
}

// requireAdmin проверяет флаг администратора из контекста
func requireAdmin(r *http.Request) error {
	isAdmin, ok := r.Context().Value("isAdmin").(bool)
	if !ok {
		return apperrors.NotAuthenticated("Not authenticated. Provide a bearer token.")
	}
	if !isAdmin {
		return apperrors.AdminOnly("You do not have access to this endpoint. Admins only.")
	}
	return nil
}

// HomeHandler - приветственная страница API
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"message": "Welcome to MyBlog API"}, http.StatusOK)
}

// HealthHandler - проверка того, что сервис жив
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
