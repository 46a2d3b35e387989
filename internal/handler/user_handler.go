package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"myblog/internal/apperrors"
	"myblog/internal/service"
)

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	user, err := h.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, user, http.StatusOK)
}

// UpdateProfile принимает multipart-форму: текстовые поля плюс profile_image.
// Отсутствующее поле оставляет прежнее значение.
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, apperrors.DataCreation("Invalid multipart form."))
		return
	}

	var req service.UpdateProfileRequest
	if v := r.PostFormValue("firstname"); v != "" {
		req.Firstname = &v
	}
	if v := r.PostFormValue("lastname"); v != "" {
		req.Lastname = &v
	}
	if v := r.PostFormValue("username"); v != "" {
		req.Username = &v
	}
	if v := r.PostFormValue("dob"); v != "" {
		dob, err := time.Parse("2006-01-02", v)
		if err != nil {
			WriteError(w, apperrors.DataCreation("Invalid date of birth, expected YYYY-MM-DD."))
			return
		}
		req.Dob = &dob
	}

	file, header, err := r.FormFile("profile_image")
	if err == nil {
		defer file.Close()
		imageURL, err := h.ImageService.Upload(
			r.Context(), h.Cfg.MinIO.ProfileImageFolder, header.Filename, file, header.Size)
		if err != nil {
			WriteError(w, err)
			return
		}
		req.ImageURL = &imageURL
	} else if err != http.ErrMissingFile {
		WriteError(w, apperrors.DataCreation("Invalid profile image."))
		return
	}

	user, err := h.UserService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, user, http.StatusCreated)
}

func (h *Handlers) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r); err != nil {
		WriteError(w, err)
		return
	}

	users, err := h.UserService.GetAllUsers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, users, http.StatusOK)
}

func (h *Handlers) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	h.setDeactivated(w, r, true, "deactivated")
}

func (h *Handlers) ReactivateUser(w http.ResponseWriter, r *http.Request) {
	h.setDeactivated(w, r, false, "reactivated")
}

func (h *Handlers) setDeactivated(w http.ResponseWriter, r *http.Request, deactivated bool, action string) {
	if err := requireAdmin(r); err != nil {
		WriteError(w, err)
		return
	}

	userID, err := strconv.Atoi(mux.Vars(r)["user_id"])
	if err != nil {
		WriteError(w, apperrors.DataCreation("Invalid user id."))
		return
	}

	if err := h.UserService.SetDeactivated(r.Context(), userID, deactivated); err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{
		Message: "The user with id " + strconv.Itoa(userID) + " has been successfully " + action,
	}, http.StatusOK)
}

// DeleteUser - удаление пользователя админом, email приходит в теле запроса
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r); err != nil {
		WriteError(w, err)
		return
	}

	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apperrors.DataCreation("Invalid request body."))
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, apperrors.DataCreation("Invalid email."))
		return
	}

	if err := h.UserService.DeleteUserByEmail(r.Context(), req.Email); err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "user deleted successfully"}, http.StatusOK)
}
