package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"myblog/internal/apperrors"
	"myblog/internal/service"
)

type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
	Password  string `json:"password" validate:"required,min=5"`
	IsAdmin   bool   `json:"is_admin"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type MessageResponse struct {
	Message string            `json:"message"`
	Link    map[string]string `json:"link,omitempty"`
}

// Login принимает form-data с полями username и password.
// В поле username допускается и email, и имя пользователя.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, apperrors.InvalidCredentials("Login fail. Check your username, email, or password."))
		return
	}

	identifier := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if identifier == "" || password == "" {
		WriteError(w, apperrors.InvalidCredentials("Login fail. Check your username, email, or password."))
		return
	}

	token, err := h.AuthService.Login(r.Context(), identifier, password)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, TokenResponse{AccessToken: token, TokenType: "bearer"}, http.StatusOK)
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apperrors.DataCreation("Invalid request body."))
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, apperrors.DataCreation("Invalid signup data: "+err.Error()))
		return
	}

	_, activationLink, err := h.UserService.Signup(r.Context(), service.SignupRequest{
		Email:     req.Email,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{
		Message: "Check your email to activate your account.",
		Link:    map[string]string{"activation_link": activationLink},
	}, http.StatusCreated)
}

func (h *Handlers) ActivateAccount(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	if err := h.UserService.ActivateAccount(r.Context(), token); err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "Account successfully activated."}, http.StatusOK)
}

func (h *Handlers) ForgetPassword(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	resetLink, err := h.UserService.ForgetPassword(r.Context(), email)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{
		Message: "Check your email to reset your password",
		Link:    map[string]string{"reset_link": resetLink},
	}, http.StatusCreated)
}

func (h *Handlers) VerifyResetToken(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	if err := h.UserService.VerifyResetToken(r.Context(), token); err != nil {
		WriteError(w, err)
		return
	}

	updateURL := "http://" + h.Cfg.HostServer + "/api/auth/reset-password/update-password/" + token + "/"
	writeSuccess(w, MessageResponse{
		Message: "Reset password token is succcessfully verified. Proceed to '" + updateURL + "' to update your password.",
	}, http.StatusOK)
}

// UpdatePasswordByToken завершает сценарий сброса пароля: new_password приходит формой
func (h *Handlers) UpdatePasswordByToken(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	if err := r.ParseForm(); err != nil {
		WriteError(w, apperrors.DataCreation("Invalid request body."))
		return
	}
	newPassword := r.PostFormValue("new_password")
	if len(newPassword) < 5 {
		WriteError(w, apperrors.DataCreation("Password must be at least 5 characters long."))
		return
	}

	if err := h.UserService.UpdatePasswordByToken(r.Context(), token, newPassword); err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "Password updated successfully."}, http.StatusCreated)
}

func (h *Handlers) ChangeEmail(w http.ResponseWriter, r *http.Request) {
	newEmail := mux.Vars(r)["new_email"]

	userID, err := currentUserID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	resetLink, err := h.UserService.RequestEmailChange(r.Context(), userID, newEmail)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{
		Message: "Check your email " + newEmail + " for the reset email link.",
		Link:    map[string]string{"reset_link": resetLink},
	}, http.StatusCreated)
}

func (h *Handlers) ConfirmEmailChange(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	if err := h.UserService.ConfirmEmailChange(r.Context(), token); err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "email changed successfully."}, http.StatusOK)
}

func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	newPassword := mux.Vars(r)["new_password"]

	userID, err := currentUserID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if len(newPassword) < 5 {
		WriteError(w, apperrors.DataCreation("Password must be at least 5 characters long."))
		return
	}

	if err := h.UserService.ChangePassword(r.Context(), userID, newPassword); err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "Password changed successfully."}, http.StatusOK)
}
