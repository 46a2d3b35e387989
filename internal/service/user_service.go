package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"myblog/internal/apperrors"
	"myblog/internal/config"
	"myblog/internal/mailer"
	"myblog/internal/models"
	"myblog/internal/repository"
)

type SignupRequest struct {
	Email     string
	Firstname string
	Lastname  string
	Password  string
	IsAdmin   bool
}

// UpdateProfileRequest - patch-семантика: nil поле оставляет прежнее значение
type UpdateProfileRequest struct {
	Firstname *string
	Lastname  *string
	Username  *string
	Dob       *time.Time
	ImageURL  *string
}

type UserService interface {
	Signup(ctx context.Context, req SignupRequest) (*models.User, string, error)
	ActivateAccount(ctx context.Context, token string) error
	GetProfile(ctx context.Context, userID int) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int, req UpdateProfileRequest) (*models.User, error)
	ForgetPassword(ctx context.Context, email string) (string, error)
	VerifyResetToken(ctx context.Context, token string) error
	UpdatePasswordByToken(ctx context.Context, token, newPassword string) error
	ChangePassword(ctx context.Context, userID int, newPassword string) error
	RequestEmailChange(ctx context.Context, userID int, newEmail string) (string, error)
	ConfirmEmailChange(ctx context.Context, token string) error
	GetAllUsers(ctx context.Context) ([]models.User, error)
	SetDeactivated(ctx context.Context, userID int, deactivated bool) error
	DeleteUserByEmail(ctx context.Context, email string) error
}

type userService struct {
	userRepo   repository.UserRepository
	emailToken EmailTokenService
	images     ImageService
	mail       mailer.Mailer
	cfg        *config.Config
}

func NewUserService(
	userRepo repository.UserRepository,
	emailToken EmailTokenService,
	images ImageService,
	mail mailer.Mailer,
	cfg *config.Config,
) UserService {
	return &userService{
		userRepo:   userRepo,
		emailToken: emailToken,
		images:     images,
		mail:       mail,
		cfg:        cfg,
	}
}

var usernameSymbols = []string{"", "-", "_", "."}

// autoUsername - firstname + случайный символ + lastname + 5 цифр, в нижнем
// регистре. Перегенерация до уникальности, число попыток ограничено конфигом.
func (s *userService) autoUsername(ctx context.Context, firstname, lastname string) (string, error) {
	for attempt := 0; attempt < s.cfg.UsernameMaxAttempts; attempt++ {
		num := fmt.Sprintf("%05d", rand.Intn(100000))
		symbol := usernameSymbols[rand.Intn(len(usernameSymbols))]
		username := strings.ToLower(firstname) + symbol + strings.ToLower(lastname) + num

		exists, err := s.userRepo.UsernameExists(ctx, username)
		if err != nil {
			return "", err
		}
		if !exists {
			return username, nil
		}
	}

	return "", apperrors.DataCreation("Could not generate a unique username, please try again.")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func (s *userService) Signup(ctx context.Context, req SignupRequest) (*models.User, string, error) {
	email := strings.ToLower(req.Email)

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", apperrors.EmailExists("User with this email already exists.")
	}

	username, err := s.autoUsername(ctx, req.Firstname, req.Lastname)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Username:  username,
		Email:     email,
		Firstname: capitalize(req.Firstname),
		Lastname:  capitalize(req.Lastname),
		IsAdmin:   req.IsAdmin,
		IsActive:  false,
		ImageURL:  s.cfg.DefaultProfileImage,
	}

	if err := s.userRepo.CreateUser(ctx, user, req.Password); err != nil {
		return nil, "", err
	}

	token, err := s.emailToken.Generate(ctx, user.Email, nil)
	if err != nil {
		return nil, "", err
	}

	activationLink := fmt.Sprintf("http://%s/api/auth/activate-account/%s", s.cfg.HostServer, token)
	html, subject := mailer.ActivateAccountHTML(user.Firstname, activationLink)
	s.sendEmailAsync([]string{user.Email}, subject, html)

	return user, activationLink, nil
}

// sendEmailAsync - письма уходят в фоне, сбой доставки не валит запрос
func (s *userService) sendEmailAsync(to []string, subject, html string) {
	go func() {
		if err := s.mail.Send(to, subject, html); err != nil {
			log.Printf("Ошибка отправки письма: %v", err)
		}
	}()
}

func (s *userService) ActivateAccount(ctx context.Context, token string) error {
	if err := s.emailToken.Verify(ctx, token); err != nil {
		return err
	}

	email, _, err := s.emailToken.Consume(ctx, token)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	return s.userRepo.SetActive(ctx, user.UserID, true)
}

func (s *userService) GetProfile(ctx context.Context, userID int) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID int, req UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Firstname != nil {
		user.Firstname = *req.Firstname
	}
	if req.Lastname != nil {
		user.Lastname = *req.Lastname
	}
	if req.Dob != nil {
		user.Dob = req.Dob
	}

	if req.Username != nil && *req.Username != user.Username {
		exists, err := s.userRepo.UsernameExists(ctx, *req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.UsernameExists("This username is already taken.")
		}
		user.Username = *req.Username
	}

	if req.ImageURL != nil {
		oldImageURL := user.ImageURL
		user.ImageURL = *req.ImageURL

		// старую картинку убираем, дефолтную не трогаем
		if oldImageURL != s.cfg.DefaultProfileImage {
			if err := s.images.DeleteByURL(ctx, oldImageURL); err != nil {
				log.Printf("Предупреждение: не удалось удалить старое изображение профиля: %v", err)
			}
		}
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) ForgetPassword(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	token, err := s.emailToken.Generate(ctx, user.Email, nil)
	if err != nil {
		return "", err
	}

	resetLink := fmt.Sprintf("http://%s/api/auth/reset-password/verify-token/%s", s.cfg.HostServer, token)
	html, subject := mailer.VerificationEmailHTML(user.Firstname, resetLink)
	s.sendEmailAsync([]string{user.Email}, subject, html)

	return resetLink, nil
}

func (s *userService) VerifyResetToken(ctx context.Context, token string) error {
	return s.emailToken.Verify(ctx, token)
}

func (s *userService) UpdatePasswordByToken(ctx context.Context, token, newPassword string) error {
	email, _, err := s.emailToken.Consume(ctx, token)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, user.UserID, newPassword)
}

func (s *userService) ChangePassword(ctx context.Context, userID int, newPassword string) error {
	return s.userRepo.UpdatePassword(ctx, userID, newPassword)
}

func (s *userService) RequestEmailChange(ctx context.Context, userID int, newEmail string) (string, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	oldEmail := user.Email
	token, err := s.emailToken.Generate(ctx, strings.ToLower(newEmail), &oldEmail)
	if err != nil {
		return "", err
	}

	resetLink := fmt.Sprintf("http://%s/api/auth/update-email/verify-token/%s", s.cfg.HostServer, token)
	html, subject := mailer.VerificationEmailHTML(user.Firstname, resetLink)
	s.sendEmailAsync([]string{newEmail}, subject, html)

	return resetLink, nil
}

func (s *userService) ConfirmEmailChange(ctx context.Context, token string) error {
	if err := s.emailToken.Verify(ctx, token); err != nil {
		return err
	}

	newEmail, oldEmail, err := s.emailToken.Consume(ctx, token)
	if err != nil {
		return err
	}

	if oldEmail == nil {
		return apperrors.InvalidEmailToken("The token is invalid or has expired.")
	}

	return s.userRepo.UpdateEmail(ctx, *oldEmail, newEmail)
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

func (s *userService) SetDeactivated(ctx context.Context, userID int, deactivated bool) error {
	return s.userRepo.SetDeactivated(ctx, userID, deactivated)
}

func (s *userService) DeleteUserByEmail(ctx context.Context, email string) error {
	return s.userRepo.DeleteUserByEmail(ctx, email)
}
