package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"TokenKeeper/internal/model"
	"TokenKeeper/internal/repo"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user inactive")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenUsed          = errors.New("token already used")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenWrongType     = errors.New("token not valid for this operation")
)

const (
	RegistrationTTL  = 24 * time.Hour
	PasswordResetTTL = time.Hour
)

// UserService: регистрация, вход и управление паролем.
type UserService struct {
	users       repo.UserRepository
	tokens      repo.TokenRepository
	mailer      Mailer
	frontendURL string
	now         func() time.Time
}

func NewUserService(users repo.UserRepository, tokens repo.TokenRepository, mailer Mailer, frontendURL string) *UserService {
	return &UserService{
		users:       users,
		tokens:      tokens,
		mailer:      mailer,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		now:         time.Now,
	}
}

// Register создаёт неактивного пользователя и отправляет ссылку на установку пароля.
// Если письмо не ушло, регистрация всё равно считается успешной, а токен возвращается в сообщении.
func (s *UserService) Register(ctx context.Context, fullName, email string) (string, error) {
	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailTaken
	}

	user, err := s.users.CreateUser(ctx, &model.User{FullName: fullName, Email: email})
	if err != nil {
		return "", err
	}
	value, err := s.issueToken(ctx, user, model.TokenRegistration, RegistrationTTL)
	if err != nil {
		return "", err
	}

	link := s.frontendURL + "/set-password.html?token=" + value
	if err := s.mailer.SendRegistration(ctx, user.Email, user.FullName, link); err != nil {
		return "Registro exitoso. NOTA: No se pudo enviar el correo. Token de configuración: " + value, nil
	}
	return "Registro exitoso. Se ha enviado un correo electrónico para configurar tu contraseña.", nil
}

// SetPassword задаёт первый пароль по токену регистрации и активирует пользователя.
func (s *UserService) SetPassword(ctx context.Context, token, password string) (string, error) {
	if err := s.redeem(ctx, token, model.TokenRegistration, password); err != nil {
		return "", err
	}
	return "Contraseña configurada exitosamente. Ahora puedes iniciar sesión.", nil
}

// ResetPassword меняет пароль по токену сброса.
func (s *UserService) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	if err := s.redeem(ctx, token, model.TokenPasswordReset, newPassword); err != nil {
		return "", err
	}
	return "Contraseña restablecida exitosamente. Ahora puedes iniciar sesión con tu nueva contraseña.", nil
}

// Login проверяет пароль; неактивный пользователь получает ErrUserInactive.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.Password == "" || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		return nil, ErrUserInactive
	}
	return user, nil
}

// ForgotPassword выпускает токен сброса на час и отправляет письмо.
func (s *UserService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	if !user.Active {
		return "", ErrUserInactive
	}
	value, err := s.issueToken(ctx, user, model.TokenPasswordReset, PasswordResetTTL)
	if err != nil {
		return "", err
	}

	link := s.frontendURL + "/reset.html?token=" + value
	if err := s.mailer.SendPasswordReset(ctx, user.Email, user.FullName, link); err != nil {
		return "Token generado. NOTA: No se pudo enviar el correo. Token de reseteo: " + value, nil
	}
	return "Se ha enviado un correo electrónico con instrucciones para restablecer tu contraseña.", nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.ListUsers(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.users.GetUserByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *UserService) issueToken(ctx context.Context, user *model.User, typ model.TokenType, ttl time.Duration) (string, error) {
	t := &model.OneTimeToken{
		Value:     uuid.NewString(),
		Type:      typ,
		ExpiresAt: s.now().Add(ttl),
		UserID:    user.ID,
	}
	if err := s.tokens.Create(ctx, t); err != nil {
		return "", fmt.Errorf("save token: %w", err)
	}
	return t.Value, nil
}

func (s *UserService) redeem(ctx context.Context, value string, typ model.TokenType, password string) error {
	t, err := s.tokens.GetByValue(ctx, value)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidToken
	}
	if err != nil {
		return err
	}
	switch {
	case t.Used:
		return ErrTokenUsed
	case t.Expired(s.now()):
		return ErrTokenExpired
	case t.Type != typ:
		return ErrTokenWrongType
	case t.User == nil:
		return ErrInvalidToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user := t.User
	user.Password = string(hash)
	if typ == model.TokenRegistration {
		user.Active = true
	}
	if err := s.tokens.Redeem(ctx, t, user); err != nil {
		if errors.Is(err, repo.ErrTokenUsed) {
			return ErrTokenUsed
		}
		return err
	}
	return nil
}
