package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"TokenKeeper/internal/config"
	"TokenKeeper/internal/dto"
	"TokenKeeper/internal/middleware"
	"TokenKeeper/internal/model"
	"TokenKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service *service.UserService
	logger  *zap.SugaredLogger
	config  *config.Config
}

func NewUserHandler(s *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{service: s, logger: logger, config: cfg}
}

// apiError: ошибка сервиса и ответ клиенту.
type apiError struct {
	status  int
	message string
}

var serviceErrors = map[error]apiError{
	service.ErrEmailTaken:         {http.StatusConflict, "El correo electrónico ya está registrado"},
	service.ErrInvalidCredentials: {http.StatusUnauthorized, "Credenciales inválidas"},
	service.ErrUserNotFound:       {http.StatusNotFound, "Usuario no encontrado"},
	service.ErrInvalidToken:       {http.StatusBadRequest, "Token inválido"},
	service.ErrTokenUsed:          {http.StatusBadRequest, "Este token ya ha sido utilizado"},
	service.ErrTokenExpired:       {http.StatusBadRequest, "El token ha expirado"},
	service.ErrTokenWrongType:     {http.StatusBadRequest, "Token inválido para esta operación"},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.MessageResponse{Message: msg})
}

// writeError переводит ошибку сервиса в статус. inactiveStatus различается по операциям:
// вход неактивного пользователя: 403, запрос сброса пароля, 400.
func (h *UserHandler) writeError(w http.ResponseWriter, err error, inactiveStatus int) {
	if errors.Is(err, service.ErrUserInactive) {
		writeMessage(w, inactiveStatus, "Usuario inactivo. Por favor, configure su contraseña primero.")
		return
	}
	for target, e := range serviceErrors {
		if errors.Is(err, target) {
			writeMessage(w, e.status, e.message)
			return
		}
	}
	h.logger.Errorw("request failed", "error", err)
	writeMessage(w, http.StatusInternalServerError, "Error interno del servidor")
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "Solicitud inválida")
		return false
	}
	return true
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decode(w, r, &req) {
		return
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	if req.FullName == "" || dto.ValidateEmail(req.Email) != nil {
		writeMessage(w, http.StatusBadRequest, "Nombre completo y correo electrónico válidos son obligatorios")
		return
	}
	msg, err := h.service.Register(r.Context(), req.FullName, req.Email)
	if err != nil {
		h.writeError(w, err, http.StatusBadRequest)
		return
	}
	writeMessage(w, http.StatusCreated, msg)
}

func (h *UserHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.SetPasswordRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Token == "" || dto.ValidateNewPassword(req.Password) != nil {
		writeMessage(w, http.StatusBadRequest, "La contraseña debe tener al menos 6 caracteres")
		return
	}
	msg, err := h.service.SetPassword(r.Context(), req.Token, req.Password)
	if err != nil {
		h.writeError(w, err, http.StatusBadRequest)
		return
	}
	writeMessage(w, http.StatusOK, msg)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	user, err := h.service.Login(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		h.writeError(w, err, http.StatusForbidden)
		return
	}
	token, err := middleware.IssueToken(user.ID, user.Email, h.config.AuthSecret, h.config.TokenTTL)
	if err != nil {
		h.writeError(w, err, http.StatusForbidden)
		return
	}
	h.logger.Infow("user logged in", "user_id", user.ID)
	writeJSON(w, http.StatusOK, dto.AuthResponse{Token: token, Email: user.Email, FullName: user.FullName})
}

func (h *UserHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgotPasswordRequest
	if !decode(w, r, &req) {
		return
	}
	msg, err := h.service.ForgotPassword(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		h.writeError(w, err, http.StatusBadRequest)
		return
	}
	writeMessage(w, http.StatusOK, msg)
}

func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Token == "" || dto.ValidateNewPassword(req.NewPassword) != nil {
		writeMessage(w, http.StatusBadRequest, "La contraseña debe tener al menos 6 caracteres")
		return
	}
	msg, err := h.service.ResetPassword(r.Context(), req.Token, req.NewPassword)
	if err != nil {
		h.writeError(w, err, http.StatusBadRequest)
		return
	}
	writeMessage(w, http.StatusOK, msg)
}

func toUserResponse(u model.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, FullName: u.FullName, Email: u.Email, Active: u.Active, CreatedAt: u.CreatedAt}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, err, http.StatusBadRequest)
		return
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Identificador inválido")
		return
	}
	u, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		h.writeError(w, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*u))
}
