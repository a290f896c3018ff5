package service

import (
	"context"

	"go.uber.org/zap"
)

// Mailer отправляет письма со ссылками на установку и сброс пароля.
type Mailer interface {
	SendRegistration(ctx context.Context, to, fullName, link string) error
	SendPasswordReset(ctx context.Context, to, fullName, link string) error
}

// LogMailer вместо отправки пишет ссылку в лог. Подходит для локальной разработки.
type LogMailer struct {
	Logger *zap.SugaredLogger
}

func (m LogMailer) SendRegistration(_ context.Context, to, fullName, link string) error {
	m.Logger.Infow("registration mail", "to", to, "name", fullName, "link", link)
	return nil
}

func (m LogMailer) SendPasswordReset(_ context.Context, to, fullName, link string) error {
	m.Logger.Infow("password reset mail", "to", to, "name", fullName, "link", link)
	return nil
}
