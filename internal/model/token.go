package model

import "time"

// TokenType: назначение одноразового токена.
type TokenType string

const (
	TokenRegistration  TokenType = "REGISTRATION"
	TokenPasswordReset TokenType = "PASSWORD_RESET"
)

// OneTimeToken: токен из письма для установки или сброса пароля.
type OneTimeToken struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Value     string    `gorm:"uniqueIndex;not null"`
	Type      TokenType `gorm:"type:varchar(32);not null"`
	Used      bool      `gorm:"not null;default:false"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	UserID int64 `gorm:"not null;index"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Expired сообщает, истёк ли токен к моменту now.
func (t *OneTimeToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
