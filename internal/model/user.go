package model

import "time"

// User: учётная запись; Password пуст до установки пароля по ссылке из письма.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	FullName  string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Password  string    // bcrypt hash
	Active    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
