package repo

import (
	"context"
	"errors"

	"TokenKeeper/internal/model"

	"gorm.io/gorm"
)

// ErrTokenUsed: токен уже погашен (в том числе параллельным запросом).
var ErrTokenUsed = errors.New("token already used")

// TokenRepository: одноразовые токены регистрации и сброса пароля.
type TokenRepository interface {
	Create(ctx context.Context, t *model.OneTimeToken) error
	// GetByValue возвращает токен вместе с пользователем.
	GetByValue(ctx context.Context, value string) (*model.OneTimeToken, error)
	// Redeem в одной транзакции помечает токен использованным и сохраняет user.
	Redeem(ctx context.Context, t *model.OneTimeToken, user *model.User) error
}

type tokenRepo struct {
	db *gorm.DB
}

// NewTokenRepository создаёт реализацию репозитория токенов.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepo{db: db}
}

func (r *tokenRepo) Create(ctx context.Context, t *model.OneTimeToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tokenRepo) GetByValue(ctx context.Context, value string) (*model.OneTimeToken, error) {
	var t model.OneTimeToken
	if err := r.db.WithContext(ctx).Preload("User").Where("value = ?", value).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tokenRepo) Redeem(ctx context.Context, t *model.OneTimeToken, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// условное обновление: used=false в WHERE не даёт погасить токен дважды
		res := tx.Model(&model.OneTimeToken{}).
			Where("id = ? AND used = ?", t.ID, false).
			Update("used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTokenUsed
		}
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		t.Used = true
		return nil
	})
}
