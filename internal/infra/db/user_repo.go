package db

import (
	"context"
	"time"

	"github.com/jortega/gastobot/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Authorize(ctx context.Context, chatID int64, createdAt time.Time) error {
	model := userModel{
		ChatID:         chatID,
		CurrencySymbol: "$",
		CreatedAt:      createdAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model).Error
}

func (r *UserRepository) GetByChatID(ctx context.Context, chatID int64) (*domain.User, error) {
	var model userModel
	if err := r.db.WithContext(ctx).Where("chat_id = ?", chatID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mapUserToDomain(model), nil
}

func (r *UserRepository) Exists(ctx context.Context, chatID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&userModel{}).Where("chat_id = ?", chatID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, chatID int64, username, displayName string) error {
	return r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("chat_id = ?", chatID).
		Updates(map[string]interface{}{"username": username, "display_name": displayName}).Error
}

func (r *UserRepository) ListChatIDs(ctx context.Context) ([]int64, error) {
	var chatIDs []int64
	if err := r.db.WithContext(ctx).Model(&userModel{}).Pluck("chat_id", &chatIDs).Error; err != nil {
		return nil, err
	}
	return chatIDs, nil
}

func mapUserToDomain(model userModel) *domain.User {
	return &domain.User{
		ChatID:         model.ChatID,
		Username:       model.Username,
		DisplayName:    model.DisplayName,
		CurrencySymbol: model.CurrencySymbol,
		CreatedAt:      model.CreatedAt,
	}
}
