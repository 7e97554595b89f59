package submissionchatstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "talent-bridge-backend/models/db"
)

type Provider interface {
	Create(rec *dbmodels.ChatMessage) error
	List(submissionID string) ([]dbmodels.ChatMessage, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		DB: DB,
	}
}

type impl struct {
	DB *gorm.DB
}

func (c impl) Create(rec *dbmodels.ChatMessage) error {
	if err := c.DB.Create(rec).Error; err != nil {
		return errors.Wrap(err, "ошибка создания сообщения")
	}
	return nil
}

func (c impl) List(submissionID string) ([]dbmodels.ChatMessage, error) {
	var messages []dbmodels.ChatMessage
	err := c.DB.Preload("Sender").
		Where("submission_id = ?", submissionID).
		Order("created_at").
		Find(&messages).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения сообщений")
	}
	return messages, nil
}
