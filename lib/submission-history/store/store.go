package submissionhistorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "talent-bridge-backend/models/db"
)

type Provider interface {
	Create(rec *dbmodels.SubmissionHistory) error
	List(submissionID string, actionType dbmodels.ActionType, page, limit int) ([]dbmodels.SubmissionHistory, int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		DB: DB,
	}
}

type impl struct {
	DB *gorm.DB
}

func (h impl) Create(rec *dbmodels.SubmissionHistory) error {
	if err := h.DB.Create(rec).Error; err != nil {
		return errors.Wrap(err, "ошибка записи истории отклика")
	}
	return nil
}

func (h impl) List(submissionID string, actionType dbmodels.ActionType, page, limit int) ([]dbmodels.SubmissionHistory, int64, error) {
	query := h.DB.Model(&dbmodels.SubmissionHistory{}).Where("submission_id = ?", submissionID)
	if actionType != "" {
		query = query.Where("action_type = ?", actionType)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "ошибка подсчета истории отклика")
	}
	var records []dbmodels.SubmissionHistory
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения истории отклика")
	}
	return records, total, nil
}
