package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "talent-bridge-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Job")
	}
	if err := DB.AutoMigrate(&dbmodels.Submission{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Submission")
	}
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Interview")
	}
	if err := DB.AutoMigrate(&dbmodels.Offer{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Offer")
	}
	if err := DB.AutoMigrate(&dbmodels.Rejection{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Rejection")
	}
	if err := DB.AutoMigrate(&dbmodels.ChatMessage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ChatMessage")
	}
	if err := DB.AutoMigrate(&dbmodels.SubmissionHistory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SubmissionHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.RejectReason{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RejectReason")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
