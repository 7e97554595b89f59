package submissionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"talent-bridge-backend/models"
	dbmodels "talent-bridge-backend/models/db"
)

// ErrVersionConflict версия отклика в БД не совпала с ожидаемой,
// статус уже изменен конкурентным запросом
var ErrVersionConflict = errors.New("отклик изменен другим пользователем, обновите данные")

type Provider interface {
	Create(sub *dbmodels.Submission) error
	GetByID(submissionID string) (*dbmodels.SubmissionExt, error)
	ListByJob(jobID string) ([]dbmodels.SubmissionExt, error)
	ExistActive(jobID, candidateEmail string) (bool, error)
	UpdateOrder(sub *dbmodels.Submission, boardOrder int) error
	AdvanceStatus(sub *dbmodels.Submission, target models.SubmissionStatus) error
	AdvanceWithInterview(sub *dbmodels.Submission, interview *dbmodels.Interview) error
	AdvanceWithOffer(sub *dbmodels.Submission, offer *dbmodels.Offer) error
	RejectWithReasons(sub *dbmodels.Submission, rejection *dbmodels.Rejection) error
	CountByStatus(jobID string) (map[models.SubmissionStatus]int, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		DB: DB,
	}
}

type impl struct {
	DB *gorm.DB
}

func (s impl) Create(sub *dbmodels.Submission) error {
	if err := s.DB.Create(sub).Error; err != nil {
		return errors.Wrap(err, "ошибка создания отклика")
	}
	return nil
}

func (s impl) GetByID(submissionID string) (*dbmodels.SubmissionExt, error) {
	sub := dbmodels.SubmissionExt{}
	err := s.extQuery().Where("submissions.id = ?", submissionID).Take(&sub).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения отклика")
	}
	return &sub, nil
}

func (s impl) ListByJob(jobID string) ([]dbmodels.SubmissionExt, error) {
	var subs []dbmodels.SubmissionExt
	err := s.extQuery().
		Where("submissions.job_id = ?", jobID).
		Order("submissions.submitted_at").
		Find(&subs).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения откликов вакансии")
	}
	return subs, nil
}

func (s impl) ExistActive(jobID, candidateEmail string) (bool, error) {
	var count int64
	err := s.DB.Model(&dbmodels.Submission{}).
		Where("job_id = ? AND lower(candidate_email) = lower(?) AND status <> ?",
			jobID, candidateEmail, models.SubmissionStatusRejected).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "ошибка проверки отклика")
	}
	return count > 0, nil
}

// UpdateOrder меняет только порядок в колонке, статус и версию не трогает
func (s impl) UpdateOrder(sub *dbmodels.Submission, boardOrder int) error {
	err := s.DB.Model(&dbmodels.Submission{}).
		Where("id = ?", sub.ID).
		Update("board_order", boardOrder).Error
	if err != nil {
		return errors.Wrap(err, "ошибка изменения порядка")
	}
	sub.BoardOrder = boardOrder
	return nil
}

func (s impl) AdvanceStatus(sub *dbmodels.Submission, target models.SubmissionStatus) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return advanceTx(tx, sub, target)
	})
}

// AdvanceWithInterview перевод в INTERVIEWING и запись об интервью
// в одной транзакции: либо оба изменения, либо ни одного
func (s impl) AdvanceWithInterview(sub *dbmodels.Submission, interview *dbmodels.Interview) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := advanceTx(tx, sub, models.SubmissionStatusInterviewing); err != nil {
			return err
		}
		if err := tx.Create(interview).Error; err != nil {
			return errors.Wrap(err, "ошибка создания интервью")
		}
		return nil
	})
}

func (s impl) AdvanceWithOffer(sub *dbmodels.Submission, offer *dbmodels.Offer) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := advanceTx(tx, sub, models.SubmissionStatusOffer); err != nil {
			return err
		}
		if err := tx.Create(offer).Error; err != nil {
			return errors.Wrap(err, "ошибка создания оффера")
		}
		return nil
	})
}

func (s impl) RejectWithReasons(sub *dbmodels.Submission, rejection *dbmodels.Rejection) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := advanceTx(tx, sub, models.SubmissionStatusRejected); err != nil {
			return err
		}
		if err := tx.Create(rejection).Error; err != nil {
			return errors.Wrap(err, "ошибка создания записи об отклонении")
		}
		return nil
	})
}

func (s impl) CountByStatus(jobID string) (map[models.SubmissionStatus]int, error) {
	var rows []struct {
		Status models.SubmissionStatus
		Count  int
	}
	err := s.DB.Model(&dbmodels.Submission{}).
		Select("status, count(*) AS count").
		Where("job_id = ?", jobID).
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета откликов")
	}
	result := make(map[models.SubmissionStatus]int, len(rows))
	for _, row := range rows {
		result[row.Status] = row.Count
	}
	return result, nil
}

// advanceTx условный UPDATE по версии: ноль затронутых строк означает,
// что статус успел измениться конкурентно
func advanceTx(tx *gorm.DB, sub *dbmodels.Submission, target models.SubmissionStatus) error {
	result := tx.Model(&dbmodels.Submission{}).
		Where("id = ? AND version = ?", sub.ID, sub.Version).
		Updates(map[string]interface{}{
			"status":      target,
			"version":     sub.Version + 1,
			"board_order": 0,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "ошибка смены статуса")
	}
	if result.RowsAffected == 0 {
		return ErrVersionConflict
	}
	sub.Status = target
	sub.Version++
	sub.BoardOrder = 0
	return nil
}

func (s impl) extQuery() *gorm.DB {
	return s.DB.Model(&dbmodels.Submission{}).
		Select(`submissions.*,
			u.first_name AS recruiter_first_name,
			u.last_name AS recruiter_last_name,
			u.email AS recruiter_email,
			j.title AS job_title,
			j.employer_id AS employer_id`).
		Joins("JOIN users u ON u.id = submissions.recruiter_id").
		Joins("JOIN jobs j ON j.id = submissions.job_id")
}
