package dbmodels

import (
	"time"

	"github.com/pkg/errors"

	"talent-bridge-backend/models"
)

type Submission struct {
	BaseModel
	JobID       string `gorm:"type:varchar(36);index"`
	Job         *Job   `gorm:"foreignKey:JobID"`
	RecruiterID string `gorm:"type:varchar(36);index"`
	Recruiter   *User  `gorm:"foreignKey:RecruiterID"`

	CandidateName         string `gorm:"type:varchar(255)"`
	CandidateEmail        string `gorm:"type:varchar(255)"`
	CandidatePhone        string `gorm:"type:varchar(255)"`
	ResumeURL             string `gorm:"type:varchar(1024)"`
	ResumeFileID          string `gorm:"type:varchar(255)"` // ключ файла в s3, если резюме загружено
	ScreeningResponses    string
	FitNotes              string
	InterviewAvailability string

	Status      models.SubmissionStatus `gorm:"type:varchar(50);index"`
	SubmittedAt time.Time               `gorm:"index"`
	BoardOrder  int                     // ручной порядок внутри колонки, 0 - по дате отклика
	Version     int                     // монотонная версия для контроля конкурентных переходов
}

// IsAllowAdvance проверка перехода по графу воронки до обращения к БД
func (s Submission) IsAllowAdvance(target models.SubmissionStatus) error {
	if !target.IsValid() {
		return errors.New("неизвестный статус")
	}
	if target == models.SubmissionStatusSubmitted {
		return errors.New("возврат в начальный статус недоступен")
	}
	if s.Status.IsTerminal() {
		return errors.Errorf("кандидат в конечном статусе %s, переходы недоступны", s.Status.ToHuman())
	}
	if !s.Status.CanTransitionTo(target) {
		return errors.Errorf("переход %s -> %s недоступен", s.Status.ToHuman(), target.ToHuman())
	}
	return nil
}

func (s Submission) IsAllowReject() error {
	if s.Status == models.SubmissionStatusRejected {
		return errors.New("кандидат уже отклонен")
	}
	if s.Status == models.SubmissionStatusOffer {
		return errors.New("кандидату уже сделан оффер, отклонение недоступно")
	}
	return nil
}

// SubmissionExt отклик с данными вакансии и рекрутера
type SubmissionExt struct {
	Submission
	RecruiterFirstName string
	RecruiterLastName  string
	RecruiterEmail     string
	JobTitle           string
	EmployerID         string
}
