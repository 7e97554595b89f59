package submissionapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type OfferData struct {
	SubmissionID string `json:"submission_id"`
	AnnualSalary int    `json:"annual_salary"`
	StartDate    string `json:"start_date"` // 2006-01-02
	Notes        string `json:"notes"`
}

func (d OfferData) Validate() error {
	if d.SubmissionID == "" {
		return errors.New("не указан идентификатор отклика")
	}
	if d.AnnualSalary <= 0 {
		return errors.New("не указана годовая зарплата")
	}
	if d.StartDate == "" {
		return errors.New("не указана дата выхода")
	}
	if _, err := d.StartDateTime(); err != nil {
		return errors.New("недопустимая дата выхода")
	}
	return nil
}

func (d OfferData) StartDateTime() (time.Time, error) {
	return time.Parse("2006-01-02", d.StartDate)
}

type OfferView struct {
	ID           string    `json:"id"`
	SubmissionID string    `json:"submission_id"`
	AnnualSalary int       `json:"annual_salary"`
	StartDate    time.Time `json:"start_date"`
	Notes        string    `json:"notes"`
}
