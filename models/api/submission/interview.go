package submissionapimodels

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"talent-bridge-backend/models"
)

type InterviewData struct {
	SubmissionID string                 `json:"submission_id"`
	Format       models.InterviewFormat `json:"format"` // video/in-person
	Date         string                 `json:"date"`   // 2006-01-02
	Time         string                 `json:"time"`   // 15:04
	Notes        string                 `json:"notes"`
}

func (d InterviewData) Validate() error {
	if d.SubmissionID == "" {
		return errors.New("не указан идентификатор отклика")
	}
	if !d.Format.IsValid() {
		return errors.New("не указан формат интервью")
	}
	if d.Date == "" || d.Time == "" {
		return errors.New("не указаны дата и время интервью")
	}
	if _, err := d.ScheduledAt(); err != nil {
		return errors.New("недопустимые дата или время интервью")
	}
	return nil
}

func (d InterviewData) ScheduledAt() (time.Time, error) {
	return time.Parse("2006-01-02T15:04", fmt.Sprintf("%sT%s", d.Date, d.Time))
}

type InterviewView struct {
	ID           string                 `json:"id"`
	SubmissionID string                 `json:"submission_id"`
	Format       models.InterviewFormat `json:"format"`
	ScheduledAt  time.Time              `json:"scheduled_at"`
	Notes        string                 `json:"notes"`
}
