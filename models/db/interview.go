package dbmodels

import (
	"time"

	"talent-bridge-backend/models"
)

type Interview struct {
	BaseModel
	SubmissionID          string                 `gorm:"type:varchar(36);index"`
	JobID                 string                 `gorm:"type:varchar(36);index"`
	Format                models.InterviewFormat `gorm:"type:varchar(50)"`
	ScheduledAt           time.Time
	Notes                 string
	CandidateAvailability string
}
