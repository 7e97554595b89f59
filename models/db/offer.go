package dbmodels

import (
	"time"
)

type Offer struct {
	BaseModel
	SubmissionID string `gorm:"type:varchar(36);index"`
	JobID        string `gorm:"type:varchar(36);index"`
	AnnualSalary int
	StartDate    time.Time
	Notes        string
}
