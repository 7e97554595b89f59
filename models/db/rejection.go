package dbmodels

import (
	"github.com/lib/pq"
)

type Rejection struct {
	BaseModel
	SubmissionID string         `gorm:"type:varchar(36);index"`
	JobID        string         `gorm:"type:varchar(36);index"`
	Reasons      pq.StringArray `gorm:"type:text[]"`
}
