package dbmodels

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"talent-bridge-backend/models"
)

type Job struct {
	BaseModel
	EmployerID          string `gorm:"type:varchar(36);index"`
	Employer            *User  `gorm:"foreignKey:EmployerID"`
	Title               string `gorm:"type:varchar(255)"`
	Description         string
	MustHave            pq.StringArray `gorm:"type:text[]"`
	GoodToHave          pq.StringArray `gorm:"type:text[]"`
	SalaryMin           int
	SalaryMax           int
	PlacementFeePercent int
	Urgency             models.JobUrgency `gorm:"type:varchar(50)"`
	Location            string            `gorm:"type:varchar(255)"`
	Status              models.JobStatus  `gorm:"type:varchar(50);index"`
}

// JobExt строка списка вакансий со счетчиками по откликам
type JobExt struct {
	Job
	SubmissionCount int
	OfferCount      int
}

func (j Job) IsAllowSubmission() error {
	if j.Status != models.JobStatusPublished {
		return errors.New("вакансия не опубликована, отклики недоступны")
	}
	return nil
}

// PlacementFee комиссия за подбор от максимальной вилки
func (j Job) PlacementFee() int {
	return j.SalaryMax * j.PlacementFeePercent / 100
}
