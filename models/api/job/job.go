package jobapimodels

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"talent-bridge-backend/models"
	dbmodels "talent-bridge-backend/models/db"
)

type JobData struct {
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	MustHave            []string          `json:"must_have_requirements"`
	GoodToHave          []string          `json:"good_to_have_requirements"`
	SalaryMin           int               `json:"salary_min"`
	SalaryMax           int               `json:"salary_max"`
	PlacementFeePercent int               `json:"placement_fee_percent"`
	Urgency             models.JobUrgency `json:"urgency"`
	Location            string            `json:"location"`
}

func (j JobData) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return errors.New("не указано название вакансии")
	}
	if j.SalaryMin <= 0 || j.SalaryMax <= 0 {
		return errors.New("не указана зарплатная вилка")
	}
	if j.SalaryMin > j.SalaryMax {
		return errors.New("минимальная зарплата больше максимальной")
	}
	if j.PlacementFeePercent <= 0 || j.PlacementFeePercent > 100 {
		return errors.New("недопустимый процент комиссии")
	}
	if len(j.MustHave) == 0 {
		return errors.New("не указаны обязательные требования")
	}
	return nil
}

type JobView struct {
	ID                  string            `json:"id"`
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	MustHave            []string          `json:"must_have_requirements"`
	GoodToHave          []string          `json:"good_to_have_requirements"`
	SalaryMin           int               `json:"salary_min"`
	SalaryMax           int               `json:"salary_max"`
	PlacementFeePercent int               `json:"placement_fee_percent"`
	Urgency             models.JobUrgency `json:"urgency"`
	Location            string            `json:"location"`
	Status              models.JobStatus  `json:"status"`
	StatusName          string            `json:"status_name"`
	EmployerCompany     string            `json:"employer_company,omitempty"`
	SubmissionCount     int               `json:"submission_count"`
	OfferCount          int               `json:"offer_count"`
	Fee                 FeeView           `json:"fee"`
}

// FeeView расчет комиссии: процент от максимальной вилки,
// доля рекрутера и площадки
type FeeView struct {
	Total          int `json:"total"`
	RecruiterShare int `json:"recruiter_share"`
	PlatformShare  int `json:"platform_share"`
}

func FeeConvert(rec dbmodels.Job) FeeView {
	total := rec.PlacementFee()
	recruiterShare := int(math.Round(float64(total) * models.RecruiterFeeShare))
	return FeeView{
		Total:          total,
		RecruiterShare: recruiterShare,
		PlatformShare:  total - recruiterShare,
	}
}

func JobConvert(rec dbmodels.Job) JobView {
	result := JobView{
		ID:                  rec.ID,
		Title:               rec.Title,
		Description:         rec.Description,
		MustHave:            rec.MustHave,
		GoodToHave:          rec.GoodToHave,
		SalaryMin:           rec.SalaryMin,
		SalaryMax:           rec.SalaryMax,
		PlacementFeePercent: rec.PlacementFeePercent,
		Urgency:             rec.Urgency,
		Location:            rec.Location,
		Status:              rec.Status,
		StatusName:          rec.Status.ToHuman(),
		Fee:                 FeeConvert(rec),
	}
	if rec.Employer != nil {
		result.EmployerCompany = rec.Employer.CompanyName
	}
	return result
}

func JobConvertExt(rec dbmodels.JobExt) JobView {
	result := JobConvert(rec.Job)
	result.SubmissionCount = rec.SubmissionCount
	result.OfferCount = rec.OfferCount
	return result
}

type JobFilter struct {
	Search     string `json:"search"`
	OnlyOpen   bool   `json:"only_open"`
	EmployerID string `json:"-"`
}
