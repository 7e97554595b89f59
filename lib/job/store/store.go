package jobstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"talent-bridge-backend/models"
	jobapimodels "talent-bridge-backend/models/api/job"
	dbmodels "talent-bridge-backend/models/db"
)

type Provider interface {
	Create(job *dbmodels.Job) error
	GetByID(jobID string) (*dbmodels.Job, error)
	GetExtByID(jobID string) (*dbmodels.JobExt, error)
	List(filter jobapimodels.JobFilter) ([]dbmodels.JobExt, error)
	Update(job *dbmodels.Job) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		DB: DB,
	}
}

type impl struct {
	DB *gorm.DB
}

func (j impl) Create(job *dbmodels.Job) error {
	if err := j.DB.Create(job).Error; err != nil {
		return errors.Wrap(err, "ошибка создания вакансии")
	}
	return nil
}

func (j impl) GetByID(jobID string) (*dbmodels.Job, error) {
	job := dbmodels.Job{}
	if err := j.DB.Preload("Employer").First(&job, "id = ?", jobID).Error; err != nil {
		return nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	return &job, nil
}

func (j impl) GetExtByID(jobID string) (*dbmodels.JobExt, error) {
	job := dbmodels.JobExt{}
	err := j.extQuery().Where("jobs.id = ?", jobID).Take(&job).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	return &job, nil
}

func (j impl) List(filter jobapimodels.JobFilter) ([]dbmodels.JobExt, error) {
	var jobs []dbmodels.JobExt
	query := j.extQuery()
	if filter.EmployerID != "" {
		query = query.Where("jobs.employer_id = ?", filter.EmployerID)
	}
	if filter.OnlyOpen {
		query = query.Where("jobs.status = ?", models.JobStatusPublished)
	}
	if filter.Search != "" {
		query = query.Where("jobs.title ILIKE ?", "%"+filter.Search+"%")
	}
	if err := query.Order("jobs.created_at DESC").Find(&jobs).Error; err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка вакансий")
	}
	return jobs, nil
}

func (j impl) Update(job *dbmodels.Job) error {
	if err := j.DB.Save(job).Error; err != nil {
		return errors.Wrap(err, "ошибка обновления вакансии")
	}
	return nil
}

func (j impl) extQuery() *gorm.DB {
	return j.DB.Model(&dbmodels.Job{}).
		Select(`jobs.*,
			(SELECT count(*) FROM submissions s WHERE s.job_id = jobs.id) AS submission_count,
			(SELECT count(*) FROM submissions s WHERE s.job_id = jobs.id AND s.status = ?) AS offer_count`,
			models.SubmissionStatusOffer).
		Preload("Employer")
}
