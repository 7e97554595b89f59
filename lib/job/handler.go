package job

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	jobstore "talent-bridge-backend/lib/job/store"
	"talent-bridge-backend/models"
	jobapimodels "talent-bridge-backend/models/api/job"
	dbmodels "talent-bridge-backend/models/db"
)

type Provider interface {
	Create(employerID string, data jobapimodels.JobData) (*jobapimodels.JobView, error)
	Publish(employerID, jobID string) error
	Close(employerID, jobID string) error
	List(filter jobapimodels.JobFilter) ([]jobapimodels.JobView, error)
	GetByID(jobID string) (*jobapimodels.JobView, error)
}

var Instance Provider

func NewHandler(jobs jobstore.Provider) {
	Instance = &impl{
		jobs: jobs,
	}
}

type impl struct {
	jobs jobstore.Provider
}

func (i impl) Create(employerID string, data jobapimodels.JobData) (*jobapimodels.JobView, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	job := dbmodels.Job{
		EmployerID:          employerID,
		Title:               data.Title,
		Description:         data.Description,
		MustHave:            pq.StringArray(data.MustHave),
		GoodToHave:          pq.StringArray(data.GoodToHave),
		SalaryMin:           data.SalaryMin,
		SalaryMax:           data.SalaryMax,
		PlacementFeePercent: data.PlacementFeePercent,
		Urgency:             data.Urgency,
		Location:            data.Location,
		Status:              models.JobStatusDraft,
	}
	if err := i.jobs.Create(&job); err != nil {
		return nil, err
	}
	log.WithField("job_id", job.ID).Info("создана вакансия")
	result := jobapimodels.JobConvert(job)
	return &result, nil
}

func (i impl) Publish(employerID, jobID string) error {
	return i.setStatus(employerID, jobID, models.JobStatusPublished)
}

func (i impl) Close(employerID, jobID string) error {
	return i.setStatus(employerID, jobID, models.JobStatusClosed)
}

func (i impl) setStatus(employerID, jobID string, status models.JobStatus) error {
	job, err := i.jobs.GetByID(jobID)
	if err != nil {
		return err
	}
	if job.EmployerID != employerID {
		return errors.New("вакансия принадлежит другому работодателю")
	}
	if job.Status == status {
		return nil
	}
	job.Status = status
	if err = i.jobs.Update(job); err != nil {
		return err
	}
	log.WithField("job_id", job.ID).WithField("status", status).Info("изменен статус вакансии")
	return nil
}

func (i impl) List(filter jobapimodels.JobFilter) ([]jobapimodels.JobView, error) {
	jobs, err := i.jobs.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]jobapimodels.JobView, 0, len(jobs))
	for _, rec := range jobs {
		result = append(result, jobapimodels.JobConvertExt(rec))
	}
	return result, nil
}

func (i impl) GetByID(jobID string) (*jobapimodels.JobView, error) {
	job, err := i.jobs.GetExtByID(jobID)
	if err != nil {
		return nil, err
	}
	result := jobapimodels.JobConvertExt(*job)
	return &result, nil
}
