package analytics

import (
	"bytes"

	"github.com/pkg/errors"

	xlsexport "talent-bridge-backend/lib/export/xls"
	jobstore "talent-bridge-backend/lib/job/store"
	"talent-bridge-backend/lib/submission"
	submissionstore "talent-bridge-backend/lib/submission/store"
	"talent-bridge-backend/models"
	analyticsapimodels "talent-bridge-backend/models/api/analytics"
	dbmodels "talent-bridge-backend/models/db"
)

type Provider interface {
	JobFunnel(actor submission.Actor, jobID string) (*analyticsapimodels.JobFunnelView, error)
	ExportBoard(actor submission.Actor, jobID string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler(subs submissionstore.Provider, jobs jobstore.Provider, exporter xlsexport.Provider) {
	Instance = &impl{
		subs:     subs,
		jobs:     jobs,
		exporter: exporter,
	}
}

type impl struct {
	subs     submissionstore.Provider
	jobs     jobstore.Provider
	exporter xlsexport.Provider
}

// JobFunnel распределение откликов по этапам, считается по данным БД
func (i impl) JobFunnel(actor submission.Actor, jobID string) (*analyticsapimodels.JobFunnelView, error) {
	job, err := i.getAllowedJob(actor, jobID)
	if err != nil {
		return nil, err
	}
	counts, err := i.subs.CountByStatus(jobID)
	if err != nil {
		return nil, err
	}
	result := analyticsapimodels.JobFunnelView{
		JobID:    jobID,
		JobTitle: job.Title,
		Stages:   make([]analyticsapimodels.StageCountView, 0, len(models.SubmissionStatuses)),
	}
	for _, status := range models.SubmissionStatuses {
		count := counts[status]
		result.Total += count
		result.Stages = append(result.Stages, analyticsapimodels.StageCountView{
			Status:     status,
			StatusName: status.ToHuman(),
			Count:      count,
		})
	}
	return &result, nil
}

func (i impl) ExportBoard(actor submission.Actor, jobID string) (*bytes.Buffer, error) {
	if _, err := i.getAllowedJob(actor, jobID); err != nil {
		return nil, err
	}
	subs, err := i.subs.ListByJob(jobID)
	if err != nil {
		return nil, err
	}
	return i.exporter.ExportSubmissionList(subs, actor.Role)
}

func (i impl) getAllowedJob(actor submission.Actor, jobID string) (*dbmodels.Job, error) {
	job, err := i.jobs.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.AdminRole &&
		!(actor.Role == models.EmployerRole && actor.ID == job.EmployerID) {
		return nil, errors.New("вакансия принадлежит другому работодателю")
	}
	return job, nil
}
