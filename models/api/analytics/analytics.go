package analyticsapimodels

import (
	"talent-bridge-backend/models"
)

// StageCountView количество откликов на этапе воронки
type StageCountView struct {
	Status     models.SubmissionStatus `json:"status"`
	StatusName string                  `json:"status_name"`
	Count      int                     `json:"count"`
}

type JobFunnelView struct {
	JobID    string           `json:"job_id"`
	JobTitle string           `json:"job_title"`
	Total    int              `json:"total"`
	Stages   []StageCountView `json:"stages"`
}
