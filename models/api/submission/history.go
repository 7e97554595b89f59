package submissionapimodels

import (
	"time"

	apimodels "talent-bridge-backend/models/api"
	dbmodels "talent-bridge-backend/models/db"
)

type HistoryFilter struct {
	apimodels.Pagination
	ActionType dbmodels.ActionType `json:"action_type"`
}

type HistoryView struct {
	ID         string                     `json:"id"`
	ActionType dbmodels.ActionType        `json:"action_type"`
	UserName   string                     `json:"user_name"`
	Date       time.Time                  `json:"date"`
	Changes    dbmodels.SubmissionChanges `json:"changes"`
}

func HistoryConvert(rec dbmodels.SubmissionHistory) HistoryView {
	return HistoryView{
		ID:         rec.ID,
		ActionType: rec.ActionType,
		UserName:   rec.UserName,
		Date:       rec.CreatedAt,
		Changes:    rec.Changes,
	}
}
