package submissionhistory

import (
	log "github.com/sirupsen/logrus"

	submissionhistorystore "talent-bridge-backend/lib/submission-history/store"
	submissionapimodels "talent-bridge-backend/models/api/submission"
	dbmodels "talent-bridge-backend/models/db"
)

type Provider interface {
	Log(rec *dbmodels.SubmissionHistory)
	List(submissionID string, filter submissionapimodels.HistoryFilter) ([]submissionapimodels.HistoryView, int64, error)
}

var Instance Provider

func NewHandler(store submissionhistorystore.Provider) {
	Instance = &impl{
		store: store,
	}
}

type impl struct {
	store submissionhistorystore.Provider
}

// Log ошибка записи истории не отменяет выполненное действие
func (i impl) Log(rec *dbmodels.SubmissionHistory) {
	if err := i.store.Create(rec); err != nil {
		log.WithError(err).
			WithField("submission_id", rec.SubmissionID).
			Error("Ошибка записи истории отклика")
	}
}

func (i impl) List(submissionID string, filter submissionapimodels.HistoryFilter) ([]submissionapimodels.HistoryView, int64, error) {
	page, limit := filter.GetPage()
	records, total, err := i.store.List(submissionID, filter.ActionType, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]submissionapimodels.HistoryView, 0, len(records))
	for _, rec := range records {
		result = append(result, submissionapimodels.HistoryConvert(rec))
	}
	return result, total, nil
}
