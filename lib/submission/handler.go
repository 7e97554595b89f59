package submission

import (
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	jobstore "talent-bridge-backend/lib/job/store"
	submissionhistory "talent-bridge-backend/lib/submission-history"
	submissionstore "talent-bridge-backend/lib/submission/store"
	initchecker "talent-bridge-backend/lib/utils/init-checker"
	"talent-bridge-backend/lib/utils/lock"
	"talent-bridge-backend/models"
	submissionapimodels "talent-bridge-backend/models/api/submission"
	dbmodels "talent-bridge-backend/models/db"
)

// Actor пользователь, выполняющий операцию. Роль передается явно
// вместе с каждым вызовом и определяет доступ и видимость контактов.
type Actor struct {
	ID   string
	Name string
	Role models.UserRole
}

type Notifier interface {
	SubmissionStatusChanged(recruiterID, recruiterEmail, submissionID, candidateName, jobTitle string, status models.SubmissionStatus)
	SubmissionRejected(recruiterEmail, candidateName, jobTitle string, reasons []string)
}

type Provider interface {
	Create(actor Actor, jobID string, data submissionapimodels.SubmissionData) (*submissionapimodels.SubmissionView, error)
	Board(actor Actor, jobID string, filter submissionapimodels.SubmissionFilter) (*submissionapimodels.BoardView, error)
	List(actor Actor, jobID string, filter submissionapimodels.SubmissionFilter) ([]submissionapimodels.SubmissionView, error)
	GetByID(actor Actor, submissionID string) (*submissionapimodels.SubmissionView, error)
	Advance(actor Actor, submissionID string, target models.SubmissionStatus) (*submissionapimodels.SubmissionView, error)
	ScheduleInterview(actor Actor, data submissionapimodels.InterviewData) (*submissionapimodels.InterviewView, error)
	MakeOffer(actor Actor, data submissionapimodels.OfferData) (*submissionapimodels.OfferView, error)
	Reject(actor Actor, submissionID string, data submissionapimodels.RejectionData) (*submissionapimodels.SubmissionView, error)
	Reorder(actor Actor, submissionID string, data submissionapimodels.ReorderData) error
}

var Instance Provider

func NewHandler(subs submissionstore.Provider, jobs jobstore.Provider,
	history submissionhistory.Provider, notifier Notifier) {
	instance := &impl{
		subs:     subs,
		jobs:     jobs,
		history:  history,
		notifier: notifier,
	}
	initchecker.CheckInit(
		"subs", instance.subs,
		"jobs", instance.jobs,
		"history", instance.history,
		"notifier", instance.notifier,
	)
	Instance = instance
}

type impl struct {
	subs     submissionstore.Provider
	jobs     jobstore.Provider
	history  submissionhistory.Provider
	notifier Notifier
}

func (i impl) Create(actor Actor, jobID string, data submissionapimodels.SubmissionData) (*submissionapimodels.SubmissionView, error) {
	if err := data.Validate(); err != nil {
		return nil, NewValidationError(err)
	}
	job, err := i.jobs.GetByID(jobID)
	if err != nil {
		return nil, NewStorageError(err)
	}
	if err = job.IsAllowSubmission(); err != nil {
		return nil, NewValidationError(err)
	}
	exist, err := i.subs.ExistActive(jobID, data.CandidateEmail)
	if err != nil {
		return nil, NewStorageError(err)
	}
	if exist {
		return nil, NewConflictError("кандидат уже предложен на эту вакансию")
	}
	sub := dbmodels.Submission{
		JobID:                 jobID,
		RecruiterID:           actor.ID,
		CandidateName:         data.CandidateName,
		CandidateEmail:        data.CandidateEmail,
		CandidatePhone:        data.CandidatePhone,
		ResumeURL:             data.ResumeURL,
		ResumeFileID:          data.ResumeFileID,
		ScreeningResponses:    data.ScreeningResponses,
		FitNotes:              data.FitNotes,
		InterviewAvailability: data.InterviewAvailability,
		Status:                models.SubmissionStatusSubmitted,
		SubmittedAt:           time.Now(),
		Version:               1,
	}
	if err = i.subs.Create(&sub); err != nil {
		return nil, NewStorageError(err)
	}
	i.history.Log(historyEntry(actor, sub.ID, sub.JobID, dbmodels.HistoryTypeAdded, dbmodels.SubmissionChanges{
		Description: "Кандидат предложен на вакансию",
	}))
	log.WithField("submission_id", sub.ID).WithField("job_id", jobID).Info("создан отклик")
	result := submissionapimodels.Convert(sub, actor.Role)
	return &result, nil
}

func (i impl) Board(actor Actor, jobID string, filter submissionapimodels.SubmissionFilter) (*submissionapimodels.BoardView, error) {
	subs, err := i.listForJob(actor, jobID, filter)
	if err != nil {
		return nil, err
	}
	board := GroupByStatus(jobID, subs, actor.Role)
	return &board, nil
}

func (i impl) List(actor Actor, jobID string, filter submissionapimodels.SubmissionFilter) ([]submissionapimodels.SubmissionView, error) {
	subs, err := i.listForJob(actor, jobID, filter)
	if err != nil {
		return nil, err
	}
	result := make([]submissionapimodels.SubmissionView, 0, len(subs))
	for _, rec := range subs {
		result = append(result, submissionapimodels.ConvertExt(rec, actor.Role))
	}
	return result, nil
}

func (i impl) listForJob(actor Actor, jobID string, filter submissionapimodels.SubmissionFilter) ([]dbmodels.SubmissionExt, error) {
	if err := filter.Validate(); err != nil {
		return nil, NewValidationError(err)
	}
	job, err := i.jobs.GetByID(jobID)
	if err != nil {
		return nil, NewStorageError(err)
	}
	if err = checkJobAccess(actor, job.EmployerID); err != nil {
		return nil, err
	}
	subs, err := i.subs.ListByJob(jobID)
	if err != nil {
		return nil, NewStorageError(err)
	}
	return FilterAndSort(subs, filter), nil
}

func (i impl) GetByID(actor Actor, submissionID string) (*submissionapimodels.SubmissionView, error) {
	sub, err := i.subs.GetByID(submissionID)
	if err != nil {
		return nil, NewStorageError(err)
	}
	if err = checkSubmissionAccess(actor, sub); err != nil {
		return nil, err
	}
	result := submissionapimodels.ConvertExt(*sub, actor.Role)
	return &result, nil
}

// Advance простой перевод по воронке. Этапы с обязательной записью
// принимаются только через назначение интервью, оффер или отклонение.
func (i impl) Advance(actor Actor, submissionID string, target models.SubmissionStatus) (*submissionapimodels.SubmissionView, error) {
	switch target {
	case models.SubmissionStatusInterviewing:
		return nil, NewValidationError(errors.New("для перехода на этап интервью необходимо назначить интервью"))
	case models.SubmissionStatusOffer:
		return nil, NewValidationError(errors.New("для перехода на этап оффера необходимо создать оффер"))
	case models.SubmissionStatusRejected:
		return nil, NewValidationError(errors.New("для отклонения необходимо указать причины"))
	}
	var result *submissionapimodels.SubmissionView
	err := i.withTransition(actor, submissionID, func(sub *dbmodels.SubmissionExt) error {
		if err := sub.IsAllowAdvance(target); err != nil {
			return NewValidationError(err)
		}
		previous := sub.Status
		if err := i.subs.AdvanceStatus(&sub.Submission, target); err != nil {
			return storeError(err)
		}
		i.logStageChange(actor, sub, previous)
		i.notifier.SubmissionStatusChanged(sub.RecruiterID, sub.RecruiterEmail, sub.ID, sub.CandidateName, sub.JobTitle, sub.Status)
		view := submissionapimodels.ConvertExt(*sub, actor.Role)
		result = &view
		return nil
	})
	return result, err
}

func (i impl) ScheduleInterview(actor Actor, data submissionapimodels.InterviewData) (*submissionapimodels.InterviewView, error) {
	if err := data.Validate(); err != nil {
		return nil, NewValidationError(err)
	}
	scheduledAt, _ := data.ScheduledAt()
	var result *submissionapimodels.InterviewView
	err := i.withTransition(actor, data.SubmissionID, func(sub *dbmodels.SubmissionExt) error {
		if err := sub.IsAllowAdvance(models.SubmissionStatusInterviewing); err != nil {
			return NewValidationError(err)
		}
		previous := sub.Status
		interview := dbmodels.Interview{
			SubmissionID:          sub.ID,
			JobID:                 sub.JobID,
			Format:                data.Format,
			ScheduledAt:           scheduledAt,
			Notes:                 data.Notes,
			CandidateAvailability: sub.InterviewAvailability,
		}
		if err := i.subs.AdvanceWithInterview(&sub.Submission, &interview); err != nil {
			return storeError(err)
		}
		i.logStageChange(actor, sub, previous)
		i.notifier.SubmissionStatusChanged(sub.RecruiterID, sub.RecruiterEmail, sub.ID, sub.CandidateName, sub.JobTitle, sub.Status)
		result = &submissionapimodels.InterviewView{
			ID:           interview.ID,
			SubmissionID: interview.SubmissionID,
			Format:       interview.Format,
			ScheduledAt:  interview.ScheduledAt,
			Notes:        interview.Notes,
		}
		return nil
	})
	return result, err
}

func (i impl) MakeOffer(actor Actor, data submissionapimodels.OfferData) (*submissionapimodels.OfferView, error) {
	if err := data.Validate(); err != nil {
		return nil, NewValidationError(err)
	}
	startDate, _ := data.StartDateTime()
	var result *submissionapimodels.OfferView
	err := i.withTransition(actor, data.SubmissionID, func(sub *dbmodels.SubmissionExt) error {
		if err := sub.IsAllowAdvance(models.SubmissionStatusOffer); err != nil {
			return NewValidationError(err)
		}
		previous := sub.Status
		offer := dbmodels.Offer{
			SubmissionID: sub.ID,
			JobID:        sub.JobID,
			AnnualSalary: data.AnnualSalary,
			StartDate:    startDate,
			Notes:        data.Notes,
		}
		if err := i.subs.AdvanceWithOffer(&sub.Submission, &offer); err != nil {
			return storeError(err)
		}
		i.logStageChange(actor, sub, previous)
		i.notifier.SubmissionStatusChanged(sub.RecruiterID, sub.RecruiterEmail, sub.ID, sub.CandidateName, sub.JobTitle, sub.Status)
		result = &submissionapimodels.OfferView{
			ID:           offer.ID,
			SubmissionID: offer.SubmissionID,
			AnnualSalary: offer.AnnualSalary,
			StartDate:    offer.StartDate,
			Notes:        offer.Notes,
		}
		return nil
	})
	return result, err
}

func (i impl) Reject(actor Actor, submissionID string, data submissionapimodels.RejectionData) (*submissionapimodels.SubmissionView, error) {
	if err := data.Validate(); err != nil {
		return nil, NewValidationError(err)
	}
	reasons := data.AllReasons()
	var result *submissionapimodels.SubmissionView
	err := i.withTransition(actor, submissionID, func(sub *dbmodels.SubmissionExt) error {
		if err := sub.IsAllowReject(); err != nil {
			return NewValidationError(err)
		}
		previous := sub.Status
		rejection := dbmodels.Rejection{
			SubmissionID: sub.ID,
			JobID:        sub.JobID,
			Reasons:      pq.StringArray(reasons),
		}
		if err := i.subs.RejectWithReasons(&sub.Submission, &rejection); err != nil {
			return storeError(err)
		}
		i.history.Log(historyEntry(actor, sub.ID, sub.JobID, dbmodels.HistoryTypeReject, dbmodels.SubmissionChanges{
			Description: "Кандидат отклонен",
			Data: []dbmodels.SubmissionChange{
				{Field: "status", OldValue: previous, NewValue: sub.Status},
				{Field: "reasons", NewValue: reasons},
			},
		}))
		i.notifier.SubmissionRejected(sub.RecruiterEmail, sub.CandidateName, sub.JobTitle, reasons)
		view := submissionapimodels.ConvertExt(*sub, actor.Role)
		result = &view
		return nil
	})
	return result, err
}

// Reorder меняет ручной порядок карточки внутри колонки,
// статус и версия отклика не затрагиваются
func (i impl) Reorder(actor Actor, submissionID string, data submissionapimodels.ReorderData) error {
	if err := data.Validate(); err != nil {
		return NewValidationError(err)
	}
	sub, err := i.subs.GetByID(submissionID)
	if err != nil {
		return NewStorageError(err)
	}
	if err = checkJobAccess(actor, sub.EmployerID); err != nil {
		return err
	}
	previous := sub.BoardOrder
	if err = i.subs.UpdateOrder(&sub.Submission, data.BoardOrder); err != nil {
		return NewStorageError(err)
	}
	i.history.Log(historyEntry(actor, sub.ID, sub.JobID, dbmodels.HistoryTypeReorder, dbmodels.SubmissionChanges{
		Description: "Изменен порядок в колонке",
		Data: []dbmodels.SubmissionChange{
			{Field: "board_order", OldValue: previous, NewValue: data.BoardOrder},
		},
	}))
	return nil
}

// withTransition загрузка отклика, проверка доступа и выполнение
// перехода под блокировкой: не более одного перехода на отклик
func (i impl) withTransition(actor Actor, submissionID string, transition func(sub *dbmodels.SubmissionExt) error) error {
	acquired, err := lock.TryWithLock(submissionID, func() error {
		sub, err := i.subs.GetByID(submissionID)
		if err != nil {
			return NewStorageError(err)
		}
		if err = checkJobAccess(actor, sub.EmployerID); err != nil {
			return err
		}
		return transition(sub)
	})
	if !acquired {
		return NewConflictError("переход по отклику уже выполняется, повторите запрос")
	}
	return err
}

func (i impl) logStageChange(actor Actor, sub *dbmodels.SubmissionExt, previous models.SubmissionStatus) {
	i.history.Log(historyEntry(actor, sub.ID, sub.JobID, dbmodels.HistoryTypeStageChange, dbmodels.SubmissionChanges{
		Description: "Кандидат переведен на этап " + sub.Status.ToHuman(),
		Data: []dbmodels.SubmissionChange{
			{Field: "status", OldValue: previous, NewValue: sub.Status},
		},
	}))
}

func checkJobAccess(actor Actor, employerID string) error {
	if actor.Role == models.AdminRole {
		return nil
	}
	if actor.Role == models.EmployerRole && actor.ID == employerID {
		return nil
	}
	return NewValidationError(errors.New("вакансия принадлежит другому работодателю"))
}

func checkSubmissionAccess(actor Actor, sub *dbmodels.SubmissionExt) error {
	if actor.Role == models.RecruiterRole && actor.ID == sub.RecruiterID {
		return nil
	}
	return checkJobAccess(actor, sub.EmployerID)
}

func historyEntry(actor Actor, submissionID, jobID string, action dbmodels.ActionType, changes dbmodels.SubmissionChanges) *dbmodels.SubmissionHistory {
	rec := &dbmodels.SubmissionHistory{
		SubmissionID: submissionID,
		JobID:        jobID,
		UserName:     actor.Name,
		ActionType:   action,
		Changes:      changes,
	}
	if actor.ID != "" {
		userID := actor.ID
		rec.UserID = &userID
	} else {
		rec.UserName = models.SystemUser
	}
	return rec
}

func storeError(err error) error {
	if errors.Is(err, submissionstore.ErrVersionConflict) {
		return &PipelineError{Kind: KindConflict, Err: err}
	}
	return NewStorageError(err)
}
