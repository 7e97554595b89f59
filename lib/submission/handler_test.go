package submission

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	submissionstore "talent-bridge-backend/lib/submission/store"
	"talent-bridge-backend/models"
	jobapimodels "talent-bridge-backend/models/api/job"
	submissionapimodels "talent-bridge-backend/models/api/submission"
	dbmodels "talent-bridge-backend/models/db"
)

var (
	employer  = Actor{ID: "emp1", Name: "Работодатель", Role: models.EmployerRole}
	recruiter = Actor{ID: "rec1", Name: "Рекрутер", Role: models.RecruiterRole}
)

type fakeSubStore struct {
	mx          sync.Mutex
	subs        map[string]*dbmodels.SubmissionExt
	interviews  []dbmodels.Interview
	offers      []dbmodels.Offer
	rejections  []dbmodels.Rejection
	advanceErr  error
	existActive bool
	entered     chan struct{}
	blockOn     chan struct{}
}

func (f *fakeSubStore) Create(sub *dbmodels.Submission) error {
	f.mx.Lock()
	defer f.mx.Unlock()
	if sub.ID == "" {
		sub.ID = "generated"
	}
	f.subs[sub.ID] = &dbmodels.SubmissionExt{Submission: *sub, EmployerID: employer.ID}
	return nil
}

func (f *fakeSubStore) GetByID(submissionID string) (*dbmodels.SubmissionExt, error) {
	f.mx.Lock()
	defer f.mx.Unlock()
	stored, ok := f.subs[submissionID]
	if !ok {
		return nil, errors.New("отклик не найден")
	}
	cp := *stored
	return &cp, nil
}

func (f *fakeSubStore) ListByJob(jobID string) ([]dbmodels.SubmissionExt, error) {
	f.mx.Lock()
	defer f.mx.Unlock()
	var result []dbmodels.SubmissionExt
	for _, rec := range f.subs {
		if rec.JobID == jobID {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (f *fakeSubStore) ExistActive(jobID, candidateEmail string) (bool, error) {
	return f.existActive, nil
}

func (f *fakeSubStore) UpdateOrder(sub *dbmodels.Submission, boardOrder int) error {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.subs[sub.ID].BoardOrder = boardOrder
	sub.BoardOrder = boardOrder
	return nil
}

func (f *fakeSubStore) advance(sub *dbmodels.Submission, target models.SubmissionStatus) error {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.blockOn != nil {
		<-f.blockOn
	}
	if f.advanceErr != nil {
		return f.advanceErr
	}
	f.mx.Lock()
	defer f.mx.Unlock()
	stored := f.subs[sub.ID]
	if stored.Version != sub.Version {
		return submissionstore.ErrVersionConflict
	}
	stored.Status = target
	stored.Version++
	stored.BoardOrder = 0
	sub.Status = target
	sub.Version++
	sub.BoardOrder = 0
	return nil
}

func (f *fakeSubStore) AdvanceStatus(sub *dbmodels.Submission, target models.SubmissionStatus) error {
	return f.advance(sub, target)
}

func (f *fakeSubStore) AdvanceWithInterview(sub *dbmodels.Submission, interview *dbmodels.Interview) error {
	if err := f.advance(sub, models.SubmissionStatusInterviewing); err != nil {
		return err
	}
	f.mx.Lock()
	defer f.mx.Unlock()
	f.interviews = append(f.interviews, *interview)
	return nil
}

func (f *fakeSubStore) AdvanceWithOffer(sub *dbmodels.Submission, offer *dbmodels.Offer) error {
	if err := f.advance(sub, models.SubmissionStatusOffer); err != nil {
		return err
	}
	f.mx.Lock()
	defer f.mx.Unlock()
	f.offers = append(f.offers, *offer)
	return nil
}

func (f *fakeSubStore) RejectWithReasons(sub *dbmodels.Submission, rejection *dbmodels.Rejection) error {
	if err := f.advance(sub, models.SubmissionStatusRejected); err != nil {
		return err
	}
	f.mx.Lock()
	defer f.mx.Unlock()
	f.rejections = append(f.rejections, *rejection)
	return nil
}

func (f *fakeSubStore) CountByStatus(jobID string) (map[models.SubmissionStatus]int, error) {
	f.mx.Lock()
	defer f.mx.Unlock()
	result := map[models.SubmissionStatus]int{}
	for _, rec := range f.subs {
		if rec.JobID == jobID {
			result[rec.Status]++
		}
	}
	return result, nil
}

type fakeJobStore struct {
	jobs map[string]*dbmodels.Job
}

func (f *fakeJobStore) Create(job *dbmodels.Job) error { return nil }
func (f *fakeJobStore) GetByID(jobID string) (*dbmodels.Job, error) {
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, errors.New("вакансия не найдена")
	}
	return job, nil
}
func (f *fakeJobStore) GetExtByID(jobID string) (*dbmodels.JobExt, error) { return nil, nil }
func (f *fakeJobStore) List(filter jobapimodels.JobFilter) ([]dbmodels.JobExt, error) {
	return nil, nil
}
func (f *fakeJobStore) Update(job *dbmodels.Job) error { return nil }

type fakeHistory struct {
	mx      sync.Mutex
	entries []*dbmodels.SubmissionHistory
}

func (f *fakeHistory) Log(rec *dbmodels.SubmissionHistory) {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.entries = append(f.entries, rec)
}

func (f *fakeHistory) List(submissionID string, filter submissionapimodels.HistoryFilter) ([]submissionapimodels.HistoryView, int64, error) {
	return nil, 0, nil
}

type fakeNotifier struct {
	mx            sync.Mutex
	statusChanges []models.SubmissionStatus
	rejections    [][]string
}

func (f *fakeNotifier) SubmissionStatusChanged(recruiterID, recruiterEmail, submissionID, candidateName, jobTitle string, status models.SubmissionStatus) {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.statusChanges = append(f.statusChanges, status)
}

func (f *fakeNotifier) SubmissionRejected(recruiterEmail, candidateName, jobTitle string, reasons []string) {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.rejections = append(f.rejections, reasons)
}

type env struct {
	subs     *fakeSubStore
	jobs     *fakeJobStore
	history  *fakeHistory
	notifier *fakeNotifier
	handler  impl
}

func newEnv(status models.SubmissionStatus) *env {
	job := &dbmodels.Job{
		EmployerID: employer.ID,
		Title:      "Go разработчик",
		SalaryMin:  200000,
		SalaryMax:  300000,
		Status:     models.JobStatusPublished,
	}
	job.ID = "job1"
	sub := &dbmodels.SubmissionExt{
		Submission: dbmodels.Submission{
			JobID:          "job1",
			RecruiterID:    recruiter.ID,
			CandidateName:  "Иванов Петр",
			CandidateEmail: "ivanov@example.com",
			Status:         status,
			SubmittedAt:    time.Now(),
			Version:        1,
		},
		RecruiterEmail: "recruiter@example.com",
		JobTitle:       job.Title,
		EmployerID:     employer.ID,
	}
	sub.ID = "sub1"
	e := &env{
		subs:     &fakeSubStore{subs: map[string]*dbmodels.SubmissionExt{"sub1": sub}},
		jobs:     &fakeJobStore{jobs: map[string]*dbmodels.Job{"job1": job}},
		history:  &fakeHistory{},
		notifier: &fakeNotifier{},
	}
	e.handler = impl{subs: e.subs, jobs: e.jobs, history: e.history, notifier: e.notifier}
	return e
}

func TestAdvance(t *testing.T) {
	t.Run(`перевод в рассмотрение`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusSubmitted)
		resp, err := e.handler.Advance(employer, "sub1", models.SubmissionStatusReviewing)
		require.NoError(t, err)
		require.Equal(t, models.SubmissionStatusReviewing, resp.Status)
		require.Equal(t, 2, resp.Version)
		require.Equal(t, models.SubmissionStatusReviewing, e.subs.subs["sub1"].Status)
		require.Len(t, e.history.entries, 1)
		require.Equal(t, dbmodels.HistoryTypeStageChange, e.history.entries[0].ActionType)
		require.Equal(t, []models.SubmissionStatus{models.SubmissionStatusReviewing}, e.notifier.statusChanges)
	})

	t.Run(`этап интервью только через назначение интервью`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusReviewing)
		_, err := e.handler.Advance(employer, "sub1", models.SubmissionStatusInterviewing)
		require.Error(t, err)
		require.Equal(t, KindValidation, KindOf(err))
		require.Equal(t, models.SubmissionStatusReviewing, e.subs.subs["sub1"].Status)
	})

	t.Run(`переход из конечного статуса`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusOffer)
		_, err := e.handler.Advance(employer, "sub1", models.SubmissionStatusReviewing)
		require.Error(t, err)
		require.Equal(t, KindValidation, KindOf(err))
	})

	t.Run(`конфликт версий`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusSubmitted)
		e.subs.advanceErr = submissionstore.ErrVersionConflict
		_, err := e.handler.Advance(employer, "sub1", models.SubmissionStatusReviewing)
		require.Error(t, err)
		require.Equal(t, KindConflict, KindOf(err))
	})

	t.Run(`ошибка хранилища без следов в истории`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusSubmitted)
		e.subs.advanceErr = errors.New("соединение разорвано")
		_, err := e.handler.Advance(employer, "sub1", models.SubmissionStatusReviewing)
		require.Error(t, err)
		require.Equal(t, KindStorage, KindOf(err))
		require.Equal(t, models.SubmissionStatusSubmitted, e.subs.subs["sub1"].Status)
		require.Equal(t, 1, e.subs.subs["sub1"].Version)
		require.Empty(t, e.history.entries)
		require.Empty(t, e.notifier.statusChanges)
	})

	t.Run(`чужая вакансия`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusSubmitted)
		other := Actor{ID: "emp2", Name: "Другой", Role: models.EmployerRole}
		_, err := e.handler.Advance(other, "sub1", models.SubmissionStatusReviewing)
		require.Error(t, err)
		require.Equal(t, KindValidation, KindOf(err))
	})

	t.Run(`администратору переход доступен`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusSubmitted)
		admin := Actor{ID: "adm1", Name: "Администратор", Role: models.AdminRole}
		resp, err := e.handler.Advance(admin, "sub1", models.SubmissionStatusReviewing)
		require.NoError(t, err)
		require.Equal(t, models.SubmissionStatusReviewing, resp.Status)
	})
}

func TestScheduleInterview(t *testing.T) {
	data := submissionapimodels.InterviewData{
		SubmissionID: "sub1",
		Format:       models.InterviewFormatVideo,
		Date:         "2026-09-10",
		Time:         "14:30",
		Notes:        "созвон с тимлидом",
	}

	t.Run(`интервью и смена этапа вместе`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusReviewing)
		resp, err := e.handler.ScheduleInterview(employer, data)
		require.NoError(t, err)
		require.Equal(t, models.InterviewFormatVideo, resp.Format)
		require.Equal(t, time.Date(2026, 9, 10, 14, 30, 0, 0, time.UTC), resp.ScheduledAt)
		require.Len(t, e.subs.interviews, 1)
		require.Equal(t, models.SubmissionStatusInterviewing, e.subs.subs["sub1"].Status)
		require.Len(t, e.history.entries, 1)
	})

	t.Run(`из начального статуса интервью недоступно`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusSubmitted)
		_, err := e.handler.ScheduleInterview(employer, data)
		require.Error(t, err)
		require.Equal(t, KindValidation, KindOf(err))
		require.Empty(t, e.subs.interviews)
	})

	t.Run(`ошибка хранилища не оставляет интервью`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusReviewing)
		e.subs.advanceErr = errors.New("соединение разорвано")
		_, err := e.handler.ScheduleInterview(employer, data)
		require.Error(t, err)
		require.Equal(t, KindStorage, KindOf(err))
		require.Empty(t, e.subs.interviews)
		require.Equal(t, models.SubmissionStatusReviewing, e.subs.subs["sub1"].Status)
	})

	t.Run(`недопустимый формат`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusReviewing)
		bad := data
		bad.Format = models.InterviewFormat("phone")
		_, err := e.handler.ScheduleInterview(employer, bad)
		require.Error(t, err)
		require.Equal(t, KindValidation, KindOf(err))
	})
}

func TestMakeOffer(t *testing.T) {
	data := submissionapimodels.OfferData{
		SubmissionID: "sub1",
		AnnualSalary: 3600000,
		StartDate:    "2026-10-01",
	}

	t.Run(`оффер и смена этапа вместе`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusInterviewing)
		resp, err := e.handler.MakeOffer(employer, data)
		require.NoError(t, err)
		require.Equal(t, 3600000, resp.AnnualSalary)
		require.Len(t, e.subs.offers, 1)
		require.Equal(t, models.SubmissionStatusOffer, e.subs.subs["sub1"].Status)
	})

	t.Run(`оффер без интервью недоступен`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusReviewing)
		_, err := e.handler.MakeOffer(employer, data)
		require.Error(t, err)
		require.Equal(t, KindValidation, KindOf(err))
		require.Empty(t, e.subs.offers)
	})
}

func TestReject(t *testing.T) {
	t.Run(`отклонение с причинами из справочника и своей`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusReviewing)
		resp, err := e.handler.Reject(employer, "sub1", submissionapimodels.RejectionData{
			Reasons:      []string{"Недостаточно опыта"},
			CustomReason: "не готов к графику",
		})
		require.NoError(t, err)
		require.Equal(t, models.SubmissionStatusRejected, resp.Status)
		require.Len(t, e.subs.rejections, 1)
		require.Equal(t, []string{"Недостаточно опыта", "не готов к графику"}, []string(e.subs.rejections[0].Reasons))
		require.Equal(t, [][]string{{"Недостаточно опыта", "не готов к графику"}}, e.notifier.rejections)
		require.Len(t, e.history.entries, 1)
		require.Equal(t, dbmodels.HistoryTypeReject, e.history.entries[0].ActionType)
	})

	t.Run(`отклонение доступно с любого неконечного этапа`, func(t *testing.T) {
		for _, status := range []models.SubmissionStatus{
			models.SubmissionStatusSubmitted,
			models.SubmissionStatusReviewing,
			models.SubmissionStatusInterviewing,
		} {
			e := newEnv(status)
			_, err := e.handler.Reject(employer, "sub1", submissionapimodels.RejectionData{
				Reasons: []string{"Принят другой кандидат"},
			})
			require.NoError(t, err, "отклонение с этапа %s", status)
		}
	})

	t.Run(`без причин отклонение невозможно`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusReviewing)
		_, err := e.handler.Reject(employer, "sub1", submissionapimodels.RejectionData{
			Reasons:      []string{"  "},
			CustomReason: "",
		})
		require.Error(t, err)
		require.Equal(t, KindValidation, KindOf(err))
	})

	t.Run(`повторное отклонение`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusRejected)
		_, err := e.handler.Reject(employer, "sub1", submissionapimodels.RejectionData{
			Reasons: []string{"Недостаточно опыта"},
		})
		require.Error(t, err)
		require.Equal(t, KindValidation, KindOf(err))
	})
}

func TestReorder(t *testing.T) {
	t.Run(`порядок меняется, статус и версия нет`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusReviewing)
		err := e.handler.Reorder(employer, "sub1", submissionapimodels.ReorderData{BoardOrder: 3})
		require.NoError(t, err)
		stored := e.subs.subs["sub1"]
		require.Equal(t, 3, stored.BoardOrder)
		require.Equal(t, models.SubmissionStatusReviewing, stored.Status)
		require.Equal(t, 1, stored.Version)
		require.Len(t, e.history.entries, 1)
		require.Equal(t, dbmodels.HistoryTypeReorder, e.history.entries[0].ActionType)
	})

	t.Run(`отрицательный порядок`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusReviewing)
		err := e.handler.Reorder(employer, "sub1", submissionapimodels.ReorderData{BoardOrder: -1})
		require.Error(t, err)
		require.Equal(t, KindValidation, KindOf(err))
	})
}

func TestCreateSubmission(t *testing.T) {
	data := submissionapimodels.SubmissionData{
		CandidateName:      "Сидорова Мария",
		CandidateEmail:     "sidorova@example.com",
		ResumeURL:          "https://example.com/resume.pdf",
		ScreeningResponses: "опыт Go 5 лет",
	}

	t.Run(`создание отклика`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusSubmitted)
		resp, err := e.handler.Create(recruiter, "job1", data)
		require.NoError(t, err)
		require.Equal(t, models.SubmissionStatusSubmitted, resp.Status)
		require.Equal(t, 1, resp.Version)
		require.Equal(t, "sidorova@example.com", resp.CandidateEmail)
		require.Len(t, e.history.entries, 1)
		require.Equal(t, dbmodels.HistoryTypeAdded, e.history.entries[0].ActionType)
	})

	t.Run(`повторный отклик по кандидату`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusSubmitted)
		e.subs.existActive = true
		_, err := e.handler.Create(recruiter, "job1", data)
		require.Error(t, err)
		require.Equal(t, KindConflict, KindOf(err))
	})

	t.Run(`вакансия не опубликована`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusSubmitted)
		e.jobs.jobs["job1"].Status = models.JobStatusDraft
		_, err := e.handler.Create(recruiter, "job1", data)
		require.Error(t, err)
		require.Equal(t, KindValidation, KindOf(err))
	})

	t.Run(`неполные данные`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusSubmitted)
		bad := data
		bad.ResumeURL = ""
		_, err := e.handler.Create(recruiter, "job1", bad)
		require.Error(t, err)
		require.Equal(t, KindValidation, KindOf(err))
	})
}

func TestConcurrentTransition(t *testing.T) {
	t.Run(`не более одного перехода на отклик`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusSubmitted)
		e.subs.entered = make(chan struct{}, 1)
		e.subs.blockOn = make(chan struct{})

		done := make(chan error, 1)
		go func() {
			_, err := e.handler.Advance(employer, "sub1", models.SubmissionStatusReviewing)
			done <- err
		}()

		<-e.subs.entered
		_, err := e.handler.Advance(employer, "sub1", models.SubmissionStatusReviewing)
		require.Error(t, err)
		require.Equal(t, KindConflict, KindOf(err))

		close(e.subs.blockOn)
		require.NoError(t, <-done)
		require.Equal(t, models.SubmissionStatusReviewing, e.subs.subs["sub1"].Status)
	})
}

func TestBoardVisibility(t *testing.T) {
	t.Run(`работодатель не видит контакты на доске`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusSubmitted)
		board, err := e.handler.Board(employer, "job1", submissionapimodels.SubmissionFilter{})
		require.NoError(t, err)
		found := false
		for _, column := range board.Columns {
			for _, view := range column.Submissions {
				found = true
				require.Empty(t, view.CandidateEmail)
				require.Empty(t, view.CandidatePhone)
			}
		}
		require.True(t, found)
	})

	t.Run(`рекрутер не видит чужую доску`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusSubmitted)
		_, err := e.handler.Board(recruiter, "job1", submissionapimodels.SubmissionFilter{})
		require.Error(t, err)
	})

	t.Run(`неизвестная сортировка`, func(t *testing.T) {
		e := newEnv(models.SubmissionStatusSubmitted)
		_, err := e.handler.Board(employer, "job1", submissionapimodels.SubmissionFilter{SortBy: "salary"})
		require.Error(t, err)
		require.Equal(t, KindValidation, KindOf(err))
	})
}
