package submissionapimodels

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"talent-bridge-backend/models"
	dbmodels "talent-bridge-backend/models/db"
)

type SubmissionData struct {
	CandidateName         string `json:"candidate_name"`
	CandidateEmail        string `json:"candidate_email"`
	CandidatePhone        string `json:"candidate_phone"`
	ResumeURL             string `json:"resume_url"`
	ResumeFileID          string `json:"resume_file_id"`
	ScreeningResponses    string `json:"screening_responses"`
	FitNotes              string `json:"fit_notes"`
	InterviewAvailability string `json:"interview_availability"`
}

func (s SubmissionData) Validate() error {
	if strings.TrimSpace(s.CandidateName) == "" {
		return errors.New("не указано имя кандидата")
	}
	if strings.TrimSpace(s.CandidateEmail) == "" {
		return errors.New("не указан email кандидата")
	}
	if s.ResumeURL == "" && s.ResumeFileID == "" {
		return errors.New("не указано резюме кандидата")
	}
	if strings.TrimSpace(s.ScreeningResponses) == "" {
		return errors.New("не указаны ответы на отборочные вопросы")
	}
	return nil
}

type SubmissionView struct {
	ID                    string                  `json:"id"`
	JobID                 string                  `json:"job_id"`
	JobTitle              string                  `json:"job_title,omitempty"`
	CandidateName         string                  `json:"candidate_name"`
	CandidateEmail        string                  `json:"candidate_email,omitempty"`
	CandidatePhone        string                  `json:"candidate_phone,omitempty"`
	ResumeURL             string                  `json:"resume_url"`
	ResumeFileID          string                  `json:"resume_file_id,omitempty"`
	ScreeningResponses    string                  `json:"screening_responses"`
	FitNotes              string                  `json:"fit_notes"`
	InterviewAvailability string                  `json:"interview_availability"`
	Status                models.SubmissionStatus `json:"status"`
	StatusName            string                  `json:"status_name"`
	SubmittedAt           time.Time               `json:"submitted_at"`
	BoardOrder            int                     `json:"board_order"`
	Version               int                     `json:"version"`
	RecruiterName         string                  `json:"recruiter_name"`
	RecruiterEmail        string                  `json:"recruiter_email,omitempty"`
}

// Convert представление отклика для роли наблюдателя:
// контакты кандидата скрываются от работодателя (инвариант видимости)
func Convert(rec dbmodels.Submission, viewer models.UserRole) SubmissionView {
	result := SubmissionView{
		ID:                    rec.ID,
		JobID:                 rec.JobID,
		CandidateName:         rec.CandidateName,
		ResumeURL:             rec.ResumeURL,
		ResumeFileID:          rec.ResumeFileID,
		ScreeningResponses:    rec.ScreeningResponses,
		FitNotes:              rec.FitNotes,
		InterviewAvailability: rec.InterviewAvailability,
		Status:                rec.Status,
		StatusName:            rec.Status.ToHuman(),
		SubmittedAt:           rec.SubmittedAt,
		BoardOrder:            rec.BoardOrder,
		Version:               rec.Version,
	}
	if viewer.CanSeeContacts() {
		result.CandidateEmail = rec.CandidateEmail
		result.CandidatePhone = rec.CandidatePhone
	}
	if rec.Recruiter != nil {
		result.RecruiterName = rec.Recruiter.GetFullName()
		result.RecruiterEmail = rec.Recruiter.Email
	}
	if rec.Job != nil {
		result.JobTitle = rec.Job.Title
	}
	return result
}

func ConvertExt(rec dbmodels.SubmissionExt, viewer models.UserRole) SubmissionView {
	result := Convert(rec.Submission, viewer)
	if result.RecruiterName == "" {
		result.RecruiterName = strings.TrimSpace(fmt.Sprintf("%v %v", rec.RecruiterLastName, rec.RecruiterFirstName))
		result.RecruiterEmail = rec.RecruiterEmail
	}
	if result.JobTitle == "" {
		result.JobTitle = rec.JobTitle
	}
	return result
}

const (
	SortByName      = "name"
	SortByRecruiter = "recruiter"
	SortByDate      = "date"
)

type SubmissionFilter struct {
	Search string `json:"search"`  // подстрока по имени/email кандидата и ФИО рекрутера
	SortBy string `json:"sort_by"` // name/recruiter/date, по умолчанию date
}

func (f SubmissionFilter) Validate() error {
	switch f.SortBy {
	case "", SortByName, SortByRecruiter, SortByDate:
		return nil
	}
	return errors.Errorf("неизвестная сортировка %q", f.SortBy)
}

type StatusData struct {
	Status models.SubmissionStatus `json:"status"`
}

type ReorderData struct {
	BoardOrder int `json:"board_order"`
}

func (r ReorderData) Validate() error {
	if r.BoardOrder < 0 {
		return errors.New("недопустимый порядок в колонке")
	}
	return nil
}

// ColumnView колонка канбан-доски
type ColumnView struct {
	Status      models.SubmissionStatus `json:"status"`
	Title       string                  `json:"title"`
	Submissions []SubmissionView        `json:"submissions"`
}

type BoardView struct {
	JobID   string       `json:"job_id"`
	Total   int          `json:"total"`
	Columns []ColumnView `json:"columns"`
}
