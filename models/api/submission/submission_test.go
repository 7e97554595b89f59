package submissionapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"talent-bridge-backend/models"
	dbmodels "talent-bridge-backend/models/db"
)

func TestConvertVisibility(t *testing.T) {
	rec := dbmodels.Submission{
		CandidateName:  "Иванов Петр",
		CandidateEmail: "ivanov@example.com",
		CandidatePhone: "+7 900 000-00-00",
		ResumeURL:      "https://example.com/resume.pdf",
		Status:         models.SubmissionStatusReviewing,
	}

	t.Run(`работодатель не видит контакты`, func(t *testing.T) {
		view := Convert(rec, models.EmployerRole)
		require.Empty(t, view.CandidateEmail)
		require.Empty(t, view.CandidatePhone)
		require.Equal(t, "Иванов Петр", view.CandidateName)
		require.Equal(t, "https://example.com/resume.pdf", view.ResumeURL)
	})

	t.Run(`рекрутер видит контакты`, func(t *testing.T) {
		view := Convert(rec, models.RecruiterRole)
		require.Equal(t, "ivanov@example.com", view.CandidateEmail)
		require.Equal(t, "+7 900 000-00-00", view.CandidatePhone)
	})

	t.Run(`администратор видит контакты`, func(t *testing.T) {
		view := Convert(rec, models.AdminRole)
		require.Equal(t, "ivanov@example.com", view.CandidateEmail)
	})
}

func TestRejectionData(t *testing.T) {
	t.Run(`пустые причины отбрасываются`, func(t *testing.T) {
		data := RejectionData{
			Reasons:      []string{" Недостаточно опыта ", "", "  "},
			CustomReason: " свой вариант ",
		}
		require.Equal(t, []string{"Недостаточно опыта", "свой вариант"}, data.AllReasons())
		require.NoError(t, data.Validate())
	})

	t.Run(`без причин`, func(t *testing.T) {
		data := RejectionData{Reasons: []string{"   "}}
		require.Error(t, data.Validate())
	})
}

func TestInterviewData(t *testing.T) {
	t.Run(`разбор даты и времени`, func(t *testing.T) {
		data := InterviewData{
			SubmissionID: "sub1",
			Format:       models.InterviewFormatInPerson,
			Date:         "2026-09-10",
			Time:         "14:30",
		}
		require.NoError(t, data.Validate())
		at, err := data.ScheduledAt()
		require.NoError(t, err)
		require.Equal(t, 14, at.Hour())
	})

	t.Run(`недопустимое время`, func(t *testing.T) {
		data := InterviewData{
			SubmissionID: "sub1",
			Format:       models.InterviewFormatVideo,
			Date:         "2026-09-10",
			Time:         "25:99",
		}
		require.Error(t, data.Validate())
	})
}
