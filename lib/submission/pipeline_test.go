package submission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"talent-bridge-backend/models"
	submissionapimodels "talent-bridge-backend/models/api/submission"
	dbmodels "talent-bridge-backend/models/db"
)

func testSub(id, name, email, recruiterLastName string, status models.SubmissionStatus, order int, submitted time.Time) dbmodels.SubmissionExt {
	rec := dbmodels.SubmissionExt{
		Submission: dbmodels.Submission{
			CandidateName:  name,
			CandidateEmail: email,
			Status:         status,
			BoardOrder:     order,
			SubmittedAt:    submitted,
		},
		RecruiterLastName:  recruiterLastName,
		RecruiterFirstName: "Анна",
		RecruiterEmail:     "recruiter@example.com",
	}
	rec.ID = id
	return rec
}

func TestGroupByStatus(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	recs := []dbmodels.SubmissionExt{
		testSub("s1", "Иванов Петр", "ivanov@example.com", "Смирнова", models.SubmissionStatusSubmitted, 0, base),
		testSub("s2", "Сидорова Мария", "sidorova@example.com", "Смирнова", models.SubmissionStatusSubmitted, 0, base.Add(time.Hour)),
		testSub("s3", "Козлов Андрей", "kozlov@example.com", "Волкова", models.SubmissionStatusReviewing, 0, base.Add(2*time.Hour)),
		testSub("s4", "Новикова Ольга", "novikova@example.com", "Волкова", models.SubmissionStatusOffer, 0, base.Add(3*time.Hour)),
	}

	t.Run(`все колонки присутствуют, даже пустые`, func(t *testing.T) {
		board := GroupByStatus("job1", recs, models.RecruiterRole)
		require.Len(t, board.Columns, len(models.SubmissionStatuses))
		for idx, status := range models.SubmissionStatuses {
			require.Equal(t, status, board.Columns[idx].Status)
		}
		require.Empty(t, board.Columns[2].Submissions) // INTERVIEWING
		require.Empty(t, board.Columns[4].Submissions) // REJECTED
	})

	t.Run(`каждый отклик ровно в одной колонке`, func(t *testing.T) {
		board := GroupByStatus("job1", recs, models.RecruiterRole)
		seen := map[string]int{}
		total := 0
		for _, column := range board.Columns {
			for _, view := range column.Submissions {
				seen[view.ID]++
				total++
			}
		}
		require.Equal(t, len(recs), total)
		require.Equal(t, len(recs), board.Total)
		for id, count := range seen {
			require.Equal(t, 1, count, "отклик %s попал в несколько колонок", id)
		}
	})

	t.Run(`порядок в колонке: ручной, затем по дате`, func(t *testing.T) {
		column := []dbmodels.SubmissionExt{
			testSub("a", "А", "a@example.com", "Смирнова", models.SubmissionStatusSubmitted, 2, base),
			testSub("b", "Б", "b@example.com", "Смирнова", models.SubmissionStatusSubmitted, 1, base.Add(time.Hour)),
			testSub("c", "В", "c@example.com", "Смирнова", models.SubmissionStatusSubmitted, 1, base),
		}
		board := GroupByStatus("job1", column, models.RecruiterRole)
		got := board.Columns[0].Submissions
		require.Equal(t, "c", got[0].ID)
		require.Equal(t, "b", got[1].ID)
		require.Equal(t, "a", got[2].ID)
	})

	t.Run(`неизвестный этап не попадает на доску и в Total`, func(t *testing.T) {
		dirty := append([]dbmodels.SubmissionExt{}, recs...)
		dirty = append(dirty, testSub("s5", "Призрак", "ghost@example.com", "Смирнова", "GHOST", 0, base))
		board := GroupByStatus("job1", dirty, models.RecruiterRole)
		placed := 0
		for _, column := range board.Columns {
			placed += len(column.Submissions)
		}
		require.Equal(t, len(recs), board.Total)
		require.Equal(t, board.Total, placed)
	})

	t.Run(`повторная группировка дает тот же результат`, func(t *testing.T) {
		first := GroupByStatus("job1", recs, models.RecruiterRole)
		second := GroupByStatus("job1", recs, models.RecruiterRole)
		require.Equal(t, first, second)
	})

	t.Run(`контакты скрыты от работодателя`, func(t *testing.T) {
		board := GroupByStatus("job1", recs, models.EmployerRole)
		for _, column := range board.Columns {
			for _, view := range column.Submissions {
				require.Empty(t, view.CandidateEmail)
				require.Empty(t, view.CandidatePhone)
				require.NotEmpty(t, view.CandidateName)
			}
		}
	})
}

func TestFilterAndSort(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	recs := []dbmodels.SubmissionExt{
		testSub("s1", "Иванов Петр", "ivanov@example.com", "Смирнова", models.SubmissionStatusSubmitted, 0, base),
		testSub("s2", "Сидорова Мария", "sidorova@example.com", "Волкова", models.SubmissionStatusReviewing, 0, base.Add(time.Hour)),
		testSub("s3", "Козлов Андрей", "kozlov@example.com", "Смирнова", models.SubmissionStatusSubmitted, 0, base.Add(2*time.Hour)),
	}

	t.Run(`поиск по имени кандидата без учета регистра`, func(t *testing.T) {
		got := FilterAndSort(recs, submissionapimodels.SubmissionFilter{Search: "иВаНоВ"})
		require.Len(t, got, 1)
		require.Equal(t, "s1", got[0].ID)
	})

	t.Run(`поиск по email кандидата`, func(t *testing.T) {
		got := FilterAndSort(recs, submissionapimodels.SubmissionFilter{Search: "sidorova@"})
		require.Len(t, got, 1)
		require.Equal(t, "s2", got[0].ID)
	})

	t.Run(`поиск по фамилии рекрутера`, func(t *testing.T) {
		got := FilterAndSort(recs, submissionapimodels.SubmissionFilter{Search: "смирнова"})
		require.Len(t, got, 2)
	})

	t.Run(`без совпадений - пустой список`, func(t *testing.T) {
		got := FilterAndSort(recs, submissionapimodels.SubmissionFilter{Search: "нет такого"})
		require.Empty(t, got)
	})

	t.Run(`по умолчанию свежие отклики выше`, func(t *testing.T) {
		got := FilterAndSort(recs, submissionapimodels.SubmissionFilter{})
		require.Equal(t, []string{"s3", "s2", "s1"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run(`сортировка по имени кандидата`, func(t *testing.T) {
		got := FilterAndSort(recs, submissionapimodels.SubmissionFilter{SortBy: submissionapimodels.SortByName})
		require.Equal(t, "Иванов Петр", got[0].CandidateName)
		require.Equal(t, "Козлов Андрей", got[1].CandidateName)
		require.Equal(t, "Сидорова Мария", got[2].CandidateName)
	})

	t.Run(`сортировка по рекрутеру, при равенстве - свежие выше`, func(t *testing.T) {
		got := FilterAndSort(recs, submissionapimodels.SubmissionFilter{SortBy: submissionapimodels.SortByRecruiter})
		require.Equal(t, "s2", got[0].ID) // Волкова
		require.Equal(t, "s3", got[1].ID) // Смирнова, свежее
		require.Equal(t, "s1", got[2].ID)
	})

	t.Run(`исходный список не изменяется`, func(t *testing.T) {
		_ = FilterAndSort(recs, submissionapimodels.SubmissionFilter{SortBy: submissionapimodels.SortByName})
		require.Equal(t, "s1", recs[0].ID)
		require.Equal(t, "s2", recs[1].ID)
		require.Equal(t, "s3", recs[2].ID)
	})
}
