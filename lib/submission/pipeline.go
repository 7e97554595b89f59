package submission

import (
	"sort"
	"strings"

	"talent-bridge-backend/models"
	submissionapimodels "talent-bridge-backend/models/api/submission"
	dbmodels "talent-bridge-backend/models/db"
)

// GroupByStatus раскладывает отклики по колонкам доски. Колонки всегда
// присутствуют все, даже пустые, в фиксированном порядке воронки.
// Каждый отклик попадает ровно в одну колонку, записи с неизвестным
// этапом пропускаются и не учитываются в Total.
func GroupByStatus(jobID string, recs []dbmodels.SubmissionExt, viewer models.UserRole) submissionapimodels.BoardView {
	byStatus := make(map[models.SubmissionStatus][]dbmodels.SubmissionExt, len(models.SubmissionStatuses))
	total := 0
	for _, rec := range recs {
		if !rec.Status.IsValid() {
			continue
		}
		byStatus[rec.Status] = append(byStatus[rec.Status], rec)
		total++
	}

	board := submissionapimodels.BoardView{
		JobID:   jobID,
		Total:   total,
		Columns: make([]submissionapimodels.ColumnView, 0, len(models.SubmissionStatuses)),
	}
	for _, status := range models.SubmissionStatuses {
		column := byStatus[status]
		sortColumn(column)
		views := make([]submissionapimodels.SubmissionView, 0, len(column))
		for _, rec := range column {
			views = append(views, submissionapimodels.ConvertExt(rec, viewer))
		}
		board.Columns = append(board.Columns, submissionapimodels.ColumnView{
			Status:      status,
			Title:       status.ToHuman(),
			Submissions: views,
		})
	}
	return board
}

// sortColumn порядок внутри колонки: сначала ручной порядок,
// при равенстве - по дате отклика
func sortColumn(column []dbmodels.SubmissionExt) {
	sort.SliceStable(column, func(i, j int) bool {
		if column[i].BoardOrder != column[j].BoardOrder {
			return column[i].BoardOrder < column[j].BoardOrder
		}
		return column[i].SubmittedAt.Before(column[j].SubmittedAt)
	})
}

// FilterAndSort поиск подстрокой без учета регистра по кандидату и
// рекрутеру, затем сортировка. Вход не изменяется.
func FilterAndSort(recs []dbmodels.SubmissionExt, filter submissionapimodels.SubmissionFilter) []dbmodels.SubmissionExt {
	result := make([]dbmodels.SubmissionExt, 0, len(recs))
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, rec := range recs {
		if search == "" || matchesSearch(rec, search) {
			result = append(result, rec)
		}
	}

	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = submissionapimodels.SortByDate
	}
	sort.SliceStable(result, func(i, j int) bool {
		switch sortBy {
		case submissionapimodels.SortByName:
			left, right := strings.ToLower(result[i].CandidateName), strings.ToLower(result[j].CandidateName)
			if left != right {
				return left < right
			}
		case submissionapimodels.SortByRecruiter:
			left, right := strings.ToLower(recruiterName(result[i])), strings.ToLower(recruiterName(result[j]))
			if left != right {
				return left < right
			}
		}
		// по умолчанию и при равенстве - свежие отклики выше
		return result[i].SubmittedAt.After(result[j].SubmittedAt)
	})
	return result
}

func matchesSearch(rec dbmodels.SubmissionExt, search string) bool {
	fields := []string{
		rec.CandidateName,
		rec.CandidateEmail,
		recruiterName(rec),
		rec.RecruiterEmail,
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func recruiterName(rec dbmodels.SubmissionExt) string {
	if rec.Recruiter != nil {
		return rec.Recruiter.GetFullName()
	}
	return strings.TrimSpace(rec.RecruiterLastName + " " + rec.RecruiterFirstName)
}
