package models

type SubmissionStatus string

const (
	SubmissionStatusSubmitted    SubmissionStatus = "SUBMITTED"
	SubmissionStatusReviewing    SubmissionStatus = "REVIEWING"
	SubmissionStatusInterviewing SubmissionStatus = "INTERVIEWING"
	SubmissionStatusOffer        SubmissionStatus = "OFFER"
	SubmissionStatusRejected     SubmissionStatus = "REJECTED"
)

// SubmissionStatuses порядок колонок воронки
var SubmissionStatuses = []SubmissionStatus{
	SubmissionStatusSubmitted,
	SubmissionStatusReviewing,
	SubmissionStatusInterviewing,
	SubmissionStatusOffer,
	SubmissionStatusRejected,
}

var statusHumanName = map[SubmissionStatus]string{
	SubmissionStatusSubmitted:    "Отклик",
	SubmissionStatusReviewing:    "Рассмотрение",
	SubmissionStatusInterviewing: "Интервью",
	SubmissionStatusOffer:        "Оффер",
	SubmissionStatusRejected:     "Отклонен",
}

// переходы воронки, SUBMITTED только начальный, OFFER/REJECTED конечные
var statusGraph = map[SubmissionStatus][]SubmissionStatus{
	SubmissionStatusSubmitted:    {SubmissionStatusReviewing, SubmissionStatusRejected},
	SubmissionStatusReviewing:    {SubmissionStatusInterviewing, SubmissionStatusRejected},
	SubmissionStatusInterviewing: {SubmissionStatusOffer, SubmissionStatusRejected},
	SubmissionStatusOffer:        {},
	SubmissionStatusRejected:     {},
}

func (s SubmissionStatus) ToHuman() string {
	if human, exist := statusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s SubmissionStatus) IsValid() bool {
	_, exist := statusHumanName[s]
	return exist
}

func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusOffer || s == SubmissionStatusRejected
}

func (s SubmissionStatus) CanTransitionTo(target SubmissionStatus) bool {
	for _, next := range statusGraph[s] {
		if next == target {
			return true
		}
	}
	return false
}

type InterviewFormat string

const (
	InterviewFormatVideo    InterviewFormat = "video"
	InterviewFormatInPerson InterviewFormat = "in-person"
)

func (f InterviewFormat) IsValid() bool {
	return f == InterviewFormatVideo || f == InterviewFormatInPerson
}
