package models

type JobStatus string

const (
	JobStatusDraft     JobStatus = "DRAFT"
	JobStatusPublished JobStatus = "PUBLISHED"
	JobStatusClosed    JobStatus = "CLOSED"
)

var jobStatusHumanName = map[JobStatus]string{
	JobStatusDraft:     "Черновик",
	JobStatusPublished: "Опубликована",
	JobStatusClosed:    "Закрыта",
}

func (s JobStatus) ToHuman() string {
	if human, exist := jobStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type JobUrgency string

const (
	JobUrgencyUrgent JobUrgency = "срочная"
	JobUrgencyNormal JobUrgency = "обычная"
)

// RecruiterFeeShare доля рекрутера в комиссии за подбор
const RecruiterFeeShare = 0.7
