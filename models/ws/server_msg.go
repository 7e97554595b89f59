package wsmodels

type ServerMessage struct {
	ToUserID     string `json:"-"`
	Time         string `json:"time"`          // время события
	Code         string `json:"code"`          // код события
	Msg          string `json:"msg"`           // текст события
	SubmissionID string `json:"submission_id"` // отклик, к которому относится событие
}

const (
	CodeChatMessage = "chat_message" // новое сообщение в обсуждении
	CodeStageChange = "stage_change" // отклик переведен на другой этап
)
