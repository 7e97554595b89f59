package submissionapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "talent-bridge-backend/models/db"
)

type NewMessageRequest struct {
	Text string `json:"text"`
}

func (m NewMessageRequest) Validate() error {
	if m.Text == "" {
		return errors.New("не указано сообщение для отправки")
	}
	return nil
}

type MessageItem struct {
	ID              string    `json:"id"`
	MessageDateTime time.Time `json:"message_date_time"` // Дата/время сообщения
	SelfMessage     bool      `json:"self_message"`      // Сообщение от текущего пользователя
	Text            string    `json:"text"`              // Текст сообщения
	AuthorFullName  string    `json:"author_full_name"`  // ФИО автора
}

func MessageConvert(rec dbmodels.ChatMessage, viewerID string) MessageItem {
	result := MessageItem{
		ID:              rec.ID,
		MessageDateTime: rec.CreatedAt,
		SelfMessage:     rec.SenderID == viewerID,
		Text:            rec.Text,
	}
	if rec.Sender != nil {
		result.AuthorFullName = rec.Sender.GetFullName()
	}
	return result
}
