package submissionchat

import (
	"time"

	"github.com/pkg/errors"

	"talent-bridge-backend/lib/notify"
	"talent-bridge-backend/lib/submission"
	submissionchatstore "talent-bridge-backend/lib/submission-chat/store"
	submissionhistory "talent-bridge-backend/lib/submission-history"
	submissionstore "talent-bridge-backend/lib/submission/store"
	initchecker "talent-bridge-backend/lib/utils/init-checker"
	connectionhub "talent-bridge-backend/lib/ws/hub/connection-hub"
	"talent-bridge-backend/models"
	submissionapimodels "talent-bridge-backend/models/api/submission"
	dbmodels "talent-bridge-backend/models/db"
	wsmodels "talent-bridge-backend/models/ws"
)

type Provider interface {
	Send(actor submission.Actor, submissionID string, request submissionapimodels.NewMessageRequest) (*submissionapimodels.MessageItem, error)
	List(actor submission.Actor, submissionID string) ([]submissionapimodels.MessageItem, error)
}

var Instance Provider

func NewHandler(messages submissionchatstore.Provider, subs submissionstore.Provider,
	history submissionhistory.Provider) {
	instance := &impl{
		messages: messages,
		subs:     subs,
		history:  history,
	}
	initchecker.CheckInit(
		"messages", instance.messages,
		"subs", instance.subs,
		"history", instance.history,
	)
	Instance = instance
}

type impl struct {
	messages submissionchatstore.Provider
	subs     submissionstore.Provider
	history  submissionhistory.Provider
}

func (i impl) Send(actor submission.Actor, submissionID string, request submissionapimodels.NewMessageRequest) (*submissionapimodels.MessageItem, error) {
	if err := request.Validate(); err != nil {
		return nil, submission.NewValidationError(err)
	}
	sub, err := i.getAllowed(actor, submissionID)
	if err != nil {
		return nil, err
	}
	if sub.Status == models.SubmissionStatusSubmitted {
		return nil, submission.NewValidationError(errors.New("обсуждение доступно после взятия отклика в работу"))
	}
	message := dbmodels.ChatMessage{
		SubmissionID: submissionID,
		SenderID:     actor.ID,
		Text:         request.Text,
	}
	if err = i.messages.Create(&message); err != nil {
		return nil, submission.NewStorageError(err)
	}
	userID := actor.ID
	i.history.Log(&dbmodels.SubmissionHistory{
		SubmissionID: submissionID,
		JobID:        sub.JobID,
		UserID:       &userID,
		UserName:     actor.Name,
		ActionType:   dbmodels.HistoryTypeComment,
		Changes: dbmodels.SubmissionChanges{
			Description: "Добавлен комментарий",
		},
	})
	i.push(actor, sub)
	result := submissionapimodels.MessageConvert(message, actor.ID)
	result.AuthorFullName = actor.Name
	return &result, nil
}

func (i impl) List(actor submission.Actor, submissionID string) ([]submissionapimodels.MessageItem, error) {
	if _, err := i.getAllowed(actor, submissionID); err != nil {
		return nil, err
	}
	messages, err := i.messages.List(submissionID)
	if err != nil {
		return nil, submission.NewStorageError(err)
	}
	result := make([]submissionapimodels.MessageItem, 0, len(messages))
	for _, rec := range messages {
		result = append(result, submissionapimodels.MessageConvert(rec, actor.ID))
	}
	return result, nil
}

// getAllowed участники обсуждения: работодатель вакансии,
// рекрутер отклика и администратор
func (i impl) getAllowed(actor submission.Actor, submissionID string) (*dbmodels.SubmissionExt, error) {
	sub, err := i.subs.GetByID(submissionID)
	if err != nil {
		return nil, submission.NewStorageError(err)
	}
	switch {
	case actor.Role == models.AdminRole:
	case actor.Role == models.EmployerRole && actor.ID == sub.EmployerID:
	case actor.Role == models.RecruiterRole && actor.ID == sub.RecruiterID:
	default:
		return nil, submission.NewValidationError(errors.New("обсуждение недоступно"))
	}
	return sub, nil
}

// push уведомление второму участнику: онлайн - в сокет, оффлайн - письмом
func (i impl) push(actor submission.Actor, sub *dbmodels.SubmissionExt) {
	toUserID := sub.RecruiterID
	toEmail := sub.RecruiterEmail
	if actor.ID == sub.RecruiterID {
		toUserID = sub.EmployerID
		toEmail = ""
	}
	if connectionhub.Instance != nil && connectionhub.Instance.IsConnected(toUserID) {
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			ToUserID:     toUserID,
			Time:         time.Now().Format("02.01.2006 15:04:05"),
			Code:         wsmodels.CodeChatMessage,
			Msg:          "Новое сообщение в обсуждении кандидата " + sub.CandidateName,
			SubmissionID: sub.ID,
		})
		return
	}
	if toEmail != "" && notify.Instance != nil {
		notify.Instance.NewChatMessage(toEmail, sub.CandidateName, sub.JobTitle)
	}
}
