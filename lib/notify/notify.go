package notify

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"talent-bridge-backend/config"
	"talent-bridge-backend/lib/smtp"
	connectionhub "talent-bridge-backend/lib/ws/hub/connection-hub"
	"talent-bridge-backend/models"
	wsmodels "talent-bridge-backend/models/ws"
)

type Provider interface {
	SubmissionStatusChanged(recruiterID, recruiterEmail, submissionID, candidateName, jobTitle string, status models.SubmissionStatus)
	SubmissionRejected(recruiterEmail, candidateName, jobTitle string, reasons []string)
	NewChatMessage(toEmail, candidateName, jobTitle string)
}

var Instance Provider

func NewHandler(mailer smtp.Provider) {
	Instance = &impl{
		mailer: mailer,
	}
}

type impl struct {
	mailer smtp.Provider
}

// SubmissionStatusChanged уведомление рекрутеру о смене этапа:
// онлайн - в сокет, оффлайн - письмом. Отправка не блокирует запрос
func (i impl) SubmissionStatusChanged(recruiterID, recruiterEmail, submissionID, candidateName, jobTitle string, status models.SubmissionStatus) {
	if connectionhub.Instance != nil && connectionhub.Instance.IsConnected(recruiterID) {
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			ToUserID:     recruiterID,
			Time:         time.Now().Format("02.01.2006 15:04:05"),
			Code:         wsmodels.CodeStageChange,
			Msg:          fmt.Sprintf("Кандидат %s по вакансии %q переведен на этап %q", candidateName, jobTitle, status.ToHuman()),
			SubmissionID: submissionID,
		})
		return
	}
	message := fmt.Sprintf("Кандидат %s по вакансии %q переведен на этап %q.",
		candidateName, jobTitle, status.ToHuman())
	i.send(recruiterEmail, "смена этапа", message)
}

func (i impl) SubmissionRejected(recruiterEmail, candidateName, jobTitle string, reasons []string) {
	message := fmt.Sprintf("Кандидат %s по вакансии %q отклонен. Причины: %s.",
		candidateName, jobTitle, strings.Join(reasons, ", "))
	i.send(recruiterEmail, "отклонение кандидата", message)
}

func (i impl) NewChatMessage(toEmail, candidateName, jobTitle string) {
	message := fmt.Sprintf("Новое сообщение в обсуждении кандидата %s по вакансии %q.",
		candidateName, jobTitle)
	i.send(toEmail, "новое сообщение", message)
}

func (i impl) send(to, subject, message string) {
	if to == "" {
		return
	}
	go func() {
		err := i.mailer.SendEMail(config.Conf.Smtp.NotifyFrom, to, message, subject)
		if err != nil {
			log.WithError(err).WithField("to", to).Error("Ошибка отправки уведомления")
		}
	}()
}
