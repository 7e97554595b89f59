package notify

import (
	"testing"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"

	"talent-bridge-backend/config"
	connectionhub "talent-bridge-backend/lib/ws/hub/connection-hub"
	"talent-bridge-backend/models"
	wsmodels "talent-bridge-backend/models/ws"
)

type fakeHub struct {
	connected map[string]bool
	sent      []wsmodels.ServerMessage
}

func (f *fakeHub) AddClient(userID string, conn *websocket.Conn) {}
func (f *fakeHub) DeleteClient(userID string)                    {}
func (f *fakeHub) SendClose(userID string)                       {}
func (f *fakeHub) IsConnected(userID string) bool                { return f.connected[userID] }
func (f *fakeHub) SendMessage(msg wsmodels.ServerMessage) {
	f.sent = append(f.sent, msg)
}

type fakeMailer struct {
	sent chan string
}

func (f *fakeMailer) SendEMail(from, to, message, subject string) error {
	f.sent <- to
	return nil
}

func TestSubmissionStatusChanged(t *testing.T) {
	config.Conf = &config.Configuration{}
	prevHub := connectionhub.Instance
	defer func() { connectionhub.Instance = prevHub }()

	t.Run(`рекрутер онлайн - уведомление в сокет`, func(t *testing.T) {
		hub := &fakeHub{connected: map[string]bool{"rec1": true}}
		connectionhub.Instance = hub
		mailer := &fakeMailer{sent: make(chan string, 1)}
		handler := impl{mailer: mailer}

		handler.SubmissionStatusChanged("rec1", "recruiter@example.com", "sub1",
			"Иванов Петр", "Go разработчик", models.SubmissionStatusInterviewing)

		require.Len(t, hub.sent, 1)
		require.Equal(t, wsmodels.CodeStageChange, hub.sent[0].Code)
		require.Equal(t, "rec1", hub.sent[0].ToUserID)
		require.Equal(t, "sub1", hub.sent[0].SubmissionID)
		select {
		case to := <-mailer.sent:
			t.Fatalf("письмо не должно отправляться онлайн рекрутеру: %s", to)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run(`рекрутер оффлайн - уведомление письмом`, func(t *testing.T) {
		hub := &fakeHub{connected: map[string]bool{}}
		connectionhub.Instance = hub
		mailer := &fakeMailer{sent: make(chan string, 1)}
		handler := impl{mailer: mailer}

		handler.SubmissionStatusChanged("rec1", "recruiter@example.com", "sub1",
			"Иванов Петр", "Go разработчик", models.SubmissionStatusReviewing)

		require.Empty(t, hub.sent)
		select {
		case to := <-mailer.sent:
			require.Equal(t, "recruiter@example.com", to)
		case <-time.After(time.Second):
			t.Fatal("письмо оффлайн рекрутеру не отправлено")
		}
	})
}
