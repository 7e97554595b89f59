package connectionhub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	wsmodels "talent-bridge-backend/models/ws"
)

func testHub(userID string) (*impl, clientSession) {
	sess := clientSession{
		sendCh: make(chan any, 1),
		stop:   func() {},
	}
	hub := &impl{clients: map[string]clientSession{userID: sess}}
	return hub, sess
}

func TestSendMessage(t *testing.T) {
	t.Run(`сообщение доставляется в сессию`, func(t *testing.T) {
		hub, sess := testHub("user1")
		hub.SendMessage(wsmodels.ServerMessage{ToUserID: "user1", Msg: "привет"})

		select {
		case msg := <-sess.sendCh:
			require.Equal(t, "привет", msg.(wsmodels.ServerMessage).Msg)
		default:
			t.Fatal("сообщение не попало в буфер сессии")
		}
	})

	t.Run(`зависший клиент не блокирует отправителя`, func(t *testing.T) {
		hub, sess := testHub("user1")
		// буфер сессии заполнен, читателя нет
		sess.sendCh <- wsmodels.ServerMessage{Msg: "первое"}

		done := make(chan struct{})
		go func() {
			hub.SendMessage(wsmodels.ServerMessage{ToUserID: "user1", Msg: "второе"})
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("отправка заблокировалась на заполненном буфере")
		}
	})

	t.Run(`зависший клиент не блокирует подключения других`, func(t *testing.T) {
		hub, sess := testHub("user1")
		sess.sendCh <- wsmodels.ServerMessage{Msg: "первое"}
		hub.SendMessage(wsmodels.ServerMessage{ToUserID: "user1", Msg: "второе"})

		done := make(chan struct{})
		go func() {
			hub.DeleteClient("user2")
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("изменение списка клиентов заблокировано отправкой")
		}
	})

	t.Run(`неизвестный получатель игнорируется`, func(t *testing.T) {
		hub, _ := testHub("user1")
		hub.SendMessage(wsmodels.ServerMessage{ToUserID: "ghost", Msg: "привет"})
	})
}
