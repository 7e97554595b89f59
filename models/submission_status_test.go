package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmissionStatusGraph(t *testing.T) {
	t.Run(`SUBMITTED только начальный статус`, func(t *testing.T) {
		for _, status := range SubmissionStatuses {
			require.False(t, status.CanTransitionTo(SubmissionStatusSubmitted),
				"переход %s -> SUBMITTED должен быть запрещен", status)
		}
	})

	t.Run(`конечные статусы без исходящих переходов`, func(t *testing.T) {
		for _, terminal := range []SubmissionStatus{SubmissionStatusOffer, SubmissionStatusRejected} {
			require.True(t, terminal.IsTerminal())
			for _, target := range SubmissionStatuses {
				require.False(t, terminal.CanTransitionTo(target))
			}
		}
	})

	t.Run(`линейная цепочка воронки`, func(t *testing.T) {
		require.True(t, SubmissionStatusSubmitted.CanTransitionTo(SubmissionStatusReviewing))
		require.True(t, SubmissionStatusReviewing.CanTransitionTo(SubmissionStatusInterviewing))
		require.True(t, SubmissionStatusInterviewing.CanTransitionTo(SubmissionStatusOffer))

		require.False(t, SubmissionStatusSubmitted.CanTransitionTo(SubmissionStatusInterviewing))
		require.False(t, SubmissionStatusSubmitted.CanTransitionTo(SubmissionStatusOffer))
		require.False(t, SubmissionStatusReviewing.CanTransitionTo(SubmissionStatusOffer))
		require.False(t, SubmissionStatusInterviewing.CanTransitionTo(SubmissionStatusReviewing))
	})

	t.Run(`отклонение доступно из любого неконечного статуса`, func(t *testing.T) {
		for _, status := range SubmissionStatuses {
			if status.IsTerminal() {
				continue
			}
			require.True(t, status.CanTransitionTo(SubmissionStatusRejected),
				"переход %s -> REJECTED должен быть доступен", status)
		}
	})

	t.Run(`неизвестный статус`, func(t *testing.T) {
		unknown := SubmissionStatus("ARCHIVED")
		require.False(t, unknown.IsValid())
		require.False(t, SubmissionStatusSubmitted.CanTransitionTo(unknown))
	})
}

func TestContactVisibility(t *testing.T) {
	t.Run(`контакты видны рекрутеру и администратору`, func(t *testing.T) {
		require.True(t, RecruiterRole.CanSeeContacts())
		require.True(t, AdminRole.CanSeeContacts())
	})
	t.Run(`контакты скрыты от работодателя`, func(t *testing.T) {
		require.False(t, EmployerRole.CanSeeContacts())
	})
}
