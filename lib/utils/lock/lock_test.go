package lock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTryWithLock(t *testing.T) {
	t.Run(`свободный ключ выполняется`, func(t *testing.T) {
		executed := false
		acquired, err := TryWithLock("sub1", func() error {
			executed = true
			return nil
		})
		require.True(t, acquired)
		require.NoError(t, err)
		require.True(t, executed)
	})

	t.Run(`занятый ключ не выполняется`, func(t *testing.T) {
		release := make(chan struct{})
		entered := make(chan struct{})
		go func() {
			_, _ = TryWithLock("sub2", func() error {
				close(entered)
				<-release
				return nil
			})
		}()
		<-entered

		acquired, err := TryWithLock("sub2", func() error {
			t.Fatal("код не должен выполняться под занятым ключом")
			return nil
		})
		require.False(t, acquired)
		require.NoError(t, err)
		close(release)
	})

	t.Run(`другой ключ не блокируется`, func(t *testing.T) {
		release := make(chan struct{})
		entered := make(chan struct{})
		go func() {
			_, _ = TryWithLock("sub3", func() error {
				close(entered)
				<-release
				return nil
			})
		}()
		<-entered

		acquired, err := TryWithLock("sub4", func() error { return nil })
		require.True(t, acquired)
		require.NoError(t, err)
		close(release)
	})

	t.Run(`ключ освобождается после выполнения`, func(t *testing.T) {
		_, _ = TryWithLock("sub5", func() error { return nil })
		acquired, _ := TryWithLock("sub5", func() error { return nil })
		require.True(t, acquired)
	})
}
