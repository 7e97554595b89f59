package lock

import (
	"sync"
)

// lock на время перехода отклика по воронке:
// не более одного перехода на отклик одновременно

var lockMap sync.Map

// TryWithLock выполняет safeCode, если ключ свободен.
// Занятый ключ означает незавершенный переход по той же записи.
func TryWithLock(key string, safeCode func() error) (acquired bool, err error) {
	if _, loaded := lockMap.LoadOrStore(key, true); loaded {
		return false, nil
	}
	defer lockMap.Delete(key)
	return true, safeCode()
}
