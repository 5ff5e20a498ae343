package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopLocker(t *testing.T) {
	var l RWLocker = noopLocker{}
	assert.NotPanics(t, func() {
		l.Lock()
		l.Lock() // never blocks
		l.Unlock()
		l.RLock()
		l.RUnlock()
	})
}

func TestRWMutexIsLocker(t *testing.T) {
	var l RWLocker = &sync.RWMutex{}
	l.RLock()
	l.RUnlock()
	l.Lock()
	l.Unlock()
}
