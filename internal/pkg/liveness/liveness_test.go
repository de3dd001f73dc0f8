package liveness

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_Alive(t *testing.T) {
	var scope Scope

	first := scope.Token()
	assert.True(t, first.Alive())

	scope.Invalidate()
	assert.False(t, first.Alive())

	second := scope.Token()
	assert.True(t, second.Alive())
}

func TestToken_ZeroValue(t *testing.T) {
	var tok Token
	assert.False(t, tok.Alive())
}

func TestScope_ConcurrentInvalidate(t *testing.T) {
	var scope Scope
	tok := scope.Token()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			scope.Invalidate()
			_ = scope.Token().Alive()
		}()
	}
	wg.Wait()

	assert.False(t, tok.Alive())
}
