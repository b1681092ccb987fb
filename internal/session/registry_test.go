package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RecordAndIsCurrent(t *testing.T) {
	registry := NewRegistry()

	registry.Record("johndoe", "token-1")

	assert.True(t, registry.IsCurrent("johndoe", "token-1"))
	assert.False(t, registry.IsCurrent("johndoe", "token-2"))
}

func TestRegistry_UnknownUser(t *testing.T) {
	registry := NewRegistry()

	assert.False(t, registry.IsCurrent("johndoe", "token-1"))
	// Empty token for unknown user must not match either
	assert.False(t, registry.IsCurrent("johndoe", ""))
}

func TestRegistry_RecordSupersedes(t *testing.T) {
	registry := NewRegistry()

	registry.Record("johndoe", "token-1")
	registry.Record("johndoe", "token-2")

	// The old token is no longer current, only the latest one is
	assert.False(t, registry.IsCurrent("johndoe", "token-1"))
	assert.True(t, registry.IsCurrent("johndoe", "token-2"))
}

func TestRegistry_ExactMatch(t *testing.T) {
	registry := NewRegistry()

	registry.Record("johndoe", "token-1")

	// No partial matches
	assert.False(t, registry.IsCurrent("johndoe", "token"))
	assert.False(t, registry.IsCurrent("johndoe", "token-12"))
}

func TestRegistry_UsersIndependent(t *testing.T) {
	registry := NewRegistry()

	registry.Record("johndoe", "token-j")
	registry.Record("anonymous", "token-a")

	assert.True(t, registry.IsCurrent("johndoe", "token-j"))
	assert.True(t, registry.IsCurrent("anonymous", "token-a"))
	assert.False(t, registry.IsCurrent("johndoe", "token-a"))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		token := fmt.Sprintf("token-%d", i)
		go func() {
			defer wg.Done()
			registry.Record("johndoe", token)
		}()
		go func() {
			defer wg.Done()
			registry.IsCurrent("johndoe", token)
		}()
	}
	wg.Wait()

	// Last-writer-wins: some recorded token is current afterwards
	found := false
	for i := 0; i < 50; i++ {
		if registry.IsCurrent("johndoe", fmt.Sprintf("token-%d", i)) {
			found = true
			break
		}
	}
	assert.True(t, found)
}
