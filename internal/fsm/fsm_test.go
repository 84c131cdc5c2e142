package fsm

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreStateLifecycle(t *testing.T) {
	store := NewStore()
	key := Key{ChatID: 1, UserID: 1}

	assert.Equal(t, StateIdle, store.State(key))

	store.SetState(key, StateAwaitingUsername)
	assert.Equal(t, StateAwaitingUsername, store.State(key))

	store.SetState(key, StateIdle)
	assert.Equal(t, StateIdle, store.State(key))
}

func TestStoreUpdateDataMerges(t *testing.T) {
	store := NewStore()
	key := Key{ChatID: 7, UserID: 7}

	store.UpdateData(key, map[string]string{"username": "Alex"})
	store.UpdateData(key, map[string]string{"note_text": "Buy milk"})

	assert.Equal(t, map[string]string{
		"username":  "Alex",
		"note_text": "Buy milk",
	}, store.Data(key))
}

func TestStoreDataReturnsCopy(t *testing.T) {
	store := NewStore()
	key := Key{ChatID: 2, UserID: 2}

	store.UpdateData(key, map[string]string{"username": "Alex"})

	data := store.Data(key)
	data["username"] = "mutated"

	assert.Equal(t, "Alex", store.Data(key)["username"])
}

func TestStoreClearRemovesStateAndData(t *testing.T) {
	store := NewStore()
	key := Key{ChatID: 3, UserID: 3}

	store.SetState(key, StateAwaitingEmail)
	store.UpdateData(key, map[string]string{"username": "Alex"})
	store.Clear(key)

	assert.Equal(t, StateIdle, store.State(key))
	assert.Empty(t, store.Data(key))
}

func TestStoreKeysDoNotInterfere(t *testing.T) {
	store := NewStore()
	first := Key{ChatID: 1, UserID: 1}
	second := Key{ChatID: 2, UserID: 2}

	store.SetState(first, StateAwaitingNoteText)
	store.SetState(second, StateAwaitingEmail)
	store.Clear(first)

	assert.Equal(t, StateIdle, store.State(first))
	assert.Equal(t, StateAwaitingEmail, store.State(second))
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := Key{ChatID: int64(i), UserID: int64(i)}
			store.SetState(key, StateAwaitingNoteReminderTime)
			store.UpdateData(key, map[string]string{"note_text": fmt.Sprintf("note %d", i)})
			_ = store.Data(key)
			store.Clear(key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		assert.Equal(t, StateIdle, store.State(Key{ChatID: int64(i), UserID: int64(i)}))
	}
}
