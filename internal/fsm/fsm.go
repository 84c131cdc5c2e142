// Package fsm holds the in-memory conversation state for active dialogs.
// State lives for the process lifetime only: a restart mid-dialog simply
// makes the user start the dialog over.
package fsm

import "sync"

type State string

const (
	StateIdle                     State = ""
	StateAwaitingUsername         State = "AWAITING_USERNAME"
	StateAwaitingEmail            State = "AWAITING_EMAIL"
	StateAwaitingNoteText         State = "AWAITING_NOTE_TEXT"
	StateAwaitingNoteReminderTime State = "AWAITING_NOTE_REMINDER_TIME"
)

// Key identifies one conversation. Chat and user ids coincide for private
// telegram chats, but the key stays compound for platforms where they
// diverge.
type Key struct {
	ChatID int64
	UserID int64
}

type Store struct {
	mu     sync.RWMutex
	states map[Key]State
	data   map[Key]map[string]string
}

func NewStore() *Store {
	return &Store{
		states: make(map[Key]State),
		data:   make(map[Key]map[string]string),
	}
}

func (s *Store) State(key Key) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[key]
}

func (s *Store) SetState(key Key, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state == StateIdle {
		delete(s.states, key)
		return
	}
	s.states[key] = state
}

// Data returns a copy of the conversation data bag.
func (s *Store) Data(key Key) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data := make(map[string]string, len(s.data[key]))
	for k, v := range s.data[key] {
		data[k] = v
	}
	return data
}

// UpdateData merges values into the conversation data bag.
func (s *Store) UpdateData(key Key, values map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bag, ok := s.data[key]
	if !ok {
		bag = make(map[string]string, len(values))
		s.data[key] = bag
	}
	for k, v := range values {
		bag[k] = v
	}
}

// Clear removes the state and the data bag together, finishing the dialog.
func (s *Store) Clear(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, key)
	delete(s.data, key)
}

// Context binds a store to one conversation key. Handlers receive it
// explicitly instead of reaching for ambient state.
type Context struct {
	store *Store
	key   Key
}

func NewContext(store *Store, key Key) *Context {
	return &Context{store: store, key: key}
}

func (c *Context) Key() Key { return c.key }

func (c *Context) State() State { return c.store.State(c.key) }

func (c *Context) SetState(state State) { c.store.SetState(c.key, state) }

func (c *Context) Data() map[string]string { return c.store.Data(c.key) }

func (c *Context) UpdateData(values map[string]string) { c.store.UpdateData(c.key, values) }

func (c *Context) Finish() { c.store.Clear(c.key) }
