package notes

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotche/reminder-bot/internal/model"
)

type fakeRepository struct {
	notes  map[model.NoteID]model.Note
	nextID model.NoteID
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{notes: make(map[model.NoteID]model.Note)}
}

func (f *fakeRepository) Create(_ context.Context, note model.Note) (model.Note, error) {
	f.nextID++
	note.ID = f.nextID
	f.notes[note.ID] = note
	return note, nil
}

func (f *fakeRepository) Get(_ context.Context, noteID model.NoteID) (*model.Note, error) {
	note, ok := f.notes[noteID]
	if !ok {
		return nil, model.ErrNoteNotFound
	}
	return &note, nil
}

func (f *fakeRepository) ListForUser(_ context.Context, userID model.UserID) ([]model.Note, error) {
	var notes []model.Note
	for _, note := range f.notes {
		if note.UserID == userID {
			notes = append(notes, note)
		}
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })
	return notes, nil
}

func (f *fakeRepository) ReadAll(_ context.Context) ([]model.Note, error) {
	var notes []model.Note
	for _, note := range f.notes {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })
	return notes, nil
}

func (f *fakeRepository) SetNotified(_ context.Context, noteID model.NoteID, notified bool) error {
	note, ok := f.notes[noteID]
	if !ok {
		return model.ErrNoteNotFound
	}
	note.Notified = notified
	f.notes[noteID] = note
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, noteID model.NoteID) error {
	if _, ok := f.notes[noteID]; !ok {
		return model.ErrNoteNotFound
	}
	delete(f.notes, noteID)
	return nil
}

func TestCreateValidatesReminderTime(t *testing.T) {
	valid := []string{"00:00", "09:15", "19:59", "23:59"}
	invalid := []string{"", "9:15", "09:5", "0915", "24:00", "23:60", "ab:cd", "09:15:00", "-1:00"}

	for _, reminderTime := range valid {
		repo := newFakeRepository()
		serv := NewDefaultService(repo)

		err := serv.Create(context.Background(), 1, "Buy milk", reminderTime)
		require.NoError(t, err, "time %q must be accepted", reminderTime)
		require.Len(t, repo.notes, 1)
	}

	for _, reminderTime := range invalid {
		repo := newFakeRepository()
		serv := NewDefaultService(repo)

		err := serv.Create(context.Background(), 1, "Buy milk", reminderTime)
		assert.ErrorIs(t, err, ErrInvalidTime, "time %q must be rejected", reminderTime)
		assert.Empty(t, repo.notes, "no note must be created for %q", reminderTime)
	}
}

func TestCreateStoresUnnotifiedNote(t *testing.T) {
	repo := newFakeRepository()
	serv := NewDefaultService(repo)

	require.NoError(t, serv.Create(context.Background(), 3, "Buy milk", "09:15"))

	notes, err := serv.List(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Buy milk", notes[0].Text)
	assert.Equal(t, model.NewTimeOfDay(9, 15), notes[0].ReminderTime)
	assert.False(t, notes[0].Notified)
}

func TestComposeReport(t *testing.T) {
	serv := NewDefaultService(newFakeRepository())

	report := serv.ComposeReport([]model.Note{
		{Text: "A", ReminderTime: model.NewTimeOfDay(8, 0)},
		{Text: "B", ReminderTime: model.NewTimeOfDay(12, 30)},
		{Text: "C", ReminderTime: model.NewTimeOfDay(23, 5)},
	})

	assert.Equal(t,
		"Ваши заметки:\n\n"+
			"Заметка #1\nA\n08:00\n\n"+
			"Заметка #2\nB\n12:30\n\n"+
			"Заметка #3\nC\n23:05",
		report)
}

func TestUnnotifiedFiltersNotified(t *testing.T) {
	repo := newFakeRepository()
	serv := NewDefaultService(repo)

	require.NoError(t, serv.Create(context.Background(), 1, "first", "10:00"))
	require.NoError(t, serv.Create(context.Background(), 1, "second", "11:00"))
	require.NoError(t, serv.MarkNotified(context.Background(), 1))

	unnotified, err := serv.Unnotified(context.Background())
	require.NoError(t, err)
	require.Len(t, unnotified, 1)
	assert.Equal(t, "second", unnotified[0].Text)
}

func TestUnnotifiedOnEmptyRepository(t *testing.T) {
	serv := NewDefaultService(newFakeRepository())

	unnotified, err := serv.Unnotified(context.Background())
	require.NoError(t, err)
	assert.Empty(t, unnotified)
}
