package model

type (
	UserID int
	NoteID int

	User struct {
		ID         UserID
		Name       string
		Email      string
		TelegramID int64
	}

	Note struct {
		ID           NoteID
		UserID       UserID
		Text         string
		ReminderTime TimeOfDay
		Notified     bool
	}
)
