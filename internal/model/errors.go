package model

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrNoteNotFound      = errors.New("note not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotExists     = errors.New("note references nonexistent user")
	ErrChatNotFound      = errors.New("chat not found")
)
