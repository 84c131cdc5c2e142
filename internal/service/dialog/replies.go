package dialog

const (
	replyRegisterPrompt    = "Чтобы продолжить пользоваться ботом, нужно пройти регистрацию.\nВведите имя пользователя:"
	replyAlreadyRegistered = "Вы уже зарегистрированы."
	replyRegistered        = "Вы успешно прошли регистрацию! Теперь вам доступен весь функционал."
	replyInvalidEmail      = "Введен некорректный email. Попробуйте еще раз:"
	replyMustRegister      = "Перед тем как использовать эту функцию, вам необходимо пройти регистрацию."
	replyNoNotes           = "У вас еще нет заметок."
	replyNoteTextPrompt    = "Введите текст для новой заметки:"
	replyTimePrompt        = "Введите время напоминания в формате HH:mm:"
	replyNoteCreated       = "Вы успешно создали новую заметку!"
	replyInvalidTime       = "Некорректный формат времени уведомления. Попробуйте еще раз:"
	replyFailure           = "Произошла ошибка. Попробуйте позже."
)
