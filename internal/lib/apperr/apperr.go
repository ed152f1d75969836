// Package apperr описывает виды ошибок бизнес-логики, по которым
// HTTP-слой выбирает код ответа.
package apperr

import "errors"

// Kind вид ошибки.
type Kind int

const (
	// KindInternal неожиданная ошибка, например отказ хранилища.
	KindInternal Kind = iota
	// KindNotFound запись не найдена или скрыта.
	KindNotFound
	// KindConflict нарушено бизнес-правило: дубликат, недопустимая роль и т.п.
	KindConflict
)

// Error ошибка с видом и сообщением для клиента.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// NotFound создаёт ошибку вида KindNotFound.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Conflict создаёт ошибку вида KindConflict.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Msg: msg}
}

// KindOf возвращает вид ошибки. Всё, что не *Error, считается KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
