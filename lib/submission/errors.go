package submission

import (
	"github.com/pkg/errors"
)

// ErrorKind категория ошибки воронки, по ней контроллер выбирает http код
type ErrorKind string

const (
	KindValidation ErrorKind = "VALIDATION" // данные запроса не прошли проверку
	KindConflict   ErrorKind = "CONFLICT"   // конкурентное изменение, повторить с актуальной версией
	KindStorage    ErrorKind = "STORAGE"    // инфраструктурная ошибка, можно повторить запрос
)

type PipelineError struct {
	Kind ErrorKind
	Err  error
}

func (e *PipelineError) Error() string {
	return e.Err.Error()
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NewValidationError(err error) error {
	return &PipelineError{Kind: KindValidation, Err: err}
}

func NewConflictError(message string) error {
	return &PipelineError{Kind: KindConflict, Err: errors.New(message)}
}

func NewStorageError(err error) error {
	return &PipelineError{Kind: KindStorage, Err: errors.Wrap(err, "ошибка хранилища, повторите запрос")}
}

// KindOf ошибка без категории считается инфраструктурной
func KindOf(err error) ErrorKind {
	var pipelineErr *PipelineError
	if errors.As(err, &pipelineErr) {
		return pipelineErr.Kind
	}
	return KindStorage
}
