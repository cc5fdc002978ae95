package entities

import "errors"

var (
	// ErrOrderNotFound — по ключу ничего не сохранено.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidOrder — документ не прошёл валидацию перед записью.
	ErrInvalidOrder = errors.New("invalid order")
	// ErrCorruptOrder — сохранённый блоб не раскодировался в валидный документ.
	ErrCorruptOrder = errors.New("corrupt order document")
)

// StorageError нормализует любую ошибку бэкенда хранения,
// не пропуская наружу типы драйвера. Исходная причина доступна через Unwrap.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
