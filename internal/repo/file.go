package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dremdor/order-service/internal/entities"
)

// ErrReadOnly возвращается файловым бэкендом на любую попытку записи.
var ErrReadOnly = errors.New("file storage is read-only")

// fileStorage — демонстрационный бэкенд: один JSON-файл вида
// {"order_uid": {...документ...}}, читается один раз при старте.
// Путь записи отсутствует.
type fileStorage struct {
	orders map[string]json.RawMessage
}

func NewFileStorage(path string) (*fileStorage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	orders := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return &fileStorage{orders: orders}, nil
}

func (s *fileStorage) Put(ctx context.Context, orderUID string, blob []byte) error {
	return &entities.StorageError{Op: "put order", Err: ErrReadOnly}
}

func (s *fileStorage) Get(ctx context.Context, orderUID string) ([]byte, error) {
	blob, ok := s.orders[orderUID]
	if !ok {
		return nil, entities.ErrOrderNotFound
	}
	return blob, nil
}
