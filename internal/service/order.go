package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dremdor/order-service/internal/entities"
)

// BlobStorage — контракт бэкенда: непрозрачный блоб по строковому ключу.
// Все ошибки бэкенда приходят нормализованными (*entities.StorageError),
// отсутствие ключа — отдельная ошибка entities.ErrOrderNotFound.
type BlobStorage interface {
	Put(ctx context.Context, orderUID string, blob []byte) error
	Get(ctx context.Context, orderUID string) ([]byte, error)
}

type orderService struct {
	logger  *slog.Logger
	storage BlobStorage
}

func NewOrderService(logger *slog.Logger, storage BlobStorage) *orderService {
	return &orderService{
		logger:  logger.With(slog.String("service", "order")),
		storage: storage,
	}
}

// SaveOrder валидирует документ и сохраняет его целиком по order_uid.
// Невалидный документ отклоняется до какого-либо I/O. Повторное сохранение
// того же ключа замещает предыдущее значение. Ретраев внутри нет —
// политика повторов остаётся за вызывающим.
func (s *orderService) SaveOrder(ctx context.Context, order entities.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	blob, err := order.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	if err := s.storage.Put(ctx, order.OrderUID, blob); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "order saved", slog.String("order_uid", order.OrderUID))
	return nil
}

// GetOrderByID возвращает документ по ключу. Блоб, который не раскодировался
// или не прошёл структурную проверку, репортится как ErrCorruptOrder —
// такие данные могли попасть в хранилище мимо пути валидации.
func (s *orderService) GetOrderByID(ctx context.Context, orderUID string) (entities.Order, error) {
	blob, err := s.storage.Get(ctx, orderUID)
	if err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	if err := order.Unmarshal(blob); err != nil {
		s.logger.ErrorContext(ctx, "failed to unmarshal stored order",
			slog.String("order_uid", orderUID), slog.Any("error", err))
		return entities.Order{}, errors.Join(entities.ErrCorruptOrder, err)
	}

	if err := order.Validate(); err != nil {
		s.logger.ErrorContext(ctx, "stored order failed validation",
			slog.String("order_uid", orderUID), slog.Any("error", err))
		return entities.Order{}, errors.Join(entities.ErrCorruptOrder, err)
	}

	return order, nil
}
