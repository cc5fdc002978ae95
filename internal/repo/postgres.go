package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dremdor/order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// postgresStorage хранит документ целиком в jsonb-колонке,
// единственный способ адресации — order_uid.
type postgresStorage struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresStorage(db *sqlx.DB) *postgresStorage {
	return &postgresStorage{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Put сохраняет блоб по ключу. Повторная запись того же ключа
// полностью замещает предыдущее значение.
func (r *postgresStorage) Put(ctx context.Context, orderUID string, blob []byte) error {
	query, args := r.qb.Insert("orders").
		Columns("order_uid", "data").
		Values(orderUID, blob).
		Suffix("ON CONFLICT (order_uid) DO UPDATE SET data = EXCLUDED.data").
		MustSql()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return &entities.StorageError{Op: "put order", Err: err}
	}
	return nil
}

func (r *postgresStorage) Get(ctx context.Context, orderUID string) ([]byte, error) {
	query, args := r.qb.Select("data").
		From("orders").
		Where(sq.Eq{"order_uid": orderUID}).
		MustSql()

	var blob []byte
	err := r.db.GetContext(ctx, &blob, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entities.ErrOrderNotFound
	}
	if err != nil {
		return nil, &entities.StorageError{Op: "get order", Err: err}
	}
	return blob, nil
}

// EnsureSchema создаёт таблицу заказов, если её ещё нет.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS orders (
  order_uid text PRIMARY KEY,
  data jsonb NOT NULL
);`)
	if err != nil {
		return &entities.StorageError{Op: "ensure schema", Err: err}
	}
	return nil
}
