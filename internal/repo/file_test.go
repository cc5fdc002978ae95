package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dremdor/order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileStorage_Get(t *testing.T) {
	path := writeSeedFile(t, `{
		"b563feb7b2b84b6test": {"order_uid": "b563feb7b2b84b6test", "track_number": "WBILMTESTTRACK"},
		"another-order": {"order_uid": "another-order"}
	}`)

	storage, err := NewFileStorage(path)
	require.NoError(t, err)

	blob, err := storage.Get(context.Background(), "b563feb7b2b84b6test")
	require.NoError(t, err)
	assert.Contains(t, string(blob), `"order_uid": "b563feb7b2b84b6test"`)

	_, err = storage.Get(context.Background(), "unknown-id")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestFileStorage_PutIsRejected(t *testing.T) {
	path := writeSeedFile(t, `{}`)

	storage, err := NewFileStorage(path)
	require.NoError(t, err)

	err = storage.Put(context.Background(), "some-order", []byte(`{}`))
	assert.ErrorIs(t, err, ErrReadOnly)

	var storageErr *entities.StorageError
	assert.ErrorAs(t, err, &storageErr)
}

func TestNewFileStorage_BadInput(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileStorage(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeSeedFile(t, `{broken`)
		_, err := NewFileStorage(path)
		assert.Error(t, err)
	})
}
