package badger

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/bayesearch/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMemoryBackend(t *testing.T) {
	backend, err := OpenMemoryBackend(nil)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenMemoryBackend(nil)
	require.NoError(t, err)

	require.NoError(t, backend.Close())
	assert.True(t, backend.IsClosed())

	// Second close is a no-op
	assert.NoError(t, backend.Close())
}

func TestWithTx_Closed(t *testing.T) {
	backend, err := OpenMemoryBackend(nil)
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	err = backend.WithTx(func(tx *badger.Txn) error { return nil }, false)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestKeysWithPrefix(t *testing.T) {
	backend, err := OpenMemoryBackend(nil)
	require.NoError(t, err)
	defer backend.Close()

	err = backend.WithTx(func(tx *badger.Txn) error {
		for _, key := range []string{"a:1", "a:2", "b:1"} {
			if err := tx.Set([]byte(key), []byte("x")); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	require.NoError(t, err)

	var keys [][]byte
	err = backend.WithTx(func(tx *badger.Txn) error {
		keys = keysWithPrefix(tx, []byte("a:"))
		return nil
	}, false)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("a:1"), []byte("a:2")}, keys)
}

func TestMakeTrialKey_Ordering(t *testing.T) {
	prefix := makeCampaignPrefix(7)
	low := makeTrialKey(7, 2)
	high := makeTrialKey(7, 10)

	assert.True(t, string(low) < string(high), "trial keys sort numerically")
	assert.Equal(t, prefix, low[:len(prefix)])
	assert.NotEqual(t, prefix, makeTrialKey(8, 2)[:len(prefix)])
}
