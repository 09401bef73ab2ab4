package datastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/coredb/internal/dberr"
	"github.com/dreamware/coredb/internal/hostkv"
	"github.com/dreamware/coredb/internal/key"
	"github.com/dreamware/coredb/internal/value"
)

func dataKeyCmp(a, b key.DataKey) int { return key.CmpDataKey(a, b) }

func dk(id uint64, pk int64) key.DataKey {
	return key.NewDataKey(id, key.New(value.FromValue(value.NewInt(pk))))
}

func newTestStore() *DataStore {
	return New(hostkv.NewBTreeMap[key.DataKey, []byte](dataKeyCmp))
}

func TestDataStorePutGetDelete(t *testing.T) {
	s := newTestStore()
	k := dk(1, 42)

	_, err := s.Get(k)
	require.Error(t, err)
	assert.True(t, dberr.Is(err, dberr.KindKeyNotFound))

	existed := s.Put(k, []byte("hello"))
	assert.False(t, existed)

	got, err := s.Get(k)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	existed = s.Put(k, []byte("world"))
	assert.True(t, existed)
	got, _ = s.Get(k)
	assert.Equal(t, []byte("world"), got)

	s.Delete(k)
	_, err = s.Get(k)
	require.Error(t, err)

	// Idempotent delete.
	s.Delete(k)
}

func TestDataStorePutCopiesBytes(t *testing.T) {
	s := newTestStore()
	k := dk(1, 1)
	buf := []byte("mutable")
	s.Put(k, buf)
	buf[0] = 'X'

	got, err := s.Get(k)
	require.NoError(t, err)
	assert.Equal(t, []byte("mutable"), got)
}

func TestDataStoreRangeAndStats(t *testing.T) {
	s := newTestStore()
	for i := int64(0); i < 5; i++ {
		s.Put(dk(1, i), []byte{byte(i)})
	}

	rows := s.Range(dk(1, 1), dk(1, 3))
	assert.Len(t, rows, 3)

	stats := s.Stats()
	assert.Equal(t, 5, stats.Rows)
	assert.Equal(t, 5, stats.Bytes)

	s.Delete(dk(1, 0))
	stats = s.Stats()
	assert.Equal(t, 4, stats.Rows)
}
