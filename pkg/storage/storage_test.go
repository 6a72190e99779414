// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func openBackends(t *testing.T) map[string]Database {
	t.Helper()
	badger, err := NewBadger(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = badger.Close() })
	return map[string]Database{
		"memory": NewMemory(),
		"badger": badger,
	}
}

func TestPutGetDelete(t *testing.T) {
	for name, db := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := db.Get([]byte("missing"))
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, db.Put([]byte("k"), []byte("v1")))
			v, err := db.Get([]byte("k"))
			require.NoError(t, err)
			require.Equal(t, []byte("v1"), v)

			// Overwrite replaces the value.
			require.NoError(t, db.Put([]byte("k"), []byte("v2")))
			v, err = db.Get([]byte("k"))
			require.NoError(t, err)
			require.Equal(t, []byte("v2"), v)

			ok, err := db.Has([]byte("k"))
			require.NoError(t, err)
			require.True(t, ok)

			require.NoError(t, db.Delete([]byte("k")))
			ok, err = db.Has([]byte("k"))
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestIteratePrefix(t *testing.T) {
	for name, db := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, db.Put([]byte("a/1"), []byte("one")))
			require.NoError(t, db.Put([]byte("a/2"), []byte("two")))
			require.NoError(t, db.Put([]byte("a/3"), []byte("three")))
			require.NoError(t, db.Put([]byte("b/1"), []byte("other")))

			var keys []string
			err := db.IteratePrefix([]byte("a/"), func(k, v []byte) bool {
				keys = append(keys, string(k))
				return true
			})
			require.NoError(t, err)
			require.Equal(t, []string{"a/1", "a/2", "a/3"}, keys)

			// Early stop after the first key.
			keys = nil
			err = db.IteratePrefix([]byte("a/"), func(k, v []byte) bool {
				keys = append(keys, string(k))
				return false
			})
			require.NoError(t, err)
			require.Equal(t, []string{"a/1"}, keys)
		})
	}
}

func TestGetReturnsCopy(t *testing.T) {
	db := NewMemory()
	require.NoError(t, db.Put([]byte("k"), []byte("value")))

	v, err := db.Get([]byte("k"))
	require.NoError(t, err)
	v[0] = 'X'

	again, err := db.Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("value"), again)
}

func TestNew(t *testing.T) {
	db, err := New("memory", "")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = New("bolt", "")
	require.Error(t, err)
}
