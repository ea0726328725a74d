// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/artledger/galleryd/storage"
)

const (
	testingDirName = "testing"
	databaseName   = testingDirName + "/test.leveldb"
)

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func setup(t *testing.T) *storage.Store {
	removeFiles()
	os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	store, err := storage.Initialise(databaseName)
	assert.Nil(t, err, "storage initialise failed")
	return store
}

func teardown(store *storage.Store) {
	store.Close()
	logger.Finalise()
	removeFiles()
}

func TestCommitVisibility(t *testing.T) {
	store := setup(t)
	defer teardown(store)

	key := []byte("uri-1")
	value := []byte("data-1")

	trx := store.NewTransaction()
	trx.Put(store.Pool.Uris, key, value)

	// staged writes visible inside the transaction only
	assert.True(t, trx.Has(store.Pool.Uris, key), "staged write not visible in transaction")
	assert.False(t, store.Pool.Uris.Has(key), "staged write visible outside transaction")

	err := trx.Commit()
	assert.Nil(t, err, "commit failed")

	assert.True(t, store.Pool.Uris.Has(key), "committed write not visible")
	assert.Equal(t, value, store.Pool.Uris.Get(key), "wrong value")
}

func TestAbortDiscardsEverything(t *testing.T) {
	store := setup(t)
	defer teardown(store)

	trx := store.NewTransaction()
	trx.Put(store.Pool.Assets, []byte{0, 0, 0, 0, 0, 0, 0, 1}, []byte("a"))
	trx.PutN(store.Pool.State, []byte("nextAssetId"), 2)
	trx.Abort()

	err := trx.Commit() // empty batch after abort
	assert.Nil(t, err, "commit of empty batch failed")

	assert.False(t, store.Pool.Assets.Has([]byte{0, 0, 0, 0, 0, 0, 0, 1}), "aborted write was committed")
	_, found := store.Pool.State.GetN([]byte("nextAssetId"))
	assert.False(t, found, "aborted counter was committed")
}

func TestStagedDelete(t *testing.T) {
	store := setup(t)
	defer teardown(store)

	key := []byte("bid-key")

	trx := store.NewTransaction()
	trx.Put(store.Pool.Bids, key, []byte("x"))
	assert.Nil(t, trx.Commit(), "commit failed")

	trx = store.NewTransaction()
	trx.Delete(store.Pool.Bids, key)
	assert.False(t, trx.Has(store.Pool.Bids, key), "staged delete not observed")
	assert.True(t, store.Pool.Bids.Has(key), "delete applied before commit")
	assert.Nil(t, trx.Commit(), "commit failed")
	assert.False(t, store.Pool.Bids.Has(key), "delete not applied after commit")
}

func TestGetN(t *testing.T) {
	store := setup(t)
	defer teardown(store)

	key := []byte("counter")

	trx := store.NewTransaction()
	trx.PutN(store.Pool.State, key, 42)

	n, found := trx.GetN(store.Pool.State, key)
	assert.True(t, found, "staged counter not found")
	assert.Equal(t, uint64(42), n, "wrong staged counter")

	assert.Nil(t, trx.Commit(), "commit failed")

	n, found = store.Pool.State.GetN(key)
	assert.True(t, found, "committed counter not found")
	assert.Equal(t, uint64(42), n, "wrong committed counter")
}

func TestRange(t *testing.T) {
	store := setup(t)
	defer teardown(store)

	prefix := []byte{0, 0, 0, 0, 0, 0, 0, 9}

	trx := store.NewTransaction()
	trx.Put(store.Pool.Provenance, append(prefix[:8:8], 1), []byte("one"))
	trx.Put(store.Pool.Provenance, append(prefix[:8:8], 2), []byte("two"))
	trx.Put(store.Pool.Provenance, []byte{0, 0, 0, 0, 0, 0, 0, 8, 1}, []byte("other"))
	assert.Nil(t, trx.Commit(), "commit failed")

	collected := []string{}
	store.Pool.Provenance.Range(prefix, func(e storage.Element) bool {
		collected = append(collected, string(e.Value))
		return true
	})
	assert.Equal(t, []string{"one", "two"}, collected, "wrong range contents")
}
