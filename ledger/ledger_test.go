// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/artledger/galleryd/fault"
	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/ledger"
	"github.com/artledger/galleryd/storage"
)

const testingDirName = "testing"

var (
	alice = identity.Named("test.alice")
	bob   = identity.Named("test.bob")
	carol = identity.Named("test.carol")
)

func setup(t *testing.T) (*storage.Store, *ledger.Pool) {
	os.RemoveAll(testingDirName)
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

	store, err := storage.Initialise(testingDirName + "/test.leveldb")
	assert.Nil(t, err, "storage initialise failed")
	return store, ledger.New(store)
}

func teardown(store *storage.Store) {
	store.Close()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func TestDepositAndBalance(t *testing.T) {
	store, pool := setup(t)
	defer teardown(store)

	assert.Equal(t, uint64(0), pool.Balance(alice), "new account not empty")

	assert.Nil(t, pool.Deposit(alice, 100), "deposit failed")
	assert.Nil(t, pool.Deposit(alice, 25), "deposit failed")
	assert.Equal(t, uint64(125), pool.Balance(alice), "wrong balance")
}

func TestTransferConservation(t *testing.T) {
	store, pool := setup(t)
	defer teardown(store)

	assert.Nil(t, pool.Deposit(alice, 100), "deposit failed")

	trx := store.NewTransaction()
	assert.Nil(t, pool.Transfer(trx, alice, bob, 60), "transfer failed")
	assert.Nil(t, pool.Transfer(trx, alice, carol, 40), "transfer failed")
	assert.Nil(t, trx.Commit(), "commit failed")

	assert.Equal(t, uint64(0), pool.Balance(alice), "wrong sender balance")
	assert.Equal(t, uint64(60), pool.Balance(bob), "wrong receiver balance")
	assert.Equal(t, uint64(40), pool.Balance(carol), "wrong receiver balance")
}

func TestInsufficientFundsLeavesNothingStaged(t *testing.T) {
	store, pool := setup(t)
	defer teardown(store)

	assert.Nil(t, pool.Deposit(alice, 50), "deposit failed")

	trx := store.NewTransaction()
	assert.Nil(t, pool.Transfer(trx, alice, bob, 30), "transfer failed")

	// projected balance is 20, this must fail
	err := pool.Transfer(trx, alice, carol, 30)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "wrong error")
	trx.Abort()
	assert.Nil(t, trx.Commit(), "commit of aborted batch failed")

	assert.Equal(t, uint64(50), pool.Balance(alice), "aborted transfer changed balance")
	assert.Equal(t, uint64(0), pool.Balance(bob), "aborted transfer changed balance")
}

func TestZeroAndSelfTransfers(t *testing.T) {
	store, pool := setup(t)
	defer teardown(store)

	assert.Nil(t, pool.Deposit(alice, 10), "deposit failed")

	trx := store.NewTransaction()
	assert.Nil(t, pool.Transfer(trx, alice, bob, 0), "zero transfer must be a no-op")
	assert.Nil(t, pool.Transfer(trx, alice, alice, 5), "self transfer must be a no-op")
	assert.Nil(t, trx.Commit(), "commit failed")

	assert.Equal(t, uint64(10), pool.Balance(alice), "no-op transfer changed balance")
}
