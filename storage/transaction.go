// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - staged updates committed as a single batch
//
// reads through the transaction observe its own staged writes, so a
// uri staged by one record blocks a duplicate in the same operation;
// Abort discards everything leaving the database untouched
//
// the transaction itself takes no lock: the operation creating it
// must hold the store mutex from its first validating read until
// Commit or Abort, putting all mutations into one total order
type Transaction struct {
	store *Store
	batch *leveldb.Batch
	cache map[string]stagedValue
}

// a staged write, deleted marks a staged removal
type stagedValue struct {
	value   []byte
	deleted bool
}

// NewTransaction - start staging updates
func (store *Store) NewTransaction() *Transaction {
	return &Transaction{
		store: store,
		batch: new(leveldb.Batch),
		cache: make(map[string]stagedValue),
	}
}

// Put - stage a key/value pair
func (trx *Transaction) Put(p *PoolHandle, key []byte, value []byte) {
	prefixedKey := p.prefixKey(key)
	trx.batch.Put(prefixedKey, value)
	trx.cache[string(prefixedKey)] = stagedValue{value: value}
}

// PutN - stage a uint64 value as 8 big endian bytes
func (trx *Transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	trx.Put(p, key, buffer)
}

// Delete - stage the removal of a key
func (trx *Transaction) Delete(p *PoolHandle, key []byte) {
	prefixedKey := p.prefixKey(key)
	trx.batch.Delete(prefixedKey)
	trx.cache[string(prefixedKey)] = stagedValue{deleted: true}
}

// Get - read a value, observing staged writes first
func (trx *Transaction) Get(p *PoolHandle, key []byte) []byte {
	if staged, ok := trx.cache[string(p.prefixKey(key))]; ok {
		if staged.deleted {
			return nil
		}
		return staged.value
	}
	return p.Get(key)
}

// GetN - read a uint64, observing staged writes first
func (trx *Transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	buffer := trx.Get(p, key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("transaction.GetN truncated record for: %x: %s", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - check if a key exists, observing staged writes first
func (trx *Transaction) Has(p *PoolHandle, key []byte) bool {
	if staged, ok := trx.cache[string(p.prefixKey(key))]; ok {
		return !staged.deleted
	}
	return p.Has(key)
}

// Commit - write all staged updates in one indivisible step
func (trx *Transaction) Commit() error {
	return trx.store.database.Write(trx.batch, nil)
}

// Abort - discard all staged updates
func (trx *Transaction) Abort() {
	trx.batch.Reset()
	trx.cache = make(map[string]stagedValue)
}
