// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - direct read access to one pool
//
// all writes go through a Transaction
type PoolHandle struct {
	prefix   byte
	limit    []byte
	database *leveldb.DB
}

// Element - a binary key/value pair
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a value for a given key
//
// returns nil if the key does not exist
func (p *PoolHandle) Get(key []byte) []byte {
	if nil == p.database {
		return nil
	}
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second return is false if the record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %s", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	if nil == p.database {
		return false
	}
	value, err := p.database.Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return value
}

// Range - iterate over all elements of a pool whose keys start with
// the supplied key prefix, in key order
func (p *PoolHandle) Range(keyPrefix []byte, f func(Element) bool) {
	if nil == p.database {
		return
	}

	prefixed := p.prefixKey(keyPrefix)
	iter := p.database.NewIterator(ldb_util.BytesPrefix(prefixed), nil)
	defer iter.Release()

	for iter.Next() {

		// contents of the returned slices must not be modified, and
		// are only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		if !f(Element{Key: dataKey, Value: dataValue}) {
			break
		}
	}
	logger.PanicIfError("pool.Range", iter.Error())
}
