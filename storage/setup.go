// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_errors "github.com/syndtr/goleveldb/leveldb/errors"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"
)

// Pools - the set of data pools inside one database
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Assets     *PoolHandle `prefix:"A"`
	Uris       *PoolHandle `prefix:"U"`
	Whitelist  *PoolHandle `prefix:"W"`
	Bids       *PoolHandle `prefix:"B"`
	Provenance *PoolHandle `prefix:"P"`
	Balances   *PoolHandle `prefix:"L"`
	State      *PoolHandle `prefix:"S"`
}

// Store - an open database and its pools
//
// the embedded mutex serialises mutating operations: every caller
// performing a read-modify-write over committed state must hold it
// from its first validating read until Commit or Abort, otherwise
// concurrent operations can both validate against the same state and
// the later commit silently overwrites the earlier one
type Store struct {
	sync.Mutex

	log      *logger.L
	database *leveldb.DB

	// Pool - the exported set of pools
	Pool Pools
}

// Initialise - open up the database connection and set up the pools
func Initialise(database string) (*Store, error) {

	log := logger.New("storage")
	log.Info("starting…")

	db, err := getDB(database)
	if nil != err {
		log.Criticalf("cannot open database: %q  error: %s", database, err)
		return nil, err
	}

	store := &Store{
		log:      log,
		database: db,
	}

	// this will be a struct type
	poolType := reflect.TypeOf(store.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&store.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			db.Close()
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: db,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	return store, nil
}

// Close - close the database connection
func (store *Store) Close() {
	if nil == store || nil == store.database {
		return
	}
	store.log.Info("closing…")
	store.log.Flush()
	store.database.Close()
	store.database = nil
}

// open the database, recovering a corrupted one if possible
func getDB(name string) (*leveldb.DB, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		if !ldb_errors.IsCorrupted(err) {
			return nil, err
		}
		db, err = leveldb.RecoverFile(name, nil)
		if nil != err {
			return nil, err
		}
	}
	return db, nil
}
