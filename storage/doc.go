// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
// inside a single LevelDB database, one distinct prefix byte per pool
//
// The access model is the hosted ledger's: operations arrive in a
// single total order, each one staged into a batch transaction and
// committed whole or aborted whole.  Reads through an open
// transaction observe its staged writes.
package storage
