// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - native value accounts
//
// The hosting environment owns value transfer; this package is that
// collaborator reduced to its interface, together with the in-process
// implementation the daemon runs.  Transfers are staged into the same
// storage transaction as the registry mutation that requires them, so
// a settlement commits whole or not at all and value is never left
// stranded between accounts.
package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/artledger/galleryd/fault"
	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/storage"
)

// Ledger - the value-transfer interface the marketplace settles against
type Ledger interface {

	// Balance - current balance of an account
	Balance(account identity.Identity) uint64

	// Transfer - stage a value movement inside an open transaction
	//
	// validation happens at staging time against the balances the
	// transaction would observe, so a failed transfer aborts before
	// anything is written
	Transfer(trx *storage.Transaction, from identity.Identity, to identity.Identity, amount uint64) error
}

// Pool - balances backed by the store's balance pool
type Pool struct {
	log   *logger.L
	store *storage.Store
}

// New - create the ledger over an open store
func New(store *storage.Store) *Pool {
	return &Pool{
		log:   logger.New("ledger"),
		store: store,
	}
}

// Balance - current balance of an account
func (p *Pool) Balance(account identity.Identity) uint64 {
	n, _ := p.store.Pool.Balances.GetN(account.Bytes())
	return n
}

// Transfer - stage a value movement inside an open transaction
func (p *Pool) Transfer(trx *storage.Transaction, from identity.Identity, to identity.Identity, amount uint64) error {
	if 0 == amount || from == to {
		return nil
	}

	balances := p.store.Pool.Balances

	debit, _ := trx.GetN(balances, from.Bytes())
	if debit < amount {
		p.log.Warnf("transfer: %s → %s  amount: %d  balance: %d", from, to, amount, debit)
		return fault.ErrInsufficientFunds
	}

	credit, _ := trx.GetN(balances, to.Bytes())
	if credit+amount < credit {
		return fault.ErrBalanceOverflow
	}

	trx.PutN(balances, from.Bytes(), debit-amount)
	trx.PutN(balances, to.Bytes(), credit+amount)
	return nil
}

// Deposit - credit an account outside any settlement
//
// this is the faucet used on testing configurations; the production
// path for incoming value is the hosting environment's own deposit
// mechanism
func (p *Pool) Deposit(account identity.Identity, amount uint64) error {
	p.store.Lock()
	defer p.store.Unlock()

	trx := p.store.NewTransaction()

	balance, _ := trx.GetN(p.store.Pool.Balances, account.Bytes())
	if balance+amount < balance {
		trx.Abort()
		return fault.ErrBalanceOverflow
	}

	trx.PutN(p.store.Pool.Balances, account.Bytes(), balance+amount)
	return trx.Commit()
}
