// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/artledger/galleryd/fault"
	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/ledger"
	"github.com/artledger/galleryd/mode"
)

const (
	rateLimitLedger = 200
	rateBurstLedger = 100
)

// Ledger - RPC access to account balances
type Ledger struct {
	log     *logger.L
	limiter *rate.Limiter
	pool    *ledger.Pool
}

// ---

// BalanceArguments - arguments for Ledger.Balance
type BalanceArguments struct {
	Account identity.Identity `json:"account"`
}

// BalanceReply - result of Ledger.Balance
type BalanceReply struct {
	Account identity.Identity `json:"account"`
	Balance uint64            `json:"balance,string"`
}

// Balance - read an account balance
func (l *Ledger) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := rateLimit(l.limiter); nil != err {
		return err
	}

	reply.Account = arguments.Account
	reply.Balance = l.pool.Balance(arguments.Account)
	return nil
}

// ---

// DepositArguments - arguments for Ledger.Deposit
type DepositArguments struct {
	Account identity.Identity `json:"account"`
	Amount  uint64            `json:"amount,string"`
}

// DepositReply - result of Ledger.Deposit
type DepositReply struct {
	Account identity.Identity `json:"account"`
	Balance uint64            `json:"balance,string"`
}

// Deposit - credit an account, test mode only
func (l *Ledger) Deposit(arguments *DepositArguments, reply *DepositReply) error {
	if mode.IsNot(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}
	if err := rateLimit(l.limiter); nil != err {
		return err
	}
	if !mode.IsTesting() {
		return fault.ErrNotAvailableDuringNormal
	}
	l.log.Infof("Ledger.Deposit: %s  amount: %d", arguments.Account, arguments.Amount)

	err := l.pool.Deposit(arguments.Account, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Account = arguments.Account
	reply.Balance = l.pool.Balance(arguments.Account)
	return nil
}
