// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mode - daemon run-mode gate
//
// RPC handlers refuse mutating requests until the daemon has
// finished starting up.
package mode

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/artledger/galleryd/fault"
)

// Mode - type to hold the mode
type Mode int

// all possible modes
const (
	Stopped Mode = iota
	Starting
	Normal
	maximum
)

var globalData struct {
	sync.RWMutex
	log     *logger.L
	mode    Mode
	testing bool

	// set once during initialise
	initialised bool
}

// Initialise - set up the mode system
func Initialise(testing bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("mode")
	globalData.log.Info("starting…")

	globalData.testing = testing
	globalData.mode = Starting

	globalData.initialised = true

	return nil
}

// Finalise - shutdown mode handling
func Finalise() error {
	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	Set(Stopped)

	globalData.log.Info("finished")
	globalData.log.Flush()

	globalData.initialised = false

	return nil
}

// Set - change mode
func Set(mode Mode) {

	if mode >= Stopped && mode < maximum {
		globalData.Lock()
		globalData.mode = mode
		globalData.Unlock()

		globalData.log.Infof("set: %s", mode)
	} else {
		globalData.log.Errorf("ignore invalid set: %d", mode)
	}
}

// Is - detect mode
func Is(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode == globalData.mode
}

// IsNot - detect mode
func IsNot(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode != globalData.mode
}

// IsTesting - enabled only on a testing configuration
//
// gates the ledger faucet
func IsTesting() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.testing
}

// String - current mode represented as a string
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.mode.String()
}

// String - mode value represented as a string
func (m Mode) String() string {
	switch m {
	case Stopped:
		return "Stopped"
	case Starting:
		return "Starting"
	case Normal:
		return "Normal"
	default:
		return "*Unknown*"
	}
}
