// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - synchronised counters
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned integer that can be incremented and
// decremented from multiple goroutines
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (counter *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(counter), 1)
}

// Decrement - subtract 1 from a counter, returns new value
func (counter *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(counter), ^uint64(0))
}

// Uint64 - current value
func (counter *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(counter))
}

// IsZero - check for zero
func (counter *Counter) IsZero() bool {
	return 0 == atomic.LoadUint64((*uint64)(counter))
}
