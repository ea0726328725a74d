// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/artledger/galleryd/fault"
)

// limiting for a single request
func rateLimit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// limiting for a counted request
func rateLimitN(limiter *rate.Limiter, count uint64, maximumCount uint64) error {

	// invalid count gets limited as a single request
	if count > maximumCount {
		r := limiter.Reserve()
		if !r.OK() {
			return fault.ErrRateLimiting
		}
		time.Sleep(r.Delay())

		return fault.ErrMissingParameters
	}

	r := limiter.ReserveN(time.Now(), int(count))
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())

	return nil
}
