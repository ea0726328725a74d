// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artledger/galleryd/fault"
)

func TestErrorClasses(t *testing.T) {

	assert.True(t, fault.IsErrExists(fault.ErrUriAlreadyUsed), "uri already used is an exists error")
	assert.True(t, fault.IsErrInvalid(fault.ErrBidTooLow), "bid too low is an invalid error")
	assert.True(t, fault.IsErrNotFound(fault.ErrNoCurrentBid), "no current bid is a not found error")
	assert.True(t, fault.IsErrProcess(fault.ErrNotInitialised), "not initialised is a process error")
	assert.True(t, fault.IsErrRecord(fault.ErrInvalidStructure), "invalid structure is a record error")

	assert.False(t, fault.IsErrExists(fault.ErrBidTooLow), "class check must not cross classes")
	assert.False(t, fault.IsErrInvalid(fault.ErrNoCurrentBid), "class check must not cross classes")
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "uri already used", fault.ErrUriAlreadyUsed.Error(), "wrong message")
	assert.Equal(t, "caller is not the registry owner", fault.ErrUnauthorized.Error(), "wrong message")
}
