// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artledger/galleryd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/file.db", util.EnsureAbsolute("/data", "file.db"), "relative not joined")
	assert.Equal(t, "/other/file.db", util.EnsureAbsolute("/data", "/other/file.db"), "absolute changed")
	assert.Equal(t, "/data/sub/file.db", util.EnsureAbsolute("/data", "sub/./file.db"), "path not cleaned")
}
