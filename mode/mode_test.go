// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/artledger/galleryd/fault"
	"github.com/artledger/galleryd/mode"
)

func TestMain(m *testing.M) {
	curPath, err := os.Getwd()
	if nil != err {
		panic(err)
	}

	testDir, err := ioutil.TempDir(curPath, "test-mode-")
	if nil != err {
		panic(err)
	}

	logging := logger.Configuration{
		Directory: testDir,
		File:      "test.log",
		Size:      50000,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(err)
	}

	result := m.Run()

	logger.Finalise()
	os.RemoveAll(testDir)

	os.Exit(result)
}

func TestModeLifecycle(t *testing.T) {
	err := mode.Initialise(true)
	assert.NoError(t, err, "initialise")
	defer mode.Finalise()

	err = mode.Initialise(true)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "double initialise")

	assert.True(t, mode.Is(mode.Starting), "initial mode")
	assert.True(t, mode.IsNot(mode.Normal), "not yet normal")
	assert.True(t, mode.IsTesting(), "testing flag")

	mode.Set(mode.Normal)
	assert.True(t, mode.Is(mode.Normal), "set normal")
	assert.Equal(t, "Normal", mode.String(), "string form")

	mode.Set(mode.Stopped)
	assert.True(t, mode.Is(mode.Stopped), "set stopped")
}

func TestModeNames(t *testing.T) {
	assert.Equal(t, "Stopped", mode.Stopped.String(), "stopped")
	assert.Equal(t, "Starting", mode.Starting.String(), "starting")
	assert.Equal(t, "Normal", mode.Normal.String(), "normal")
	assert.Equal(t, "*Unknown*", mode.Mode(99).String(), "unknown")
}
