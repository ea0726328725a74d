// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artledger/galleryd/configuration"
)

const luaConfig = `
local M = {}
M.data_directory = "."
M.nodes = {
    maximum_connections = 5,
    listen = { "127.0.0.1:2140" },
}
M.logging = {
    size = 1048576,
    count = 10,
    levels = {
        DEFAULT = "info",
    },
}
return M
`

type nodesSection struct {
	MaximumConnections int      `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
}

type loggingSection struct {
	Size   int               `gluamapper:"size"`
	Count  int               `gluamapper:"count"`
	Levels map[string]string `gluamapper:"levels"`
}

type testConfiguration struct {
	DataDirectory string         `gluamapper:"data_directory"`
	Nodes         nodesSection   `gluamapper:"nodes"`
	Logging       loggingSection `gluamapper:"logging"`
}

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration-test")
	assert.Nil(t, err, "tempdir failed")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(luaConfig), 0600)
	assert.Nil(t, err, "write failed")

	config := &testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.Nil(t, err, "parse failed")

	assert.Equal(t, ".", config.DataDirectory, "wrong data directory")
	assert.Equal(t, 5, config.Nodes.MaximumConnections, "wrong connection limit")
	assert.Equal(t, []string{"127.0.0.1:2140"}, config.Nodes.Listen, "wrong listen")
	assert.Equal(t, "info", config.Logging.Levels["DEFAULT"], "wrong log level")
}

func TestParseMissingFile(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationFile("/nonexistent/test.conf", config)
	assert.NotNil(t, err, "missing file must error")
}
