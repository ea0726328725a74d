// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/artledger/galleryd/fault"
	"github.com/artledger/galleryd/identity"
	"github.com/artledger/galleryd/messagebus"
	"github.com/artledger/galleryd/registry"
	"github.com/artledger/galleryd/storage"
)

const testingDirName = "testing"

var (
	maintainer = identity.Named("test.maintainer")
	artist     = identity.Named("test.artist")
	outsider   = identity.Named("test.outsider")
)

func setup(t *testing.T) (*storage.Store, *registry.Registry) {
	os.RemoveAll(testingDirName)
	os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	store, err := storage.Initialise(testingDirName + "/test.leveldb")
	assert.Nil(t, err, "storage initialise failed")

	drainEvents()
	return store, registry.New(store, maintainer)
}

func teardown(store *storage.Store) {
	store.Close()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func drainEvents() {
	for {
		select {
		case <-messagebus.Bus.Transfers.Chan():
		default:
			return
		}
	}
}

func collectEvents() []messagebus.TransferEvent {
	events := []messagebus.TransferEvent{}
	for {
		select {
		case e := <-messagebus.Bus.Transfers.Chan():
			events = append(events, e)
		default:
			return events
		}
	}
}

func TestMintRequiresWhitelist(t *testing.T) {
	store, reg := setup(t)
	defer teardown(store)

	_, err := reg.Mint("ipfs://piece-1", artist)
	assert.Equal(t, fault.ErrNotWhitelisted, err, "wrong error")

	assert.Nil(t, reg.WhitelistCreator(artist, maintainer), "whitelist failed")

	assetId, err := reg.Mint("ipfs://piece-1", artist)
	assert.Nil(t, err, "mint failed")
	assert.Equal(t, uint64(1), assetId, "wrong first asset id")

	record, err := reg.Asset(assetId)
	assert.Nil(t, err, "asset fetch failed")
	assert.Equal(t, artist, record.Creator, "wrong creator")
	assert.Equal(t, artist, record.Owner, "wrong owner")
	assert.Equal(t, uint64(0), record.SalePrice, "new asset must not be listed")
	assert.Equal(t, "ipfs://piece-1", record.Uri, "wrong uri")

	events := collectEvents()
	assert.Equal(t, 1, len(events), "exactly one mint event expected")
	assert.Equal(t, messagebus.TransferEvent{
		AssetId: assetId,
		From:    identity.Zero,
		To:      artist,
	}, events[0], "wrong mint event")
}

func TestWhitelistOwnerOnlyAndIdempotent(t *testing.T) {
	store, reg := setup(t)
	defer teardown(store)

	err := reg.WhitelistCreator(artist, outsider)
	assert.Equal(t, fault.ErrUnauthorized, err, "wrong error")
	assert.False(t, reg.IsWhitelisted(artist), "unauthorised whitelist took effect")

	assert.Nil(t, reg.WhitelistCreator(artist, maintainer), "whitelist failed")
	assert.Nil(t, reg.WhitelistCreator(artist, maintainer), "repeat whitelist must succeed")
	assert.True(t, reg.IsWhitelisted(artist), "whitelist lost")
}

func TestUriUniqueForAllTime(t *testing.T) {
	store, reg := setup(t)
	defer teardown(store)

	assert.Nil(t, reg.WhitelistCreator(artist, maintainer), "whitelist failed")

	_, err := reg.Mint("ipfs://piece-1", artist)
	assert.Nil(t, err, "mint failed")

	_, err = reg.Mint("ipfs://piece-1", artist)
	assert.Equal(t, fault.ErrUriAlreadyUsed, err, "wrong error")

	assert.True(t, reg.UriExists("ipfs://piece-1"), "uri missing")
	assetId, err := reg.OriginalAssetOfUri("ipfs://piece-1")
	assert.Nil(t, err, "uri lookup failed")
	assert.Equal(t, uint64(1), assetId, "wrong asset for uri")
}

func TestMintWithEditions(t *testing.T) {
	store, reg := setup(t)
	defer teardown(store)

	assert.Nil(t, reg.WhitelistCreator(artist, maintainer), "whitelist failed")

	originalId, editionIds, err := reg.MintWithEditions("ipfs://piece-2", 3, 500, artist)
	assert.Nil(t, err, "mint with editions failed")
	assert.Equal(t, uint64(1), originalId, "wrong original id")
	assert.Equal(t, []uint64{2, 3, 4}, editionIds, "wrong edition ids")

	original, err := reg.Asset(originalId)
	assert.Nil(t, err, "asset fetch failed")
	assert.Equal(t, uint64(0), original.SalePrice, "original must not be listed")

	seenUris := map[string]struct{}{original.Uri: {}}
	for _, editionId := range editionIds {
		edition, err := reg.Asset(editionId)
		assert.Nil(t, err, "asset fetch failed")
		assert.Equal(t, artist, edition.Creator, "wrong edition creator")
		assert.Equal(t, artist, edition.Owner, "wrong edition owner")
		assert.Equal(t, uint64(500), edition.SalePrice, "edition must be pre-listed")
		assert.True(t, reg.UriExists(edition.Uri), "edition uri missing from uri pool")

		_, duplicate := seenUris[edition.Uri]
		assert.False(t, duplicate, "edition uri collides")
		seenUris[edition.Uri] = struct{}{}
	}

	events := collectEvents()
	assert.Equal(t, 4, len(events), "one event per minted record expected")

	// a fresh mint cannot reuse an edition's derived uri
	edition, err := reg.Asset(editionIds[0])
	assert.Nil(t, err, "asset fetch failed")
	_, err = reg.Mint(edition.Uri, artist)
	assert.Equal(t, fault.ErrUriAlreadyUsed, err, "wrong error")
}

func TestAssetNotFound(t *testing.T) {
	store, reg := setup(t)
	defer teardown(store)

	_, err := reg.Asset(42)
	assert.Equal(t, fault.ErrAssetNotFound, err, "wrong error")

	_, err = reg.OwnerOf(42)
	assert.Equal(t, fault.ErrAssetNotFound, err, "wrong error")

	_, err = reg.ProvenanceOf(42)
	assert.Equal(t, fault.ErrAssetNotFound, err, "wrong error")

	_, err = reg.OriginalAssetOfUri("ipfs://nowhere")
	assert.Equal(t, fault.ErrAssetNotFound, err, "wrong error")
}

func TestProvenanceStartsAtMint(t *testing.T) {
	store, reg := setup(t)
	defer teardown(store)

	assert.Nil(t, reg.WhitelistCreator(artist, maintainer), "whitelist failed")

	assetId, err := reg.Mint("ipfs://piece-3", artist)
	assert.Nil(t, err, "mint failed")

	history, err := reg.ProvenanceOf(assetId)
	assert.Nil(t, err, "provenance fetch failed")
	assert.Equal(t, 1, len(history), "wrong provenance length")
	assert.Equal(t, identity.Zero, history[0].From, "mint provenance must come from zero")
	assert.Equal(t, artist, history[0].To, "wrong provenance recipient")
	assert.Equal(t, uint64(0), history[0].Price, "mint has no price")
}

func TestConcurrentMintsAllocateDistinctIds(t *testing.T) {
	store, reg := setup(t)
	defer teardown(store)

	assert.Nil(t, reg.WhitelistCreator(artist, maintainer), "whitelist failed")

	const workers = 8
	const mintsPerWorker = 25

	ids := make(chan uint64, workers*mintsPerWorker)
	start := make(chan struct{})

	wg := sync.WaitGroup{}
	for w := 0; w < workers; w += 1 {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			<-start
			for n := 0; n < mintsPerWorker; n += 1 {
				assetId, err := reg.Mint(fmt.Sprintf("ipfs://worker-%d/piece-%d", w, n), artist)
				if nil == err {
					ids <- assetId
				}
			}
		}(w)
	}
	close(start)
	wg.Wait()
	close(ids)

	seen := map[uint64]bool{}
	for assetId := range ids {
		assert.False(t, seen[assetId], "asset id allocated twice")
		seen[assetId] = true
	}
	assert.Equal(t, workers*mintsPerWorker, len(seen), "wrong mint count")
	assert.Equal(t, uint64(workers*mintsPerWorker), reg.AssetCount(), "wrong asset count")

	drainEvents()
}
