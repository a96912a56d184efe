// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainLink_JSONFieldNames(t *testing.T) {
	b, err := json.Marshal(ChainLink{ID: "l", Name: "n", Description: "d", Password: "p", IV: "i", ChainID: "c"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"l","name":"n","description":"d","password":"p","iv":"i","chainId":"c"}`, string(b))
}

func TestChainLink_SameSecret(t *testing.T) {
	a := ChainLink{Password: "p", Description: "d", IV: "1"}
	assert.True(t, a.SameSecret(ChainLink{Password: "p", Description: "d", IV: "2"}))
	assert.False(t, a.SameSecret(ChainLink{Password: "x", Description: "d"}))
	assert.False(t, a.SameSecret(ChainLink{Password: "p", Description: "x"}))
}

func TestSyncReport_MergeAndErr(t *testing.T) {
	var r SyncReport
	assert.NoError(t, r.Err())
	assert.False(t, r.Changed())

	e1 := errors.New("one")
	r.Merge(SyncReport{LinksCreated: 2, Unchanged: 1, Failures: []error{e1}})
	r.Merge(SyncReport{ChainsCreated: 1, LinksUpdated: 1})

	assert.Equal(t, 1, r.ChainsCreated)
	assert.Equal(t, 2, r.LinksCreated)
	assert.Equal(t, 1, r.LinksUpdated)
	assert.Equal(t, 1, r.Unchanged)
	assert.True(t, r.Changed())
	assert.ErrorIs(t, r.Err(), e1)
}

func TestNewBuildInfo_Defaults(t *testing.T) {
	bi := NewBuildInfo("v1", "", "")
	assert.Equal(t, BuildInfo{Version: "v1", Date: "N/A", Commit: "N/A"}, bi)
}
