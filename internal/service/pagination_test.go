// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/go-site-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawItems(items ...string) []json.RawMessage {
	result := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		result = append(result, json.RawMessage(item))
	}
	return result
}

// pagesFetcher serves pages by index and records the requested offsets.
func pagesFetcher(pages []models.Page, offsets *[]uint64) pageFetcher {
	call := 0
	return func(_ context.Context, offset uint64) (models.Page, error) {
		*offsets = append(*offsets, offset)
		if call >= len(pages) {
			return models.Page{}, nil
		}
		page := pages[call]
		call++
		return page, nil
	}
}

func TestDrainPages_SinglePage(t *testing.T) {
	var offsets []uint64
	fetch := pagesFetcher([]models.Page{
		{Items: rawItems(`{"id":1}`, `{"id":2}`)},
	}, &offsets)

	items, err := drainPages(context.Background(), fetch)

	require.NoError(t, err)
	assert.Equal(t, rawItems(`{"id":1}`, `{"id":2}`), items)
	assert.Equal(t, []uint64{0}, offsets)
}

func TestDrainPages_ConcatenatesInOrder(t *testing.T) {
	var offsets []uint64
	fetch := pagesFetcher([]models.Page{
		{Items: rawItems(`1`, `2`), HasNext: true, Next: 2},
		{Items: rawItems(`3`, `4`), HasNext: true, Next: 4},
		{Items: rawItems(`5`)},
	}, &offsets)

	items, err := drainPages(context.Background(), fetch)

	require.NoError(t, err)
	assert.Equal(t, rawItems(`1`, `2`, `3`, `4`, `5`), items)
	assert.Equal(t, []uint64{0, 2, 4}, offsets)
}

func TestDrainPages_NoItems_ReturnsEmptyNonNilSlice(t *testing.T) {
	var offsets []uint64
	fetch := pagesFetcher([]models.Page{{}}, &offsets)

	items, err := drainPages(context.Background(), fetch)

	require.NoError(t, err)
	require.NotNil(t, items)
	assert.Empty(t, items)

	body, err := json.Marshal(items)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

func TestDrainPages_EmptyPageStopsEvenWithHasNext(t *testing.T) {
	var offsets []uint64
	fetch := pagesFetcher([]models.Page{
		{Items: rawItems(`1`), HasNext: true, Next: 1},
		{HasNext: true, Next: 2},
		{Items: rawItems(`never`)},
	}, &offsets)

	items, err := drainPages(context.Background(), fetch)

	require.NoError(t, err)
	assert.Equal(t, rawItems(`1`), items)
	assert.Equal(t, []uint64{0, 1}, offsets)
}

func TestDrainPages_ErrorDropsPartialResult(t *testing.T) {
	wantErr := errors.New("connection reset")
	call := 0
	fetch := func(_ context.Context, offset uint64) (models.Page, error) {
		call++
		if call == 2 {
			return models.Page{}, wantErr
		}
		return models.Page{Items: rawItems(`1`), HasNext: true, Next: offset + 1}, nil
	}

	items, err := drainPages(context.Background(), fetch)

	require.ErrorIs(t, err, wantErr)
	assert.Nil(t, items)
	assert.Equal(t, 2, call)
}

func TestDrainPages_FirstPageError(t *testing.T) {
	wantErr := errors.New("boom")
	fetch := func(context.Context, uint64) (models.Page, error) {
		return models.Page{}, wantErr
	}

	items, err := drainPages(context.Background(), fetch)

	require.ErrorIs(t, err, wantErr)
	assert.Nil(t, items)
}

func TestRepositoryPages_AppliesOffsetToQuery(t *testing.T) {
	base := models.Query{Limit: models.DefaultPageSize, CollectionID: "c1"}

	var got []models.Query
	find := func(_ context.Context, q models.Query) (models.Page, error) {
		got = append(got, q)
		return models.Page{}, nil
	}

	fetch := repositoryPages(find, base)
	_, _ = fetch(context.Background(), 0)
	_, _ = fetch(context.Background(), 100)

	require.Len(t, got, 2)
	assert.Equal(t, uint64(0), got[0].Offset)
	assert.Equal(t, uint64(100), got[1].Offset)
	for _, q := range got {
		assert.Equal(t, models.DefaultPageSize, q.Limit)
		assert.Equal(t, "c1", q.CollectionID)
	}
	assert.Equal(t, uint64(0), base.Offset, "base query must not be mutated")
}
