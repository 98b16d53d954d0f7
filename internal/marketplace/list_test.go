package marketplace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight_marketplace/internal/client"
)

func items(ids ...uint) []client.OrderListItem {
	out := make([]client.OrderListItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, client.OrderListItem{ID: id})
	}
	return out
}

// pageFetch serves a fixed total and slices item ids per requested page.
func pageFetch(total int, pages map[int][]client.OrderListItem) FetchFunc {
	return func(_ context.Context, params client.ListOrdersParams) (*client.OrderPage, error) {
		return &client.OrderPage{
			Items:    pages[params.Page],
			Total:    total,
			Page:     params.Page,
			PageSize: params.PageSize,
		}, nil
	}
}

func TestTotalPages(t *testing.T) {
	l := NewList(pageFetch(25, map[int][]client.OrderListItem{1: items(1)}), 10)
	require.NoError(t, l.Refresh(context.Background()))

	// total=25, page_size=10 -> 3 pages
	assert.Equal(t, 3, l.TotalPages())
	assert.True(t, l.CanNext())
}

func TestNextPageClampedAtLastPage(t *testing.T) {
	l := NewList(pageFetch(25, map[int][]client.OrderListItem{1: items(1), 2: items(2), 3: items(3)}), 10)
	require.NoError(t, l.Refresh(context.Background()))

	l.NextPage()
	l.NextPage()
	assert.Equal(t, 3, l.Page())
	assert.False(t, l.CanNext())

	l.NextPage()
	assert.Equal(t, 3, l.Page())
}

func TestPrevPageClampedAtFirst(t *testing.T) {
	l := NewList(pageFetch(5, nil), 10)
	l.PrevPage()
	assert.Equal(t, 1, l.Page())
}

func TestQueryChangeResetsPage(t *testing.T) {
	l := NewList(pageFetch(30, map[int][]client.OrderListItem{1: items(1), 2: items(2)}), 10)
	require.NoError(t, l.Refresh(context.Background()))
	l.NextPage()
	require.Equal(t, 2, l.Page())

	l.SetQuery("Cleveland")
	assert.Equal(t, 1, l.Page())

	// Same query again: no reset
	l.NextPage()
	l.SetQuery("Cleveland")
	assert.Equal(t, 2, l.Page())
}

func TestFilterChangeResetsPage(t *testing.T) {
	l := NewList(pageFetch(30, map[int][]client.OrderListItem{1: items(1), 2: items(2)}), 10)
	require.NoError(t, l.Refresh(context.Background()))
	l.NextPage()
	require.Equal(t, 2, l.Page())

	l.SetFilters(Filters{Equipment: "Flatbed"})
	assert.Equal(t, 1, l.Page())
}

func TestSelectionFollowsVisiblePage(t *testing.T) {
	pages := map[int][]client.OrderListItem{1: items(9, 8, 7)}
	l := NewList(pageFetch(3, pages), 10)
	require.NoError(t, l.Refresh(context.Background()))

	// Defaults to the first item
	assert.Equal(t, uint(9), l.SelectedID())

	l.Select(8)
	assert.Equal(t, uint(8), l.SelectedID())

	// Selection kept while still visible
	require.NoError(t, l.Refresh(context.Background()))
	assert.Equal(t, uint(8), l.SelectedID())

	// Gone from the page: fall back to the first item
	pages[1] = items(5, 4)
	require.NoError(t, l.Refresh(context.Background()))
	assert.Equal(t, uint(5), l.SelectedID())

	// Empty page clears selection
	pages[1] = nil
	require.NoError(t, l.Refresh(context.Background()))
	assert.Zero(t, l.SelectedID())
}

func TestSelectIgnoresUnknownID(t *testing.T) {
	l := NewList(pageFetch(2, map[int][]client.OrderListItem{1: items(2, 1)}), 10)
	require.NoError(t, l.Refresh(context.Background()))

	l.Select(99)
	assert.Equal(t, uint(2), l.SelectedID())
}

func TestRefreshErrorEmptiesList(t *testing.T) {
	calls := 0
	fetch := func(_ context.Context, params client.ListOrdersParams) (*client.OrderPage, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("backend down")
		}
		return &client.OrderPage{Items: items(3, 2, 1), Total: 3, Page: 1, PageSize: 10}, nil
	}

	l := NewList(fetch, 10)
	require.NoError(t, l.Refresh(context.Background()))
	require.Equal(t, uint(3), l.SelectedID())

	err := l.Refresh(context.Background())
	require.Error(t, err)
	assert.Empty(t, l.Items())
	assert.Zero(t, l.SelectedID())
	assert.Equal(t, 1, l.TotalPages())
}

func TestRefreshPassesQueryAndFilters(t *testing.T) {
	var got client.ListOrdersParams
	fetch := func(_ context.Context, params client.ListOrdersParams) (*client.OrderPage, error) {
		got = params
		return &client.OrderPage{Page: params.Page, PageSize: params.PageSize}, nil
	}

	l := NewList(fetch, 25)
	l.SetQuery("steel")
	l.SetFilters(Filters{Equipment: "Flatbed", Pickup: "Cleveland", TimeWindow: "morning"})
	require.NoError(t, l.Refresh(context.Background()))

	assert.Equal(t, "steel", got.Q)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 25, got.PageSize)
	assert.Equal(t, "Flatbed", got.Equipment)
	assert.Equal(t, "Cleveland", got.Pickup)
	assert.Equal(t, "morning", got.TimeWindow)
}
