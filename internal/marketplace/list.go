// Package marketplace holds the browsing state for the order list: paging,
// filters, and selection that follows the visible page.
package marketplace

import (
	"context"
	"sync"

	"freight_marketplace/internal/client"
)

// Filters is the optional filter set over the order list. Zero values mean
// "not filtered".
type Filters struct {
	AvailableDate string
	TimeWindow    string
	Pickup        string
	Delivery      string
	Equipment     string
	Shipper       string
}

// FetchFunc loads one page of orders. *client.Client.ListOrders satisfies it.
type FetchFunc func(ctx context.Context, params client.ListOrdersParams) (*client.OrderPage, error)

// List tracks one order-list view. Any query or filter change resets to page
// one; after each load the selection keeps the previous order when still
// visible, falls back to the first row, or clears on an empty page. Loads
// are tagged with a generation so a slow stale response cannot overwrite a
// newer page.
type List struct {
	fetch    FetchFunc
	pageSize int

	mu         sync.Mutex
	gen        uint64
	page       int
	query      string
	filters    Filters
	total      int
	items      []client.OrderListItem
	selectedID uint
}

// NewList builds a list controller with the given page size (10 when not
// positive).
func NewList(fetch FetchFunc, pageSize int) *List {
	if pageSize < 1 {
		pageSize = 10
	}
	return &List{fetch: fetch, pageSize: pageSize, page: 1}
}

// SetQuery updates the free-text query. A changed query resets to page one.
func (l *List) SetQuery(q string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if q == l.query {
		return
	}
	l.query = q
	l.page = 1
}

// SetFilters replaces the filter set. A changed set resets to page one.
func (l *List) SetFilters(f Filters) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f == l.filters {
		return
	}
	l.filters = f
	l.page = 1
}

// Page returns the current 1-based page number.
func (l *List) Page() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

// TotalPages derives the page count from the last load, at least 1.
func (l *List) TotalPages() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalPagesLocked()
}

func (l *List) totalPagesLocked() int {
	pages := (l.total + l.pageSize - 1) / l.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// CanNext reports whether a further page exists; the UI disables its Next
// control when false.
func (l *List) CanNext() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page < l.totalPagesLocked()
}

// NextPage advances one page; no-op at the last page.
func (l *List) NextPage() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.page < l.totalPagesLocked() {
		l.page++
	}
}

// PrevPage goes back one page; no-op at page one.
func (l *List) PrevPage() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.page > 1 {
		l.page--
	}
}

// Items returns the currently visible rows.
func (l *List) Items() []client.OrderListItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]client.OrderListItem, len(l.items))
	copy(out, l.items)
	return out
}

// SelectedID returns the selected order id, 0 when nothing is selected.
func (l *List) SelectedID() uint {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selectedID
}

// Select picks an order from the visible page; unknown ids are ignored.
func (l *List) Select(id uint) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, item := range l.items {
		if item.ID == id {
			l.selectedID = id
			return
		}
	}
}

// Refresh loads the current page. A failed fetch empties the visible list
// and clears the selection rather than keeping stale rows.
func (l *List) Refresh(ctx context.Context) error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	params := client.ListOrdersParams{
		Q:             l.query,
		Page:          l.page,
		PageSize:      l.pageSize,
		AvailableDate: l.filters.AvailableDate,
		TimeWindow:    l.filters.TimeWindow,
		Pickup:        l.filters.Pickup,
		Delivery:      l.filters.Delivery,
		Equipment:     l.filters.Equipment,
		Shipper:       l.filters.Shipper,
	}
	l.mu.Unlock()

	page, err := l.fetch(ctx, params)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		// Superseded by a newer refresh.
		return nil
	}
	if err != nil {
		l.items = nil
		l.total = 0
		l.selectedID = 0
		return err
	}

	l.items = page.Items
	l.total = page.Total

	stillVisible := false
	for _, item := range l.items {
		if item.ID == l.selectedID {
			stillVisible = true
			break
		}
	}
	if !stillVisible {
		if len(l.items) > 0 {
			l.selectedID = l.items[0].ID
		} else {
			l.selectedID = 0
		}
	}
	return nil
}
