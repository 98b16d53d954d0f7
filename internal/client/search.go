package client

import (
	"context"
	"strings"
	"sync"
	"time"
)

// DefaultDebounce is the input-inactivity interval before a query is issued.
const DefaultDebounce = 250 * time.Millisecond

// SearchFunc performs one customer query.
type SearchFunc func(ctx context.Context, query string) ([]Customer, error)

// SearchResult is delivered to the searcher callback.
type SearchResult struct {
	Query string
	Items []Customer
	Err   error
}

// Searcher debounces search-as-you-type customer lookups. Each SetQuery
// bumps a generation counter; a response tagged with an old generation is
// dropped, so a slow earlier query can never overwrite a newer result.
type Searcher struct {
	search   SearchFunc
	onResult func(SearchResult)
	debounce time.Duration

	mu     sync.Mutex
	gen    uint64
	timer  *time.Timer
	closed bool
}

// NewSearcher builds a searcher delivering results through onResult. The
// callback runs on the searcher's goroutine for debounced queries and inline
// for the empty-query short-circuit.
func NewSearcher(search SearchFunc, onResult func(SearchResult)) *Searcher {
	return &Searcher{
		search:   search,
		onResult: onResult,
		debounce: DefaultDebounce,
	}
}

// SetDebounce overrides the debounce interval. Call before the first SetQuery.
func (s *Searcher) SetDebounce(d time.Duration) {
	s.debounce = d
}

// SetQuery records the latest input. An empty query clears results without a
// network call; anything else is issued after the debounce interval unless
// superseded first.
func (s *Searcher) SetQuery(query string) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if query == "" {
		s.mu.Unlock()
		s.onResult(SearchResult{Query: ""})
		return
	}
	s.timer = time.AfterFunc(s.debounce, func() { s.run(gen, query) })
	s.mu.Unlock()
}

func (s *Searcher) run(gen uint64, query string) {
	items, err := s.search(context.Background(), query)

	s.mu.Lock()
	stale := s.closed || gen != s.gen
	s.mu.Unlock()
	if stale {
		return
	}
	s.onResult(SearchResult{Query: query, Items: items, Err: err})
}

// Close stops any pending query and silences late responses.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
