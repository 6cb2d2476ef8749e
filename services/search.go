package services

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/frankiejoetabarrino/punisher/models"
)

const (
	searchDebounceDelay = 500 * time.Millisecond
	searchMinRunes      = 3
)

// FoodLookup is the slice of FoodService the searcher needs.
type FoodLookup interface {
	Search(query string) ([]models.FoodItem, error)
}

// SearchUpdate is one delivery to the candidate list: either a fresh set
// of candidates for Query, or an error with the list cleared.
type SearchUpdate struct {
	Query      string
	Candidates []models.FoodItem
	Err        error
}

// DebouncedSearcher coalesces a stream of keystrokes into rate-limited
// catalog lookups. At most one timer is pending at a time; each
// keystroke stops the previous one. Every issued lookup carries a
// sequence number, and a response is delivered only while its sequence
// is still the newest, so a slow lookup can never overwrite the
// candidates of a query issued after it.
type DebouncedSearcher struct {
	lookup   FoodLookup
	sink     func(SearchUpdate)
	delay    time.Duration
	minRunes int

	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64
	closed bool
}

// NewDebouncedSearcher wires a searcher to its lookup and delivery sink.
// The sink is called from timer goroutines, serialized by the searcher's
// lock; it must not call back into the searcher.
func NewDebouncedSearcher(lookup FoodLookup, sink func(SearchUpdate)) *DebouncedSearcher {
	return &DebouncedSearcher{
		lookup:   lookup,
		sink:     sink,
		delay:    searchDebounceDelay,
		minRunes: searchMinRunes,
	}
}

// SetQuery feeds one keystroke's worth of input. Queries shorter than
// the minimum clear the candidate list immediately without a lookup;
// anything longer arms the quiet-period timer.
func (s *DebouncedSearcher) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if utf8.RuneCountInString(query) < s.minRunes {
		s.sink(SearchUpdate{Query: query})
		return
	}

	seq := s.seq
	s.timer = time.AfterFunc(s.delay, func() { s.run(query, seq) })
}

func (s *DebouncedSearcher) run(query string, seq uint64) {
	// The lookup itself runs unlocked; a newer keystroke is free to
	// supersede us while we wait on the network.
	items, err := s.lookup.Search(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || seq != s.seq {
		return // superseded; drop the late result
	}
	if err != nil {
		s.sink(SearchUpdate{Query: query, Err: err})
		return
	}
	s.sink(SearchUpdate{Query: query, Candidates: items})
}

// Close cancels any pending timer and suppresses all further
// deliveries. Safe to call more than once.
func (s *DebouncedSearcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
