// Package listquery filters, searches, sorts and paginates record snapshots.
// Functions here never mutate their input.
package listquery

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// MaxLimit caps any page size taken from a query string.
const MaxLimit = 100

// Filter keeps items whose field equals Want. An empty Want disables the filter.
type Filter[T any] struct {
	Want  string
	Field func(T) string
}

// FieldEquals builds an exact-match filter.
func FieldEquals[T any](want string, field func(T) string) Filter[T] {
	return Filter[T]{Want: want, Field: field}
}

// Page is an offset/limit window.
type Page struct {
	Limit  int
	Offset int
}

// Query describes one list request.
type Query[T any] struct {
	Filters      []Filter[T]
	Search       string
	SearchFields func(T) []string
	SortKey      func(T) time.Time
	Page         Page
}

// Result carries the requested page and the filtered count before pagination.
type Result[T any] struct {
	Items []T
	Total int
}

// Run applies filters, search, descending sort and pagination in that order.
func Run[T any](items []T, q Query[T]) Result[T] {
	matched := Apply(items, q.Filters...)
	matched = Search(matched, q.Search, q.SearchFields)
	if q.SortKey != nil {
		matched = SortByTimeDesc(matched, q.SortKey)
	}
	return Result[T]{
		Items: Paginate(matched, q.Page),
		Total: len(matched),
	}
}

// Apply returns the items that satisfy every enabled filter.
func Apply[T any](items []T, filters ...Filter[T]) []T {
	out := make([]T, 0, len(items))
outer:
	for _, item := range items {
		for _, f := range filters {
			if f.Want != "" && f.Field(item) != f.Want {
				continue outer
			}
		}
		out = append(out, item)
	}
	return out
}

// Search keeps items where any field contains term, ignoring case.
// An empty term keeps everything.
func Search[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" || fields == nil {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	needle := strings.ToLower(term)
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, value := range fields(item) {
			if strings.Contains(strings.ToLower(value), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// SortByTimeDesc returns a copy ordered newest first. Equal timestamps keep their input order.
func SortByTimeDesc[T any](items []T, key func(T) time.Time) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]).After(key(out[j]))
	})
	return out
}

// Paginate returns items[offset : offset+limit], clamped to bounds. The result is never nil.
func Paginate[T any](items []T, p Page) []T {
	if p.Offset >= len(items) || p.Limit <= 0 || p.Offset < 0 {
		return []T{}
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-p.Offset)
	copy(out, items[p.Offset:end])
	return out
}

// CountBy tallies items by key.
func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// Distinct returns the distinct keys in first-seen order.
func Distinct[T any, K comparable](items []T, key func(T) K) []K {
	seen := make(map[K]struct{})
	out := make([]K, 0)
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// CountSince counts items whose timestamp is strictly after cutoff.
func CountSince[T any](items []T, ts func(T) time.Time, cutoff time.Time) int {
	n := 0
	for _, item := range items {
		if ts(item).After(cutoff) {
			n++
		}
	}
	return n
}

// ParsePage reads limit/offset query values. Missing, malformed or negative
// values fall back to defaultLimit and 0; limit is capped at MaxLimit.
func ParsePage(limit, offset string, defaultLimit int) Page {
	p := Page{Limit: defaultLimit}
	if n, err := strconv.Atoi(strings.TrimSpace(limit)); err == nil && n >= 0 {
		p.Limit = n
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if n, err := strconv.Atoi(strings.TrimSpace(offset)); err == nil && n >= 0 {
		p.Offset = n
	}
	return p
}
