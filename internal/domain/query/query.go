package query

import (
	"strconv"
	"strings"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPageNumber keeps (Number-1)*Size far from int overflow.
	MaxPageNumber = 1_000_000
)

type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	n := min(max(p.Number, 1), MaxPageNumber)
	s := min(max(p.Size, 0), MaxPageSize)
	return (n - 1) * s
}

// NewPage parses raw query values, clamping to sane bounds.
func NewPage(number, size string) Page {
	n, _ := strconv.Atoi(strings.TrimSpace(number))
	if n <= 0 {
		n = 1
	}
	if n > MaxPageNumber {
		n = MaxPageNumber
	}
	s, _ := strconv.Atoi(strings.TrimSpace(size))
	if s <= 0 {
		s = DefaultPageSize
	}
	if s > MaxPageSize {
		s = MaxPageSize
	}
	return Page{Number: n, Size: s}
}

type Sort struct {
	Column string
	Desc   bool
}

func (s Sort) String() string {
	if s.Desc {
		return s.Column + " DESC"
	}
	return s.Column + " ASC"
}

// ParseSort maps "campo" or "-campo" onto an allow-listed column. Unknown
// fields fall back to def.
func ParseSort(raw string, allowed map[string]string, def Sort) Sort {
	raw = strings.TrimSpace(raw)
	desc := strings.HasPrefix(raw, "-")
	key := strings.TrimPrefix(raw, "-")
	col, ok := allowed[key]
	if !ok {
		return def
	}
	return Sort{Column: col, Desc: desc}
}

type Options struct {
	Page Page
	Sort Sort
}

type Result[T any] struct {
	Items []T
	Total int64
}
