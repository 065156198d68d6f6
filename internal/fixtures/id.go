// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package fixtures

import (
	"strconv"
	"unicode/utf8"
)

// baseID builds "<date>_<time>_<pairing fragment>". Two fixtures sharing
// date, time and the first n runes of their pairing get the same base.
func baseID(date, clock, pairing string, n int) string {
	frag := pairing
	if utf8.RuneCountInString(frag) > n {
		r := []rune(frag)
		frag = string(r[:n])
	}
	return date + "_" + clock + "_" + frag
}

// idAllocator hands out unique IDs within one parse. Repeated bases get
// "~2", "~3", ... in input order, so re-parsing identical text reproduces
// the same IDs.
type idAllocator struct {
	seen   map[string]int
	issued map[string]struct{}
}

func newIDAllocator() *idAllocator {
	return &idAllocator{
		seen:   make(map[string]int),
		issued: make(map[string]struct{}),
	}
}

func (a *idAllocator) next(base string) string {
	for {
		a.seen[base]++
		id := base
		if n := a.seen[base]; n > 1 {
			id = base + "~" + strconv.Itoa(n)
		}
		if _, taken := a.issued[id]; !taken {
			a.issued[id] = struct{}{}
			return id
		}
	}
}
