// Package memory provides map backed repositories with store-assigned ids.
// Records are copied on the way in and out so callers never share state
// with the store.
package memory

import (
	"sort"
	"sync"
)

type table[T any] struct {
	mu    sync.RWMutex
	seq   uint64
	rows  map[uint64]T
	id    func(*T) *uint64
	clone func(T) T

	// prepare runs on the caller's row after the id is assigned.
	prepare func(*T)
}

func newTable[T any](id func(*T) *uint64, clone func(T) T) *table[T] {
	return &table[T]{rows: make(map[uint64]T), id: id, clone: clone}
}

// scan returns copies of the rows accepted by keep, ordered by id.
func (t *table[T]) scan(keep func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]uint64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		row := t.rows[id]
		if keep == nil || keep(&row) {
			out = append(out, t.clone(row))
		}
	}
	return out
}

func (t *table[T]) get(id uint64) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	c := t.clone(row)
	return &c
}

// save assigns the next id to rows without one and stores a copy.
func (t *table[T]) save(row *T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.id(row)
	if *id == 0 {
		t.seq++
		*id = t.seq
	} else if *id > t.seq {
		t.seq = *id
	}
	if t.prepare != nil {
		t.prepare(row)
	}
	t.rows[*id] = t.clone(*row)
}

func (t *table[T]) delete(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.rows, id)
}

func (t *table[T]) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = make(map[uint64]T)
}

func (t *table[T]) exists(id uint64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.rows[id]
	return ok
}
