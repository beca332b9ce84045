// Package hashtable implements an open-addressing map from non-negative int32
// keys to int values.
//
// Slots are probed with triangular steps (+1, +2, +3, ...), which visits every
// slot of a power-of-two table exactly once. Deleted slots become tombstones
// that lookups probe past and inserts reuse. The table doubles when the live
// count reaches 3/4 of capacity and halves when it falls under a quarter of
// that threshold.
//
// A Table is not safe for concurrent use.
package hashtable

import (
	"fmt"
	"iter"
)

const (
	// MinCapacity is the smallest number of slots a Table ever has.
	MinCapacity = 16

	emptyKey     int32 = -1
	tombstoneKey int32 = -2
)

// Table maps non-negative int32 keys to int values. The zero value is not
// usable; create tables with New.
type Table struct {
	keys      []int32
	values    []int
	size      int
	tombs     int
	threshold int
}

// New returns an empty table sized for roughly hint entries. The capacity is
// hint rounded up to a power of two, never below MinCapacity.
func New(hint int) *Table {
	t := &Table{}
	t.alloc(roundCapacity(hint))
	return t
}

// Len returns the number of live entries.
func (t *Table) Len() int { return t.size }

// Cap returns the number of slots.
func (t *Table) Cap() int { return len(t.keys) }

// Get returns the value stored for key.
func (t *Table) Get(key int32) (int, bool) {
	checkKey(key)
	mask := len(t.keys) - 1
	idx := int(hash(key)) & mask
	for step := 1; step <= len(t.keys); step++ {
		switch t.keys[idx] {
		case key:
			return t.values[idx], true
		case emptyKey:
			return 0, false
		}
		idx = (idx + step) & mask
	}
	return 0, false
}

// Set stores val for key, replacing any previous value.
func (t *Table) Set(key int32, val int) {
	checkKey(key)
	if t.size >= t.threshold {
		t.rehash(len(t.keys) * 2)
	} else if t.size+t.tombs >= t.threshold {
		t.rehash(len(t.keys))
	}

	mask := len(t.keys) - 1
	idx := int(hash(key)) & mask
	tomb := -1
	for step := 1; step <= len(t.keys); step++ {
		switch t.keys[idx] {
		case key:
			t.values[idx] = val
			return
		case emptyKey:
			if tomb < 0 {
				tomb = idx
			} else {
				t.tombs--
			}
			t.keys[tomb] = key
			t.values[tomb] = val
			t.size++
			return
		case tombstoneKey:
			if tomb < 0 {
				tomb = idx
			}
		}
		idx = (idx + step) & mask
	}
	// Unreachable while the load threshold keeps an empty slot around.
	panic("hashtable: no free slot")
}

// Remove deletes key. Removing an absent key is a no-op.
func (t *Table) Remove(key int32) {
	checkKey(key)
	if t.size < t.threshold/4 && len(t.keys) > MinCapacity {
		t.rehash(len(t.keys) / 2)
	}

	mask := len(t.keys) - 1
	idx := int(hash(key)) & mask
	for step := 1; step <= len(t.keys); step++ {
		switch t.keys[idx] {
		case key:
			t.keys[idx] = tombstoneKey
			t.values[idx] = 0
			t.size--
			t.tombs++
			return
		case emptyKey:
			return
		}
		idx = (idx + step) & mask
	}
}

// All yields every live entry in slot order.
func (t *Table) All() iter.Seq2[int32, int] {
	return func(yield func(int32, int) bool) {
		for i, k := range t.keys {
			if k < 0 {
				continue
			}
			if !yield(k, t.values[i]) {
				return
			}
		}
	}
}

func (t *Table) alloc(capacity int) {
	t.keys = make([]int32, capacity)
	t.values = make([]int, capacity)
	for i := range t.keys {
		t.keys[i] = emptyKey
	}
	t.size = 0
	t.tombs = 0
	t.threshold = capacity * 3 / 4
}

// rehash rebuilds the table at the given capacity, dropping tombstones.
func (t *Table) rehash(capacity int) {
	keys, values := t.keys, t.values
	t.alloc(max(capacity, MinCapacity))
	mask := len(t.keys) - 1
	for i, key := range keys {
		if key < 0 {
			continue
		}
		idx := int(hash(key)) & mask
		for step := 1; t.keys[idx] != emptyKey; step++ {
			idx = (idx + step) & mask
		}
		t.keys[idx] = key
		t.values[idx] = values[i]
		t.size++
	}
}

func roundCapacity(hint int) int {
	capacity := MinCapacity
	for capacity < hint {
		capacity <<= 1
	}
	return capacity
}

func checkKey(key int32) {
	if key < 0 {
		panic(fmt.Sprintf("hashtable: negative key %d", key))
	}
}
