// Package dedupe remembers which player records a batch has already
// accepted, so duplicate rows across input files are evaluated once.
package dedupe

import (
	"container/list"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/okian/cooperstown/internal/domain/model"
)

const defaultMaxSize = 50_000

// Deduper is a concurrency-safe set of keys with optional FIFO eviction.
type Deduper struct {
	mu      sync.Mutex
	seen    map[string]*list.Element
	order   *list.List
	maxSize int
}

// New creates a Deduper.
func New(opts ...Option) *Deduper {
	d := &Deduper{maxSize: defaultMaxSize}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[string]*list.Element)
	d.order = list.New()
	return d
}

// Key identifies a player record. The ID wins when present; otherwise the
// sport, normalized name and debut season are combined.
func Key(p model.Player) string {
	if p.ID != "" {
		return p.ID
	}
	debut := 0
	for _, s := range p.Seasons {
		if debut == 0 || s.Season < debut {
			debut = s.Season
		}
	}
	name := strings.Join(strings.Fields(strings.ToLower(p.Name)), " ")
	return fmt.Sprintf("%s|%s|%d", strings.ToLower(p.Sport), name, debut)
}

// SeenAndRecord reports whether key was already recorded, recording it
// if not.
func (d *Deduper) SeenAndRecord(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[key]; ok {
		return true
	}
	if d.maxSize > 0 && d.order.Len() >= d.maxSize {
		oldest := d.order.Front()
		d.order.Remove(oldest)
		delete(d.seen, oldest.Value.(string))
	}
	d.seen[key] = d.order.PushBack(key)
	return false
}

// Unrecord forgets key so it can be accepted again, e.g. after the record
// failed validation downstream.
func (d *Deduper) Unrecord(_ context.Context, key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if el, ok := d.seen[key]; ok {
		d.order.Remove(el)
		delete(d.seen, key)
	}
}

// Size returns the number of remembered keys.
func (d *Deduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.order.Len()
}
