package glyphs

import (
	"context"
	"errors"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gogpu/glyphs/segment"
)

// entry holds the cache state of one font stack. Entries and their
// sub-maps are created lazily on first request for the stack and live for
// the lifetime of the Manager.
type entry struct {
	// glyphs maps segment ids to resolved glyphs. A nil value records
	// confirmed absence from the remote source, distinguishable from
	// "not yet looked up" (key missing).
	glyphs map[string]*Glyph

	// requests holds the pending fetch per range. At most one fetch is
	// in flight per range at a time.
	requests map[Range]*rangeRequest

	// ranges marks ranges with definitive coverage: once true, every id
	// in the range has a stable present/absent classification and the
	// range is never fetched again.
	ranges map[Range]bool

	// Local synthesizers, created lazily per resolution tier and reused
	// (including their scratch buffers) for the lifetime of the entry.
	synth1x Synthesizer
	synth2x Synthesizer
}

// rangeRequest is one in-flight range fetch, shared by every lookup that
// hits the same cold range. The result fields are written exactly once
// before done is closed.
type rangeRequest struct {
	done chan struct{}
	err  error
}

// Manager resolves segment ids to glyphs, one independent cache namespace
// per font stack.
//
// Resolution order per id: local synthesis (when configured and the id's
// leading codepoint is in an eligible script block), then the resolved
// cache, then a coalesced remote fetch of the id's 256-codepoint range.
// Locally synthesized glyphs never touch the range bookkeeping, and an
// eligible id is re-synthesized on every lookup rather than trusting a
// stale remote-cached value.
//
// Manager is safe for concurrent use.
type Manager struct {
	cfg    config
	tables *segment.Tables

	mu      sync.Mutex
	entries map[string]*entry
}

// NewManager creates a Manager over the given property tables.
//
// The tables provide the script-block lookup used by the local-synthesis
// eligibility check; build them once at startup with segment.BuildTables
// and share the handle.
func NewManager(tables *segment.Tables, opts ...Option) *Manager {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.factory == nil {
		cfg.factory = sdfFactory(cfg.provider, cfg.fontSize)
	}
	return &Manager{
		cfg:     cfg,
		tables:  tables,
		entries: make(map[string]*entry),
	}
}

// GetGlyphs resolves every requested (stack, id) pair and joins the
// results into a map keyed by stack, then id. A nil glyph records
// confirmed absence from the remote source; absence is not an error.
//
// Pairs are resolved concurrently; lookups for ids in the same cold range
// share a single fetch. Every returned bitmap is an independent copy,
// never an alias into the cache's internal storage.
func (m *Manager) GetGlyphs(ctx context.Context, requests map[string][]string) (map[string]map[string]*Glyph, error) {
	type pair struct {
		stack, id string
	}
	var pairs []pair
	for stack, ids := range requests {
		for _, id := range ids {
			pairs = append(pairs, pair{stack, id})
		}
	}

	results := make([]*Glyph, len(pairs))
	errs := make([]error, len(pairs))
	var wg sync.WaitGroup
	for i, p := range pairs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = m.resolve(ctx, p.stack, p.id)
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	out := make(map[string]map[string]*Glyph, len(requests))
	for i, p := range pairs {
		byID := out[p.stack]
		if byID == nil {
			byID = make(map[string]*Glyph)
			out[p.stack] = byID
		}
		byID[p.id] = results[i]
	}
	return out, nil
}

// entryLocked returns the cache entry for stack, creating it lazily.
// The manager mutex must be held.
func (m *Manager) entryLocked(stack string) *entry {
	e := m.entries[stack]
	if e == nil {
		e = &entry{
			glyphs:   make(map[string]*Glyph),
			requests: make(map[Range]*rangeRequest),
			ranges:   make(map[Range]bool),
		}
		m.entries[stack] = e
	}
	return e
}

// resolve produces the glyph for one (stack, id) pair.
func (m *Manager) resolve(ctx context.Context, stack, id string) (*Glyph, error) {
	m.mu.Lock()
	e := m.entryLocked(stack)

	// An empty or whitespace-only id denotes no visible glyph; report
	// whatever is cached without touching the range bookkeeping.
	if strings.TrimSpace(id) == "" {
		g := e.glyphs[id]
		m.mu.Unlock()
		return g.Clone(), nil
	}

	lead, _ := utf8.DecodeRuneInString(id)

	// Local synthesis takes precedence over any cached remote value, so
	// an eligible id is always freshly drawn.
	if block, ok := m.localBlock(lead); ok {
		syn, err := m.synthesizerLocked(e, stack, block.Dense)
		if err != nil {
			m.mu.Unlock()
			return nil, err
		}
		m.mu.Unlock()

		g, err := syn.Synthesize(id)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		e.glyphs[id] = g
		m.mu.Unlock()

		Logger().Debug("glyphs: synthesized locally",
			"stack", stack, "id", id, "block", block.Name)
		return g.Clone(), nil
	}

	if g, ok := e.glyphs[id]; ok {
		m.mu.Unlock()
		return g.Clone(), nil
	}

	rng := RangeOf(lead)
	if !rng.Valid() {
		m.mu.Unlock()
		return nil, ErrRangeOverflow
	}
	if m.cfg.sourceURL == "" || m.cfg.loader == nil {
		m.mu.Unlock()
		return nil, ErrNoGlyphSource
	}

	// The range is definitive but the id was not in the payload: record
	// explicit absence so repeated lookups stay stable.
	if e.ranges[rng] {
		e.glyphs[id] = nil
		m.mu.Unlock()
		return nil, nil
	}

	req := e.requests[rng]
	if req == nil {
		req = &rangeRequest{done: make(chan struct{})}
		e.requests[rng] = req
		go m.fetchRange(stack, e, rng, req)
	}
	m.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-req.done:
	}
	if req.err != nil {
		return nil, req.err
	}

	m.mu.Lock()
	g, ok := e.glyphs[id]
	if !ok {
		e.glyphs[id] = nil // the resolved range does not carry this id
		g = nil
	}
	m.mu.Unlock()
	return g.Clone(), nil
}

// fetchRange performs the single fetch for a cold range and publishes the
// result to every waiter. The fetch is shared, so it is deliberately not
// tied to any one caller's context; waiters honor their own contexts.
func (m *Manager) fetchRange(stack string, e *entry, rng Range, req *rangeRequest) {
	log := Logger()
	log.Debug("glyphs: fetching range", "stack", stack, "range", rng)

	fetched, err := m.cfg.loader.Load(context.Background(), stack, rng, m.cfg.sourceURL)

	m.mu.Lock()
	delete(e.requests, rng)
	if err != nil {
		// Not cached as a permanent failure; the next lookup for this
		// range retries from scratch.
		req.err = &FetchError{Stack: stack, Range: rng, Err: err}
	} else {
		// Merged wholesale; resolution consults local synthesis before
		// the cache, so a remote value for an eligible id is inert.
		for id, g := range fetched {
			e.glyphs[id] = g
		}
		e.ranges[rng] = true
	}
	m.mu.Unlock()
	close(req.done)

	if err != nil {
		log.Warn("glyphs: range fetch failed",
			"stack", stack, "range", rng, "error", err)
	}
}

// localBlock reports the eligible script block of r, if local synthesis
// is configured and r falls in one.
func (m *Manager) localBlock(r rune) (segment.Block, bool) {
	if m.cfg.localFamily == "" {
		return segment.Block{}, false
	}
	return m.tables.LocalBlock(r)
}

// synthesizerLocked returns the entry's synthesizer for the given tier,
// building it on first use. The manager mutex must be held.
func (m *Manager) synthesizerLocked(e *entry, stack string, double bool) (Synthesizer, error) {
	slot := &e.synth1x
	if double {
		slot = &e.synth2x
	}
	if *slot == nil {
		syn, err := m.cfg.factory(m.cfg.localFamily, stack, double)
		if err != nil {
			return nil, err
		}
		*slot = syn
	}
	return *slot, nil
}
