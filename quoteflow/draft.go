package quoteflow

import "sync"

type draftKey struct {
	quoteID   uint64
	productID uint64
}

// DraftStore tracks pending, unconfirmed quantity edits keyed by quote
// and product, so edits on different quotes never collide. Drafts live
// for a single session only; they are cleared on save, on cancel and
// when fresh quote data invalidates them.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[draftKey]int64
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[draftKey]int64)}
}

// AdjustOptions controls clamping of a quantity adjustment.
type AdjustOptions struct {
	// AllowAboveMax leaves the upper bound open while the user is still
	// typing; CommitQty reclamps to the max afterwards.
	AllowAboveMax bool
}

// AdjustQty applies delta on top of the current draft, or on top of
// min(fallbackQty, maxQty) when no draft exists yet. The result is
// clamped to [0, maxQty] unless AllowAboveMax is set, in which case
// only the lower bound applies. Returns the stored draft value.
func (s *DraftStore) AdjustQty(quoteID, productID uint64, delta, maxQty, fallbackQty int64, opts AdjustOptions) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := draftKey{quoteID: quoteID, productID: productID}
	return s.adjust(key, delta, maxQty, fallbackQty, opts)
}

// ReplaceQty routes a directly typed value through the same clamp path
// as the stepper buttons: the delta is the typed value minus the value
// currently displayed.
func (s *DraftStore) ReplaceQty(quoteID, productID uint64, typed, maxQty, fallbackQty int64, opts AdjustOptions) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := draftKey{quoteID: quoteID, productID: productID}
	displayed, ok := s.drafts[key]
	if !ok {
		displayed = fallbackQty
		if displayed > maxQty {
			displayed = maxQty
		}
	}
	return s.adjust(key, typed-displayed, maxQty, fallbackQty, opts)
}

func (s *DraftStore) adjust(key draftKey, delta, maxQty, fallbackQty int64, opts AdjustOptions) int64 {
	cur, ok := s.drafts[key]
	if !ok {
		cur = fallbackQty
		if cur > maxQty {
			cur = maxQty
		}
	}

	next := cur + delta
	if next < 0 {
		next = 0
	}
	if !opts.AllowAboveMax && next > maxQty {
		next = maxQty
	}

	s.drafts[key] = next
	return next
}

// CommitQty reclamps a draft to [0, maxQty] on blur or enter, closing
// the AllowAboveMax window. Returns false when no draft exists.
func (s *DraftStore) CommitQty(quoteID, productID uint64, maxQty int64) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := draftKey{quoteID: quoteID, productID: productID}
	v, ok := s.drafts[key]
	if !ok {
		return 0, false
	}
	if v < 0 {
		v = 0
	}
	if v > maxQty {
		v = maxQty
	}
	s.drafts[key] = v
	return v, true
}

// Qty returns the pending draft for one item, if any.
func (s *DraftStore) Qty(quoteID, productID uint64) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.drafts[draftKey{quoteID: quoteID, productID: productID}]
	return v, ok
}

// ClearQuote wipes every draft belonging to one quote. Called after a
// successful save, after cancelling edit mode, or when a refetch
// replaces the underlying quote data.
func (s *DraftStore) ClearQuote(quoteID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.drafts {
		if key.quoteID == quoteID {
			delete(s.drafts, key)
		}
	}
}
