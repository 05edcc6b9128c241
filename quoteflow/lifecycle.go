package quoteflow

import "github.com/hanifmaulana/quotedesk/constant"

// State is the complete input to the lifecycle gate: the persisted
// status flags plus the per-item availability resolutions. The same
// State feeds both the account card and the admin detail page; the
// server evaluates it again before every mutation.
type State struct {
	Status              constant.QuoteStatus
	Locked              bool
	ClientQtyEditLocked bool
	Items               []Resolution
}

// hasQuotable reports whether at least one item could be fulfilled in
// part, which is what makes a quote worth pricing.
func (s State) hasQuotable() bool {
	for _, it := range s.Items {
		if it.Status == constant.AvailabilityAvailable || it.Status == constant.AvailabilityShortage {
			return true
		}
	}
	return false
}

// hasUnresolved reports whether any item is classified SHORTAGE or
// NOT_AVAILABLE. Unchecked items carry no classification.
func (s State) hasUnresolved() bool {
	for _, it := range s.Items {
		if it.Status == constant.AvailabilityShortage || it.Status == constant.AvailabilityNotAvailable {
			return true
		}
	}
	return false
}

func (s State) hasEditableItem() bool {
	for _, it := range s.Items {
		if it.Checked && it.AvailableNow > 0 {
			return true
		}
	}
	return false
}

// CanTransition reports whether moving to the given status is allowed.
// A locked quote never transitions; Confirmed and Cancelled are
// terminal.
func (s State) CanTransition(to constant.QuoteStatus) bool {
	if s.Locked || s.Status.Terminal() {
		return false
	}

	switch to {
	case constant.QuoteStatusQuoted:
		return s.Status == constant.QuoteStatusProcessing && s.hasQuotable()
	case constant.QuoteStatusConfirmed:
		return !s.hasUnresolved()
	case constant.QuoteStatusCancelled:
		return s.Status == constant.QuoteStatusProcessing || s.Status == constant.QuoteStatusQuoted
	default:
		return false
	}
}

// AllowedTransitions returns the set of statuses reachable from the
// current state.
func (s State) AllowedTransitions() []constant.QuoteStatus {
	candidates := []constant.QuoteStatus{
		constant.QuoteStatusProcessing,
		constant.QuoteStatusQuoted,
		constant.QuoteStatusConfirmed,
		constant.QuoteStatusCancelled,
	}

	allowed := make([]constant.QuoteStatus, 0, 2)
	for _, to := range candidates {
		if s.CanTransition(to) {
			allowed = append(allowed, to)
		}
	}
	return allowed
}

// CanEditQty reports whether quantity editing is open: the quote must
// be unlocked, the client must not have confirmed quantities already,
// the status must still be negotiable and at least one item must have
// stock to edit against.
func (s State) CanEditQty() bool {
	if s.Locked || s.ClientQtyEditLocked {
		return false
	}
	if s.Status != constant.QuoteStatusProcessing && s.Status != constant.QuoteStatusQuoted {
		return false
	}
	return s.hasEditableItem()
}

// Allows evaluates a single action against the gate.
func (s State) Allows(action constant.QuoteAction) bool {
	if s.Locked {
		return false
	}

	switch action {
	case constant.ActionEditQty, constant.ActionConfirmQty:
		return s.CanEditQty()
	case constant.ActionUpdatePricing:
		return !s.Status.Terminal()
	case constant.ActionSetQuoted:
		return s.CanTransition(constant.QuoteStatusQuoted)
	case constant.ActionSetConfirmed:
		return s.CanTransition(constant.QuoteStatusConfirmed)
	case constant.ActionCancel:
		return s.CanTransition(constant.QuoteStatusCancelled)
	case constant.ActionCreateOrder:
		return s.Status == constant.QuoteStatusConfirmed
	case constant.ActionAttachInvoice:
		return s.Status == constant.QuoteStatusConfirmed
	default:
		return false
	}
}

// AllowedActions returns every action the gate currently permits.
func (s State) AllowedActions() []constant.QuoteAction {
	candidates := []constant.QuoteAction{
		constant.ActionEditQty,
		constant.ActionConfirmQty,
		constant.ActionUpdatePricing,
		constant.ActionSetQuoted,
		constant.ActionSetConfirmed,
		constant.ActionCancel,
		constant.ActionCreateOrder,
		constant.ActionAttachInvoice,
	}

	allowed := make([]constant.QuoteAction, 0, 4)
	for _, a := range candidates {
		if s.Allows(a) {
			allowed = append(allowed, a)
		}
	}
	return allowed
}
