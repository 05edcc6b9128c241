package constant

// QuoteStatus is the lifecycle status of a material quote.
// Processing -> Quoted -> Confirmed, with Cancelled reachable from
// Processing or Quoted. Confirmed and Cancelled are terminal.
type QuoteStatus string

const (
	QuoteStatusProcessing QuoteStatus = "PROCESSING"
	QuoteStatusQuoted     QuoteStatus = "QUOTED"
	QuoteStatusConfirmed  QuoteStatus = "CONFIRMED"
	QuoteStatusCancelled  QuoteStatus = "CANCELLED"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusProcessing, QuoteStatusQuoted, QuoteStatusConfirmed, QuoteStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further status transition may leave s.
func (s QuoteStatus) Terminal() bool {
	return s == QuoteStatusConfirmed || s == QuoteStatusCancelled
}

// AvailabilityStatus classifies how much of a requested quantity the
// current stock snapshot can cover. Empty string means the item has
// never been checked.
type AvailabilityStatus string

const (
	AvailabilityAvailable    AvailabilityStatus = "AVAILABLE"
	AvailabilityShortage     AvailabilityStatus = "SHORTAGE"
	AvailabilityNotAvailable AvailabilityStatus = "NOT_AVAILABLE"
)

// QuoteAction is a client- or admin-initiated operation on a quote,
// used by the lifecycle gate to report what the caller may do.
type QuoteAction string

const (
	ActionEditQty       QuoteAction = "EDIT_QTY"
	ActionConfirmQty    QuoteAction = "CONFIRM_QTY"
	ActionUpdatePricing QuoteAction = "UPDATE_PRICING"
	ActionSetQuoted     QuoteAction = "SET_QUOTED"
	ActionSetConfirmed  QuoteAction = "SET_CONFIRMED"
	ActionCancel        QuoteAction = "CANCEL"
	ActionCreateOrder   QuoteAction = "CREATE_ORDER"
	ActionAttachInvoice QuoteAction = "ATTACH_INVOICE"
)
