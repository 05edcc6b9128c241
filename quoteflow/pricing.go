package quoteflow

import (
	"github.com/shopspring/decimal"

	"github.com/hanifmaulana/quotedesk/constant"
)

// PriceItem is one requested item as the pricing aggregator sees it.
type PriceItem struct {
	RequestedQty int64
	// DraftQty is the account-side pending edit, nil when none exists.
	DraftQty  *int64
	UnitPrice *float64
	Res       Resolution
}

// effectiveQty is the quantity a line is priced at: the available
// amount under shortage, otherwise the draft if one exists, otherwise
// the requested amount.
func (it PriceItem) effectiveQty() int64 {
	if it.Res.Checked && it.Res.Shortage > 0 {
		return it.Res.AvailableNow
	}
	if it.DraftQty != nil {
		return *it.DraftQty
	}
	return it.RequestedQty
}

// Summary is the aggregated pricing view for a quote.
type Summary struct {
	// PricingShown is false while the quote is still being processed or
	// was cancelled; the UI renders a waiting marker instead of totals.
	PricingShown bool
	// Lines holds one total per item, nil where no number can be shown
	// (unpriced item, or fully unavailable line).
	Lines    []*float64
	Subtotal float64
	// Total is nil when pricing is hidden. When Recomputed is true it
	// was rebuilt client-side from adjusted quantities plus fees;
	// otherwise it is the server total passed through verbatim.
	Total      *float64
	Recomputed bool
}

// Aggregate computes per-line totals and the grand total. Full pricing
// is shown once the quote reaches Quoted (and stays visible on
// Confirmed). When any shortage exists the server total is stale, so
// the grand total is recomputed from effective quantities plus the
// delivery charge and extra fee; with no shortage the server total is
// authoritative.
func Aggregate(status constant.QuoteStatus, items []PriceItem, deliveryCharge, extraFee float64, serverTotal *float64) Summary {
	shown := status == constant.QuoteStatusQuoted || status == constant.QuoteStatusConfirmed

	out := Summary{
		PricingShown: shown,
		Lines:        make([]*float64, len(items)),
	}

	anyShortage := false
	subtotal := decimal.Zero
	for i, it := range items {
		if it.Res.Checked && it.Res.Shortage > 0 {
			anyShortage = true
		}
		if !shown || it.UnitPrice == nil {
			continue
		}
		if it.Res.Status == constant.AvailabilityNotAvailable && it.Res.Shortage > 0 {
			// fully unavailable line shows "-" instead of 0
			continue
		}

		line := decimal.NewFromFloat(*it.UnitPrice).Mul(decimal.NewFromInt(it.effectiveQty()))
		f, _ := line.Float64()
		out.Lines[i] = &f
		subtotal = subtotal.Add(line)
	}
	out.Subtotal, _ = subtotal.Float64()

	if !shown {
		return out
	}

	if anyShortage {
		total := subtotal.
			Add(decimal.NewFromFloat(deliveryCharge)).
			Add(decimal.NewFromFloat(extraFee))
		f, _ := total.Float64()
		out.Total = &f
		out.Recomputed = true
	} else {
		out.Total = serverTotal
	}
	return out
}

// AggregateAdmin is the admin pricing screen variant: quantities come
// from the request or the stock check, never from an account-side
// draft, because the admin flow edits quantities in a separate step
// before assigning unit prices.
func AggregateAdmin(status constant.QuoteStatus, items []PriceItem, deliveryCharge, extraFee float64, serverTotal *float64) Summary {
	stripped := make([]PriceItem, len(items))
	for i, it := range items {
		it.DraftQty = nil
		stripped[i] = it
	}
	return Aggregate(status, stripped, deliveryCharge, extraFee, serverTotal)
}

// GrandTotal is the server-side total written back on a pricing update:
// the admin-effective subtotal plus delivery charge and extra fee.
func GrandTotal(items []PriceItem, deliveryCharge, extraFee float64) float64 {
	subtotal := decimal.Zero
	for _, it := range items {
		if it.UnitPrice == nil {
			continue
		}
		if it.Res.Status == constant.AvailabilityNotAvailable && it.Res.Shortage > 0 {
			continue
		}
		it.DraftQty = nil
		subtotal = subtotal.Add(decimal.NewFromFloat(*it.UnitPrice).Mul(decimal.NewFromInt(it.effectiveQty())))
	}
	total, _ := subtotal.
		Add(decimal.NewFromFloat(deliveryCharge)).
		Add(decimal.NewFromFloat(extraFee)).
		Float64()
	return total
}
