// Package quoteflow holds the pure quote-editing workflow logic shared
// by the account and admin surfaces: availability resolution, quantity
// draft bookkeeping, pricing aggregation and the status lifecycle gate.
// Nothing in here touches the database, the network or the clock.
package quoteflow

import "github.com/hanifmaulana/quotedesk/constant"

// Resolution is the availability verdict for a single requested item.
type Resolution struct {
	// Checked is false when the item has never been through a stock
	// snapshot. An unchecked item implies no shortage and cannot be
	// edited; display falls back to the requested quantity.
	Checked      bool
	AvailableNow int64
	Shortage     int64
	Status       constant.AvailabilityStatus
	// FallbackQty is the starting quantity used when no draft exists:
	// the available amount under shortage, the requested amount otherwise.
	FallbackQty int64
	CanEdit     bool
}

// Resolve classifies one item given the requested quantity and the last
// stock snapshot. availableNow is nil when no check has been performed.
// A non-negative serverShortage takes precedence over the client-derived
// max(0, requestedQty-availableNow); a negative one is ignored.
func Resolve(requestedQty int64, availableNow, serverShortage *int64, editingEnabled bool) Resolution {
	if availableNow == nil {
		return Resolution{FallbackQty: requestedQty}
	}

	avail := *availableNow
	if avail < 0 {
		avail = 0
	}

	shortage := requestedQty - avail
	if shortage < 0 {
		shortage = 0
	}
	if serverShortage != nil && *serverShortage >= 0 {
		shortage = *serverShortage
	}

	res := Resolution{
		Checked:      true,
		AvailableNow: avail,
		Shortage:     shortage,
	}

	switch {
	case avail == 0:
		res.Status = constant.AvailabilityNotAvailable
	case shortage > 0:
		res.Status = constant.AvailabilityShortage
	default:
		res.Status = constant.AvailabilityAvailable
	}

	if shortage > 0 {
		res.FallbackQty = avail
	} else {
		res.FallbackQty = requestedQty
	}
	res.CanEdit = editingEnabled && avail > 0

	return res
}

// Summarize derives the quote-level availability badge from the item
// resolutions. Items that were never checked are excluded; if nothing
// has been checked there is no summary and ok is false.
func Summarize(items []Resolution) (constant.AvailabilityStatus, bool) {
	allAvailable := true
	allNotAvailable := true
	checked := 0

	for _, it := range items {
		if !it.Checked {
			continue
		}
		checked++
		if it.Status != constant.AvailabilityAvailable {
			allAvailable = false
		}
		if it.Status != constant.AvailabilityNotAvailable {
			allNotAvailable = false
		}
	}

	if checked == 0 {
		return "", false
	}
	switch {
	case allNotAvailable:
		return constant.AvailabilityNotAvailable, true
	case allAvailable:
		return constant.AvailabilityAvailable, true
	default:
		return constant.AvailabilityShortage, true
	}
}
