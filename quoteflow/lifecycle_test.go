package quoteflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hanifmaulana/quotedesk/constant"
	"github.com/hanifmaulana/quotedesk/quoteflow"
)

func resolutions(statuses ...constant.AvailabilityStatus) []quoteflow.Resolution {
	out := make([]quoteflow.Resolution, 0, len(statuses))
	for _, st := range statuses {
		res := quoteflow.Resolution{Checked: true, Status: st}
		switch st {
		case constant.AvailabilityAvailable:
			res.AvailableNow = 10
		case constant.AvailabilityShortage:
			res.AvailableNow = 4
			res.Shortage = 6
		case constant.AvailabilityNotAvailable:
			res.Shortage = 5
		}
		out = append(out, res)
	}
	return out
}

func TestState_CanTransition(t *testing.T) {
	tests := []struct {
		name  string
		state quoteflow.State
		to    constant.QuoteStatus
		want  bool
	}{
		{
			name: "processing to quoted with a quotable item",
			state: quoteflow.State{
				Status: constant.QuoteStatusProcessing,
				Items:  resolutions(constant.AvailabilityAvailable, constant.AvailabilityShortage),
			},
			to:   constant.QuoteStatusQuoted,
			want: true,
		},
		{
			name: "processing to quoted blocked when nothing is available",
			state: quoteflow.State{
				Status: constant.QuoteStatusProcessing,
				Items:  resolutions(constant.AvailabilityNotAvailable, constant.AvailabilityNotAvailable),
			},
			to:   constant.QuoteStatusQuoted,
			want: false,
		},
		{
			name: "confirm blocked while a shortage is unresolved",
			state: quoteflow.State{
				Status: constant.QuoteStatusQuoted,
				Items:  resolutions(constant.AvailabilityAvailable, constant.AvailabilityShortage),
			},
			to:   constant.QuoteStatusConfirmed,
			want: false,
		},
		{
			name: "confirm allowed once everything is available",
			state: quoteflow.State{
				Status: constant.QuoteStatusQuoted,
				Items:  resolutions(constant.AvailabilityAvailable, constant.AvailabilityAvailable),
			},
			to:   constant.QuoteStatusConfirmed,
			want: true,
		},
		{
			name: "cancel allowed from quoted",
			state: quoteflow.State{
				Status: constant.QuoteStatusQuoted,
				Items:  resolutions(constant.AvailabilityAvailable),
			},
			to:   constant.QuoteStatusCancelled,
			want: true,
		},
		{
			name: "no transition back to processing",
			state: quoteflow.State{
				Status: constant.QuoteStatusQuoted,
				Items:  resolutions(constant.AvailabilityAvailable),
			},
			to:   constant.QuoteStatusProcessing,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.CanTransition(tt.to))
		})
	}
}

func TestState_TerminalStatesAreTerminal(t *testing.T) {
	targets := []constant.QuoteStatus{
		constant.QuoteStatusProcessing,
		constant.QuoteStatusQuoted,
		constant.QuoteStatusConfirmed,
		constant.QuoteStatusCancelled,
	}

	for _, status := range []constant.QuoteStatus{constant.QuoteStatusConfirmed, constant.QuoteStatusCancelled} {
		state := quoteflow.State{
			Status: status,
			Items:  resolutions(constant.AvailabilityAvailable),
		}
		for _, to := range targets {
			assert.False(t, state.CanTransition(to), "%s -> %s", status, to)
		}
		assert.Empty(t, state.AllowedTransitions())
	}
}

func TestState_LockOverridesEverything(t *testing.T) {
	// An order or manual invoice linkage freezes the quote regardless
	// of status and availability.
	state := quoteflow.State{
		Status: constant.QuoteStatusQuoted,
		Locked: true,
		Items:  resolutions(constant.AvailabilityAvailable, constant.AvailabilityAvailable),
	}

	assert.False(t, state.CanEditQty())
	assert.Empty(t, state.AllowedTransitions())
	assert.Empty(t, state.AllowedActions())
}

func TestState_CanEditQty(t *testing.T) {
	tests := []struct {
		name  string
		state quoteflow.State
		want  bool
	}{
		{
			name: "editable while quoted with stock",
			state: quoteflow.State{
				Status: constant.QuoteStatusQuoted,
				Items:  resolutions(constant.AvailabilityShortage),
			},
			want: true,
		},
		{
			name: "blocked after client confirmed quantities",
			state: quoteflow.State{
				Status:              constant.QuoteStatusQuoted,
				ClientQtyEditLocked: true,
				Items:               resolutions(constant.AvailabilityShortage),
			},
			want: false,
		},
		{
			name: "blocked when no item has stock",
			state: quoteflow.State{
				Status: constant.QuoteStatusQuoted,
				Items:  resolutions(constant.AvailabilityNotAvailable),
			},
			want: false,
		},
		{
			name: "blocked on confirmed quote",
			state: quoteflow.State{
				Status: constant.QuoteStatusConfirmed,
				Items:  resolutions(constant.AvailabilityAvailable),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.CanEditQty())
		})
	}
}

func TestState_AllowedActions(t *testing.T) {
	state := quoteflow.State{
		Status: constant.QuoteStatusConfirmed,
		Items:  resolutions(constant.AvailabilityAvailable),
	}
	actions := state.AllowedActions()
	assert.Contains(t, actions, constant.ActionCreateOrder)
	assert.NotContains(t, actions, constant.ActionEditQty)
	assert.NotContains(t, actions, constant.ActionCancel)
}
