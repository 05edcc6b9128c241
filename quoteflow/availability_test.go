package quoteflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hanifmaulana/quotedesk/constant"
	"github.com/hanifmaulana/quotedesk/quoteflow"
)

func i64(v int64) *int64 { return &v }

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		requestedQty   int64
		availableNow   *int64
		serverShortage *int64
		editingEnabled bool
		want           quoteflow.Resolution
	}{
		{
			name:           "never checked: no shortage implied, not editable",
			requestedQty:   10,
			availableNow:   nil,
			editingEnabled: true,
			want:           quoteflow.Resolution{Checked: false, FallbackQty: 10},
		},
		{
			name:           "partial stock yields shortage",
			requestedQty:   10,
			availableNow:   i64(4),
			editingEnabled: true,
			want: quoteflow.Resolution{
				Checked:      true,
				AvailableNow: 4,
				Shortage:     6,
				Status:       constant.AvailabilityShortage,
				FallbackQty:  4,
				CanEdit:      true,
			},
		},
		{
			name:           "zero stock is not available and not editable",
			requestedQty:   5,
			availableNow:   i64(0),
			editingEnabled: true,
			want: quoteflow.Resolution{
				Checked:     true,
				Shortage:    5,
				Status:      constant.AvailabilityNotAvailable,
				FallbackQty: 0,
			},
		},
		{
			name:           "enough stock is available, fallback is requested qty",
			requestedQty:   3,
			availableNow:   i64(7),
			editingEnabled: true,
			want: quoteflow.Resolution{
				Checked:      true,
				AvailableNow: 7,
				Status:       constant.AvailabilityAvailable,
				FallbackQty:  3,
				CanEdit:      true,
			},
		},
		{
			name:           "server-supplied shortage wins over derived value",
			requestedQty:   10,
			availableNow:   i64(4),
			serverShortage: i64(2),
			editingEnabled: true,
			want: quoteflow.Resolution{
				Checked:      true,
				AvailableNow: 4,
				Shortage:     2,
				Status:       constant.AvailabilityShortage,
				FallbackQty:  4,
				CanEdit:      true,
			},
		},
		{
			name:           "negative server shortage is ignored",
			requestedQty:   10,
			availableNow:   i64(4),
			serverShortage: i64(-3),
			editingEnabled: true,
			want: quoteflow.Resolution{
				Checked:      true,
				AvailableNow: 4,
				Shortage:     6,
				Status:       constant.AvailabilityShortage,
				FallbackQty:  4,
				CanEdit:      true,
			},
		},
		{
			name:           "editing disabled forces CanEdit false",
			requestedQty:   3,
			availableNow:   i64(7),
			editingEnabled: false,
			want: quoteflow.Resolution{
				Checked:      true,
				AvailableNow: 7,
				Status:       constant.AvailabilityAvailable,
				FallbackQty:  3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quoteflow.Resolve(tt.requestedQty, tt.availableNow, tt.serverShortage, tt.editingEnabled)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_ShortageNeverNegative(t *testing.T) {
	for qty := int64(0); qty <= 6; qty++ {
		for avail := int64(0); avail <= 6; avail++ {
			got := quoteflow.Resolve(qty, i64(avail), nil, true)
			assert.GreaterOrEqual(t, got.Shortage, int64(0), "qty=%d avail=%d", qty, avail)
		}
	}
}

func TestResolve_ClassificationPartition(t *testing.T) {
	// For checked items exactly one class holds, and NOT_AVAILABLE
	// coincides with zero stock.
	for qty := int64(0); qty <= 5; qty++ {
		for avail := int64(0); avail <= 5; avail++ {
			got := quoteflow.Resolve(qty, i64(avail), nil, true)
			switch got.Status {
			case constant.AvailabilityAvailable, constant.AvailabilityShortage, constant.AvailabilityNotAvailable:
			default:
				t.Fatalf("unclassified checked item: qty=%d avail=%d", qty, avail)
			}
			assert.Equal(t, avail == 0, got.Status == constant.AvailabilityNotAvailable, "qty=%d avail=%d", qty, avail)
		}
	}
}

func TestSummarize(t *testing.T) {
	available := quoteflow.Resolve(2, i64(5), nil, true)
	shortage := quoteflow.Resolve(10, i64(4), nil, true)
	notAvailable := quoteflow.Resolve(5, i64(0), nil, true)
	unchecked := quoteflow.Resolve(5, nil, nil, true)

	tests := []struct {
		name   string
		items  []quoteflow.Resolution
		want   constant.AvailabilityStatus
		wantOK bool
	}{
		{name: "empty set has no summary", items: nil, wantOK: false},
		{name: "only unchecked items has no summary", items: []quoteflow.Resolution{unchecked, unchecked}, wantOK: false},
		{name: "all available", items: []quoteflow.Resolution{available, available}, want: constant.AvailabilityAvailable, wantOK: true},
		{name: "all not available", items: []quoteflow.Resolution{notAvailable, notAvailable}, want: constant.AvailabilityNotAvailable, wantOK: true},
		{name: "mixed available and shortage", items: []quoteflow.Resolution{available, shortage}, want: constant.AvailabilityShortage, wantOK: true},
		{name: "mixed available and not available", items: []quoteflow.Resolution{available, notAvailable}, want: constant.AvailabilityShortage, wantOK: true},
		{name: "unchecked items are excluded", items: []quoteflow.Resolution{available, unchecked}, want: constant.AvailabilityAvailable, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := quoteflow.Summarize(tt.items)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
