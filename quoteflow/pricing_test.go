package quoteflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanifmaulana/quotedesk/constant"
	"github.com/hanifmaulana/quotedesk/quoteflow"
)

func f64(v float64) *float64 { return &v }

func TestAggregate_HiddenWhileProcessingOrCancelled(t *testing.T) {
	items := []quoteflow.PriceItem{
		{RequestedQty: 3, UnitPrice: f64(10), Res: quoteflow.Resolve(3, i64(5), nil, true)},
	}

	for _, status := range []constant.QuoteStatus{constant.QuoteStatusProcessing, constant.QuoteStatusCancelled} {
		got := quoteflow.Aggregate(status, items, 5, 1, f64(36))
		assert.False(t, got.PricingShown, string(status))
		assert.Nil(t, got.Total, string(status))
		assert.Nil(t, got.Lines[0], string(status))
	}
}

func TestAggregate_ServerTotalAuthoritativeWithoutShortage(t *testing.T) {
	items := []quoteflow.PriceItem{
		{RequestedQty: 3, UnitPrice: f64(10), Res: quoteflow.Resolve(3, i64(5), nil, true)},
		{RequestedQty: 2, UnitPrice: f64(4), Res: quoteflow.Resolve(2, i64(9), nil, true)},
	}

	serverTotal := f64(99.5) // deliberately different from any recomputation
	got := quoteflow.Aggregate(constant.QuoteStatusQuoted, items, 5, 1, serverTotal)

	require.True(t, got.PricingShown)
	assert.False(t, got.Recomputed)
	assert.Equal(t, serverTotal, got.Total)
}

func TestAggregate_RecomputesUnderShortage(t *testing.T) {
	items := []quoteflow.PriceItem{
		// shortage: priced at available 4, not requested 10
		{RequestedQty: 10, UnitPrice: f64(10), Res: quoteflow.Resolve(10, i64(4), nil, true)},
		{RequestedQty: 2, UnitPrice: f64(3), Res: quoteflow.Resolve(2, i64(9), nil, true)},
	}

	got := quoteflow.Aggregate(constant.QuoteStatusQuoted, items, 5, 1.5, f64(999))

	require.True(t, got.PricingShown)
	assert.True(t, got.Recomputed)
	require.NotNil(t, got.Lines[0])
	assert.Equal(t, 40.0, *got.Lines[0])
	require.NotNil(t, got.Lines[1])
	assert.Equal(t, 6.0, *got.Lines[1])
	assert.Equal(t, 46.0, got.Subtotal)
	require.NotNil(t, got.Total)
	assert.Equal(t, 52.5, *got.Total)
}

func TestAggregate_UndefinedLines(t *testing.T) {
	items := []quoteflow.PriceItem{
		// no unit price yet
		{RequestedQty: 3, Res: quoteflow.Resolve(3, i64(5), nil, true)},
		// fully unavailable line shows no number
		{RequestedQty: 5, UnitPrice: f64(10), Res: quoteflow.Resolve(5, i64(0), nil, true)},
	}

	got := quoteflow.Aggregate(constant.QuoteStatusQuoted, items, 0, 0, nil)

	assert.Nil(t, got.Lines[0])
	assert.Nil(t, got.Lines[1])
	assert.Equal(t, 0.0, got.Subtotal)
}

func TestAggregate_DraftQtyUsedWithoutShortage(t *testing.T) {
	items := []quoteflow.PriceItem{
		{RequestedQty: 5, DraftQty: i64(2), UnitPrice: f64(10), Res: quoteflow.Resolve(5, i64(9), nil, true)},
		// under shortage the available amount wins over the draft
		{RequestedQty: 10, DraftQty: i64(3), UnitPrice: f64(1), Res: quoteflow.Resolve(10, i64(4), nil, true)},
	}

	got := quoteflow.Aggregate(constant.QuoteStatusQuoted, items, 0, 0, nil)

	require.NotNil(t, got.Lines[0])
	assert.Equal(t, 20.0, *got.Lines[0])
	require.NotNil(t, got.Lines[1])
	assert.Equal(t, 4.0, *got.Lines[1])
}

func TestAggregateAdmin_IgnoresDrafts(t *testing.T) {
	items := []quoteflow.PriceItem{
		{RequestedQty: 5, DraftQty: i64(2), UnitPrice: f64(10), Res: quoteflow.Resolve(5, i64(9), nil, true)},
	}

	got := quoteflow.AggregateAdmin(constant.QuoteStatusQuoted, items, 0, 0, nil)

	require.NotNil(t, got.Lines[0])
	assert.Equal(t, 50.0, *got.Lines[0])
}

func TestGrandTotal(t *testing.T) {
	items := []quoteflow.PriceItem{
		{RequestedQty: 10, UnitPrice: f64(10), Res: quoteflow.Resolve(10, i64(4), nil, true)},
		{RequestedQty: 2, UnitPrice: f64(3), Res: quoteflow.Resolve(2, i64(9), nil, true)},
		{RequestedQty: 5, UnitPrice: f64(7), Res: quoteflow.Resolve(5, i64(0), nil, true)},
	}

	got := quoteflow.GrandTotal(items, 5, 1.5)
	assert.Equal(t, 52.5, got)
}
