package normalizer_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/smart-price-analytics/staging-ingester/internal/normalizer"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitExtractPrice(t *testing.T) {
	tests := map[string]struct {
		text string
		want *float64
	}{
		"rupee with separator":  {text: "₹12,999", want: lo.ToPtr(12999.0)},
		"dollar with decimals":  {text: "$999.99", want: lo.ToPtr(999.99)},
		"prefixed abbreviation": {text: "Rs. 15,000", want: lo.ToPtr(15000.0)},
		"labelled with period":  {text: "M.R.P.: ₹2,499", want: lo.ToPtr(2499.0)},
		"plain number":          {text: "159", want: lo.ToPtr(159.0)},
		"surrounding spaces":    {text: "  ₹1,299  ", want: lo.ToPtr(1299.0)},
		"no digits":             {text: "price on request"},
		"empty":                 {text: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizer.ExtractPrice(tt.text), "should extract correct price")
		})
	}
}

func TestUnitExtractRating(t *testing.T) {
	tests := map[string]struct {
		text string
		want *float64
	}{
		"out of five": {text: "4.5 out of 5", want: lo.ToPtr(4.5)},
		"bare number": {text: "4.5", want: lo.ToPtr(4.5)},
		"with stars":  {text: "3 stars", want: lo.ToPtr(3.0)},
		"no digits":   {text: "no rating yet"},
		"empty":       {text: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizer.ExtractRating(tt.text), "should extract correct rating")
		})
	}
}

func TestUnitExtractDiscount(t *testing.T) {
	tests := map[string]struct {
		text        string
		wantValue   *float64
		wantPercent *float64
	}{
		"percentage":           {text: "20% off", wantPercent: lo.ToPtr(20.0)},
		"fractional percent":   {text: "12.5 % off", wantPercent: lo.ToPtr(12.5)},
		"absolute amount":      {text: "Save ₹2,000", wantValue: lo.ToPtr(2000.0)},
		"percent wins on both": {text: "Save ₹2,000 (10%)", wantPercent: lo.ToPtr(10.0)},
		"no discount":          {text: "best offer"},
		"empty":                {text: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			value, percent := normalizer.ExtractDiscount(tt.text)

			assert.Equal(t, tt.wantValue, value, "should extract correct discount value")
			assert.Equal(t, tt.wantPercent, percent, "should extract correct discount percentage")
		})
	}
}

func TestUnitDetermineAvailability(t *testing.T) {
	tests := map[string]struct {
		text string
		want string
	}{
		"in stock":             {text: "In Stock", want: normalizer.AvailabilityInStock},
		"add to cart":          {text: "Add to Cart", want: normalizer.AvailabilityInStock},
		"sold out":             {text: "Sold Out", want: normalizer.AvailabilityOutOfStock},
		"unavailable":          {text: "Currently unavailable", want: normalizer.AvailabilityOutOfStock},
		"mixed favors out":     {text: "currently unavailable, notify me when available", want: normalizer.AvailabilityOutOfStock},
		"unrecognized wording": {text: "ships next month", want: normalizer.AvailabilityUnknown},
		"empty":                {text: "", want: normalizer.AvailabilityUnknown},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizer.DetermineAvailability(tt.text), "should determine correct status")
		})
	}
}

func TestUnitNormalize(t *testing.T) {
	record := models.RawRecord{
		SourceMarketplace:   "flipkart",
		RawPriceText:        lo.ToPtr("₹15,999"),
		RawMRPText:          lo.ToPtr("₹19,999"),
		RawRatingText:       lo.ToPtr("4.3 out of 5"),
		RawDiscountText:     lo.ToPtr("20% off"),
		RawAvailabilityText: lo.ToPtr("in stock"),
	}

	normalized := normalizer.Normalize(record)

	require.NotNil(t, normalized.CurrentPrice, "price should be extracted")
	assert.Equal(t, 15999.0, *normalized.CurrentPrice)
	require.NotNil(t, normalized.MRP, "mrp should be extracted")
	assert.Equal(t, 19999.0, *normalized.MRP)
	require.NotNil(t, normalized.CustomerRating, "rating should be extracted")
	assert.Equal(t, 4.3, *normalized.CustomerRating)
	assert.Nil(t, normalized.DiscountValue, "discount value should stay empty for percentage text")
	require.NotNil(t, normalized.DiscountPercentage, "discount percentage should be extracted")
	assert.Equal(t, 20.0, *normalized.DiscountPercentage)
	require.NotNil(t, normalized.AvailabilityStatus, "availability should be determined")
	assert.Equal(t, normalizer.AvailabilityInStock, *normalized.AvailabilityStatus)
}

func TestUnitNormalizeKeepsTypedValues(t *testing.T) {
	record := models.RawRecord{
		SourceMarketplace: "amazon",
		CurrentPrice:      lo.ToPtr(100.0),
		RawPriceText:      lo.ToPtr("₹999"),
	}

	normalized := normalizer.Normalize(record)

	require.NotNil(t, normalized.CurrentPrice)
	assert.Equal(t, 100.0, *normalized.CurrentPrice, "typed price should never be overwritten")
}
