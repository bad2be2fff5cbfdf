package validator_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/models"
	"github.com/smart-price-analytics/staging-ingester/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitValidate(t *testing.T) {
	tests := map[string]struct {
		record   models.RawRecord
		wantErrs []string
	}{
		"valid record": {
			record: models.RawRecord{
				SourceMarketplace: "flipkart",
				CurrentPrice:      lo.ToPtr(15999.0),
				MRP:               lo.ToPtr(19999.0),
				CustomerRating:    lo.ToPtr(4.3),
			},
		},
		"valid with only marketplace": {
			record: models.RawRecord{
				SourceMarketplace: "amazon",
			},
		},
		"rating boundaries pass": {
			record: models.RawRecord{
				SourceMarketplace: "amazon",
				CustomerRating:    lo.ToPtr(0.0),
			},
		},
		"rating above range": {
			record: models.RawRecord{
				SourceMarketplace: "amazon",
				CustomerRating:    lo.ToPtr(5.5),
			},
			wantErrs: []string{validator.MsgRatingOutOfRange},
		},
		"rating below range": {
			record: models.RawRecord{
				SourceMarketplace: "amazon",
				CustomerRating:    lo.ToPtr(-1.0),
			},
			wantErrs: []string{validator.MsgRatingOutOfRange},
		},
		"discount percentage out of range": {
			record: models.RawRecord{
				SourceMarketplace:  "amazon",
				DiscountPercentage: lo.ToPtr(120.0),
			},
			wantErrs: []string{validator.MsgDiscountPercentageOutOfRange},
		},
		"negative current price": {
			record: models.RawRecord{
				SourceMarketplace: "amazon",
				CurrentPrice:      lo.ToPtr(-5.0),
			},
			wantErrs: []string{validator.MsgNegativePrice},
		},
		"negative mrp": {
			record: models.RawRecord{
				SourceMarketplace: "amazon",
				MRP:               lo.ToPtr(-1.0),
			},
			wantErrs: []string{validator.MsgNegativePrice},
		},
		"missing marketplace": {
			record: models.RawRecord{},
			wantErrs: []string{
				validator.MsgMissingMarketplace,
			},
		},
		"all violations collected in order": {
			record: models.RawRecord{
				CustomerRating:     lo.ToPtr(6.0),
				DiscountPercentage: lo.ToPtr(-3.0),
				CurrentPrice:       lo.ToPtr(-5.0),
			},
			wantErrs: []string{
				validator.MsgRatingOutOfRange,
				validator.MsgDiscountPercentageOutOfRange,
				validator.MsgNegativePrice,
				validator.MsgMissingMarketplace,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			validated, errs := validator.Validate(tt.record)

			require.Equal(t, tt.wantErrs, errs, "should collect correct messages")
			assert.Equal(t, tt.record, validated, "should retain raw values unchanged")
		})
	}
}

func TestUnitValidateRetainsOffendingValues(t *testing.T) {
	record := models.RawRecord{
		SourceMarketplace: "",
		CurrentPrice:      lo.ToPtr(-5.0),
	}

	validated, errs := validator.Validate(record)

	require.Len(t, errs, 2, "should collect both violations")
	assert.Contains(t, errs, validator.MsgMissingMarketplace)
	assert.Contains(t, errs, validator.MsgNegativePrice)
	require.NotNil(t, validated.CurrentPrice, "offending price should not be nulled")
	assert.Equal(t, -5.0, *validated.CurrentPrice, "offending price should keep raw value")
}
