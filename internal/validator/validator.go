package validator

import "github.com/smart-price-analytics/staging-ingester/internal/platform/models"

// Validation messages recorded on records which violate staging rules.
// They mirror the numeric boundaries of the staging schema, relaxed from
// "reject at write time" to "flag, never reject".
const (
	MsgRatingOutOfRange             = "rating_out_of_range"
	MsgDiscountPercentageOutOfRange = "discount_percentage_out_of_range"
	MsgNegativePrice                = "negative_price"
	MsgMissingMarketplace           = "missing_marketplace"
)

const (
	minRating          = 0.0
	maxRating          = 5.0
	minDiscountPercent = 0.0
	maxDiscountPercent = 100.0
	minMonetaryAmount  = 0.0
)

// Validate checks record against staging domain rules and returns it together
// with an ordered list of violation messages. It never rejects: offending
// values are retained as scraped so downstream inspection sees the raw signal.
// Validate is pure, it does not mutate record.
func Validate(record models.RawRecord) (models.RawRecord, []string) {
	var errs []string

	if record.CustomerRating != nil &&
		(*record.CustomerRating < minRating || *record.CustomerRating > maxRating) {
		errs = append(errs, MsgRatingOutOfRange)
	}

	if record.DiscountPercentage != nil &&
		(*record.DiscountPercentage < minDiscountPercent || *record.DiscountPercentage > maxDiscountPercent) {
		errs = append(errs, MsgDiscountPercentageOutOfRange)
	}

	if (record.CurrentPrice != nil && *record.CurrentPrice < minMonetaryAmount) ||
		(record.MRP != nil && *record.MRP < minMonetaryAmount) {
		errs = append(errs, MsgNegativePrice)
	}

	if record.SourceMarketplace == "" {
		errs = append(errs, MsgMissingMarketplace)
	}

	return record, errs
}
