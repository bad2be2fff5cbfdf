// Package normalizer parses display text captured from listing pages into
// typed record fields. Scrapers often deliver prices, ratings and discounts
// exactly as rendered ("₹12,999", "4.5 out of 5", "20% off"); the staging
// layer lands typed values next to the raw capture.
package normalizer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/smart-price-analytics/staging-ingester/internal/platform/models"
)

// Availability statuses recognized in scraped listings.
const (
	AvailabilityInStock    = "In Stock"
	AvailabilityOutOfStock = "Out of Stock"
	AvailabilityUnknown    = "Unknown"
)

var (
	percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	amountPattern  = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)
	ratingPattern  = regexp.MustCompile(`(\d(?:\.\d)?)`)

	outOfStockPhrases = []string{
		"out of stock", "sold out", "unavailable", "not available",
		"currently unavailable", "out-of-stock", "soldout",
	}
	inStockPhrases = []string{
		"in stock", "available", "add to cart", "buy now",
		"in-stock", "instock",
	}
)

// Normalize fills the typed fields of record from its raw display text.
// Already-typed values are never overwritten, so scrapers which deliver
// numbers directly pass through untouched. Returns the normalized copy.
func Normalize(record models.RawRecord) models.RawRecord {
	if record.CurrentPrice == nil && record.RawPriceText != nil {
		record.CurrentPrice = ExtractPrice(*record.RawPriceText)
	}
	if record.MRP == nil && record.RawMRPText != nil {
		record.MRP = ExtractPrice(*record.RawMRPText)
	}
	if record.CustomerRating == nil && record.RawRatingText != nil {
		record.CustomerRating = ExtractRating(*record.RawRatingText)
	}
	if record.DiscountValue == nil && record.DiscountPercentage == nil && record.RawDiscountText != nil {
		record.DiscountValue, record.DiscountPercentage = ExtractDiscount(*record.RawDiscountText)
	}
	if record.AvailabilityStatus == nil && record.RawAvailabilityText != nil {
		status := DetermineAvailability(*record.RawAvailabilityText)
		record.AvailabilityStatus = &status
	}

	return record
}

// ExtractPrice extracts a numeric price from text containing currency symbols
// and thousand separators, e.g. "₹12,999", "$999.99", "Rs. 15,000".
// Returns nil when no numeric value can be extracted.
func ExtractPrice(text string) *float64 {
	match := amountPattern.FindString(text)
	if match == "" {
		return nil
	}

	price, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return nil
	}

	return &price
}

// ExtractRating extracts a 0-5 scale rating from text like "4.5 out of 5",
// "4.5" or "4.5 stars". Values outside the scale are treated as not extracted.
func ExtractRating(text string) *float64 {
	match := ratingPattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	rating, err := strconv.ParseFloat(match[1], 64)
	if err != nil || rating < 0 || rating > 5 {
		return nil
	}

	return &rating
}

// ExtractDiscount extracts an absolute discount value or a discount percentage
// from text like "Save ₹2,000" or "20% off". At most one of the results is
// non-nil: percentage wins when both notations appear.
func ExtractDiscount(text string) (value *float64, percent *float64) {
	if match := percentPattern.FindStringSubmatch(text); match != nil {
		if pct, err := strconv.ParseFloat(match[1], 64); err == nil {
			return nil, &pct
		}
	}

	if match := amountPattern.FindString(text); match != "" {
		cleaned := strings.ReplaceAll(match, ",", "")
		if amount, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return &amount, nil
		}
	}

	return nil, nil
}

// DetermineAvailability maps free-form availability text to one of the
// recognized statuses. Out-of-stock phrases are checked first since listings
// like "currently unavailable, notify me when available" mix both vocabularies.
func DetermineAvailability(text string) string {
	search := strings.ToLower(text)
	if strings.TrimSpace(search) == "" {
		return AvailabilityUnknown
	}

	for _, phrase := range outOfStockPhrases {
		if strings.Contains(search, phrase) {
			return AvailabilityOutOfStock
		}
	}

	for _, phrase := range inStockPhrases {
		if strings.Contains(search, phrase) {
			return AvailabilityInStock
		}
	}

	return AvailabilityUnknown
}
