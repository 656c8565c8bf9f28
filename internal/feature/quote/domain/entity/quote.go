// Package entity defines the domain models for the quote feature.
package entity

import "time"

// QuoteRecord is one trading-day observation of a symbol.
// Price fields are nil when the provider has no value for that day.
type QuoteRecord struct {
	Date        time.Time // Trading day, midnight in the exchange's timezone
	Open        *float64  // Opening price
	High        *float64  // Highest price during the day
	Low         *float64  // Lowest price during the day
	Close       *float64  // Closing price
	Volume      *int64    // Trading volume
	Dividends   float64   // Dividend paid on this day, 0 when none
	StockSplits float64   // Split ratio effective on this day, 0 when none
}

// CompanyInfo is the provider's metadata for a symbol.
// Attributes holds every other field the provider returned, keyed by its own names.
type CompanyInfo struct {
	LongName   string
	ShortName  string
	Attributes map[string]any
}

// Quote is the composite result of a successful lookup.
type Quote struct {
	Name    string
	History []QuoteRecord
}
