package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Date is a calendar date carried on the wire as "YYYY-MM-DD".
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("purchaseDate must be a string: %w", err)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("purchaseDate must be YYYY-MM-DD: %w", err)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// ClockTime is a minute-precision time of day, wire form 24-hour "HH:MM".
type ClockTime struct {
	Hour   int
	Minute int
}

func (c *ClockTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("purchaseTime must be a string: %w", err)
	}
	parsed, err := time.Parse("15:04", s)
	if err != nil || len(s) != 5 {
		return fmt.Errorf("purchaseTime must be HH:MM (24-hour): %q", s)
	}
	c.Hour = parsed.Hour()
	c.Minute = parsed.Minute()
	return nil
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("%02d:%02d", c.Hour, c.Minute))
}

// MinuteOfDay returns the number of minutes elapsed since midnight.
func (c ClockTime) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

// Item is a single purchased line item.
type Item struct {
	ShortDescription string          `json:"shortDescription"`
	Price            decimal.Decimal `json:"price"`
}

func (i *Item) UnmarshalJSON(b []byte) error {
	var payload struct {
		ShortDescription *string          `json:"shortDescription"`
		Price            *decimal.Decimal `json:"price"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return err
	}
	if payload.ShortDescription == nil {
		return errors.New("item shortDescription is required")
	}
	if payload.Price == nil {
		return errors.New("item price is required")
	}
	i.ShortDescription = *payload.ShortDescription
	i.Price = *payload.Price
	return nil
}

// Receipt is a validated purchase receipt submitted for scoring.
type Receipt struct {
	Retailer     string          `json:"retailer"`
	PurchaseDate Date            `json:"purchaseDate"`
	PurchaseTime ClockTime       `json:"purchaseTime"`
	Items        []Item          `json:"items"`
	Total        decimal.Decimal `json:"total"`
}

func (r *Receipt) UnmarshalJSON(b []byte) error {
	var payload struct {
		Retailer     *string          `json:"retailer"`
		PurchaseDate *Date            `json:"purchaseDate"`
		PurchaseTime *ClockTime       `json:"purchaseTime"`
		Items        []Item           `json:"items"`
		Total        *decimal.Decimal `json:"total"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return err
	}
	if payload.Retailer == nil {
		return errors.New("retailer is required")
	}
	if payload.PurchaseDate == nil {
		return errors.New("purchaseDate is required")
	}
	if payload.PurchaseTime == nil {
		return errors.New("purchaseTime is required")
	}
	if payload.Total == nil {
		return errors.New("total is required")
	}
	r.Retailer = *payload.Retailer
	r.PurchaseDate = *payload.PurchaseDate
	r.PurchaseTime = *payload.PurchaseTime
	r.Items = payload.Items
	r.Total = *payload.Total
	return nil
}

// Validate checks the invariants the scoring engine assumes.
func (r Receipt) Validate() error {
	if strings.TrimSpace(r.Retailer) == "" {
		return errors.New("retailer must not be empty")
	}
	if len(r.Items) == 0 {
		return errors.New("at least one item is required")
	}
	if r.Total.IsNegative() {
		return errors.New("total must not be negative")
	}
	for i, item := range r.Items {
		if item.Price.IsNegative() {
			return fmt.Errorf("items[%d]: price must not be negative", i)
		}
	}
	return nil
}

// ParseReceipt decodes and validates a raw receipt payload.
func ParseReceipt(payload []byte) (Receipt, error) {
	var r Receipt
	if err := json.Unmarshal(payload, &r); err != nil {
		return Receipt{}, fmt.Errorf("decoding receipt: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Receipt{}, err
	}
	return r, nil
}

// ScoreRecord is the persisted result of one accepted submission. It is
// written once and never updated; Points is always recomputable from Receipt.
type ScoreRecord struct {
	ID      string          `json:"id"`
	Points  int64           `json:"points"`
	Receipt json.RawMessage `json:"receipt"`
}
