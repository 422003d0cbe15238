// Package points implements the loyalty-point rule engine. Every rule is
// independent and additive; the engine is pure and safe for concurrent use.
package points

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/punchamoorthee/receiptpoints/internal/models"
)

// Decimal constants built once; money math never touches binary floats.
var (
	quarterDollar   = decimal.New(25, -2) // 0.25
	descriptionRate = decimal.New(2, -1)  // 0.20
	largeTotalFloor = decimal.New(10, 0)  // 10.00
)

// Engine computes receipt scores. LargeTotalBonus awards 5 extra points
// when the total exceeds 10.00; it is a deployment toggle, off by default.
type Engine struct {
	LargeTotalBonus bool
}

// Calculate returns the total score for a validated receipt: the sum of
// each rule's contribution. The receipt is assumed to satisfy
// models.Receipt.Validate; the engine has no error path of its own.
func (e *Engine) Calculate(r models.Receipt) int64 {
	retailer := retailerNamePoints(r.Retailer)
	total := totalPoints(r.Total)
	items := itemPoints(r.Items)
	dateTime := dateTimePoints(r.PurchaseDate, r.PurchaseTime)

	sum := retailer + total + items + dateTime
	if e.LargeTotalBonus && r.Total.GreaterThan(largeTotalFloor) {
		sum += 5
	}

	slog.Debug("rule contributions",
		"retailer_name", retailer,
		"total", total,
		"items", items,
		"date_time", dateTime,
		"points", sum,
	)
	return sum
}

// retailerNamePoints awards one point per Unicode letter or digit in the
// retailer name. Whitespace and punctuation contribute nothing.
func retailerNamePoints(name string) int64 {
	var n int64
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// totalPoints awards 50 for a whole-dollar total and 25 for a multiple of
// 0.25. The two stack: whole dollars always earn 75 from the total alone.
func totalPoints(total decimal.Decimal) int64 {
	var n int64
	if total.IsInteger() {
		n += 50
	}
	if total.Mod(quarterDollar).IsZero() {
		n += 25
	}
	return n
}

// itemPoints awards 5 per pair of items, plus ceil(price * 0.2) for each
// item whose trimmed description length is a multiple of 3. A zero-length
// trimmed description qualifies. An empty item list contributes 0.
func itemPoints(items []models.Item) int64 {
	n := int64(len(items)/2) * 5
	for _, item := range items {
		trimmed := strings.TrimSpace(item.ShortDescription)
		if utf8.RuneCountInString(trimmed)%3 == 0 {
			n += item.Price.Mul(descriptionRate).Ceil().IntPart()
		}
	}
	return n
}

// dateTimePoints awards 6 for an odd day of month and 10 for a purchase
// strictly between 14:00 and 16:00, both ends excluded.
func dateTimePoints(date models.Date, t models.ClockTime) int64 {
	var n int64
	if date.Day()%2 == 1 {
		n += 6
	}
	if m := t.MinuteOfDay(); m > 14*60 && m < 16*60 {
		n += 10
	}
	return n
}
