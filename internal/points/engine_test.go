package points

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchamoorthee/receiptpoints/internal/models"
)

func money(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func onDate(t *testing.T, day string) models.Date {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	return models.Date{Time: parsed}
}

func atTime(hour, minute int) models.ClockTime {
	return models.ClockTime{Hour: hour, Minute: minute}
}

func item(t *testing.T, desc, price string) models.Item {
	t.Helper()
	return models.Item{ShortDescription: desc, Price: money(t, price)}
}

func TestRetailerNamePoints(t *testing.T) {
	tests := []struct {
		name     string
		retailer string
		want     int64
	}{
		{"simple word", "Target", 6},
		{"internal spaces and punctuation skipped", "M&M Corner Market", 14},
		{"digits count", "Corner Deli 24", 12},
		{"unicode letters count", "Käsehaus München", 15},
		{"only punctuation", "&&& ---", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retailerNamePoints(tt.retailer))
		})
	}
}

func TestTotalPoints(t *testing.T) {
	tests := []struct {
		name  string
		total string
		want  int64
	}{
		{"whole dollars earn both rules", "9.00", 75},
		{"whole dollars without cents part", "35", 75},
		{"quarter multiple only", "5.25", 25},
		{"quarter multiple only, fifty cents", "10.50", 25},
		{"neither rule", "35.35", 0},
		{"near-whole amount stays exact", "4.99", 0},
		{"zero total", "0.00", 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, totalPoints(money(t, tt.total)))
		})
	}
}

func TestItemPoints(t *testing.T) {
	t.Run("five points per pair", func(t *testing.T) {
		one := []models.Item{item(t, "a", "1.00")}
		two := append(one, item(t, "b", "1.00"))
		five := []models.Item{
			item(t, "a", "1.00"), item(t, "b", "1.00"), item(t, "c", "1.00"),
			item(t, "d", "1.00"), item(t, "e", "1.00"),
		}
		assert.Equal(t, int64(0), itemPoints(one))
		assert.Equal(t, int64(5), itemPoints(two))
		assert.Equal(t, int64(10), itemPoints(five))
	})

	t.Run("description length divisible by three", func(t *testing.T) {
		// len 3 qualifies: ceil(6.00 * 0.2) = 2
		assert.Equal(t, int64(2), itemPoints([]models.Item{item(t, "abc", "6.00")}))
		// len 4 does not
		assert.Equal(t, int64(0), itemPoints([]models.Item{item(t, "abcd", "6.00")}))
	})

	t.Run("length measured after trimming", func(t *testing.T) {
		assert.Equal(t, int64(2), itemPoints([]models.Item{item(t, "  abc  ", "6.00")}))
	})

	t.Run("zero-length trimmed description qualifies", func(t *testing.T) {
		assert.Equal(t, int64(2), itemPoints([]models.Item{item(t, "   ", "6.00")}))
	})

	t.Run("ceiling is exact on decimal price", func(t *testing.T) {
		// 12.25 * 0.2 = 2.45 -> 3
		assert.Equal(t, int64(3), itemPoints([]models.Item{item(t, "Emils Cheese Pizza", "12.25")}))
		// 1.40 * 0.2 = 0.28 -> 1
		assert.Equal(t, int64(1), itemPoints([]models.Item{item(t, "Dasani", "1.40")}))
		// 5.00 * 0.2 = 1.00 exactly -> 1, not 2
		assert.Equal(t, int64(1), itemPoints([]models.Item{item(t, "abc", "5.00")}))
	})

	t.Run("empty item list contributes zero", func(t *testing.T) {
		assert.Equal(t, int64(0), itemPoints(nil))
	})
}

func TestDateTimePoints(t *testing.T) {
	oddDay := onDate(t, "2022-01-01")
	evenDay := onDate(t, "2022-01-02")

	t.Run("odd day earns six", func(t *testing.T) {
		assert.Equal(t, int64(6), dateTimePoints(oddDay, atTime(9, 0)))
		assert.Equal(t, int64(0), dateTimePoints(evenDay, atTime(9, 0)))
	})

	t.Run("afternoon window is exclusive on both ends", func(t *testing.T) {
		tests := []struct {
			clock models.ClockTime
			want  int64
		}{
			{atTime(13, 59), 0},
			{atTime(14, 0), 0},
			{atTime(14, 1), 10},
			{atTime(15, 59), 10},
			{atTime(16, 0), 0},
			{atTime(16, 1), 0},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, dateTimePoints(evenDay, tt.clock), "at %02d:%02d", tt.clock.Hour, tt.clock.Minute)
		}
	})
}

func TestCalculate(t *testing.T) {
	engine := &Engine{}

	t.Run("regression: two-item afternoon-less receipt", func(t *testing.T) {
		// retailer 6 + one pair 5 + Dasani description 1; total, date and
		// time rules all miss.
		r := models.Receipt{
			Retailer:     "Target",
			PurchaseDate: onDate(t, "2022-01-02"),
			PurchaseTime: atTime(13, 1),
			Items: []models.Item{
				item(t, "Pepsi - 12-oz", "1.25"),
				item(t, "Dasani", "1.40"),
			},
			Total: money(t, "35.35"),
		}
		assert.Equal(t, int64(12), engine.Calculate(r))
	})

	t.Run("regression: whole-dollar gatorade receipt", func(t *testing.T) {
		gatorade := item(t, "Gatorade", "2.25")
		r := models.Receipt{
			Retailer:     "M&M Corner Market",
			PurchaseDate: onDate(t, "2022-03-20"),
			PurchaseTime: atTime(14, 33),
			Items:        []models.Item{gatorade, gatorade, gatorade, gatorade},
			Total:        money(t, "9.00"),
		}
		// retailer 14 + total 75 + two pairs 10 + window 10
		assert.Equal(t, int64(109), engine.Calculate(r))
	})

	t.Run("additivity: total equals the sum of rule contributions", func(t *testing.T) {
		r := models.Receipt{
			Retailer:     "Walgreens",
			PurchaseDate: onDate(t, "2022-01-01"),
			PurchaseTime: atTime(15, 30),
			Items: []models.Item{
				item(t, "Mountain Dew 12PK", "6.49"),
				item(t, "Emils Cheese Pizza", "12.25"),
				item(t, "   Klarbrunn 12-PK 12 FL OZ  ", "12.00"),
			},
			Total: money(t, "30.74"),
		}
		want := retailerNamePoints(r.Retailer) +
			totalPoints(r.Total) +
			itemPoints(r.Items) +
			dateTimePoints(r.PurchaseDate, r.PurchaseTime)
		assert.Equal(t, want, engine.Calculate(r))
	})

	t.Run("determinism across repeated invocations", func(t *testing.T) {
		r := models.Receipt{
			Retailer:     "Target",
			PurchaseDate: onDate(t, "2022-01-01"),
			PurchaseTime: atTime(13, 1),
			Items:        []models.Item{item(t, "Mountain Dew 12PK", "6.49")},
			Total:        money(t, "6.49"),
		}
		first := engine.Calculate(r)
		for i := 0; i < 100; i++ {
			assert.Equal(t, first, engine.Calculate(r))
		}
	})

	t.Run("non-negative for a receipt missing every rule", func(t *testing.T) {
		r := models.Receipt{
			Retailer:     " ",
			PurchaseDate: onDate(t, "2022-01-02"),
			PurchaseTime: atTime(9, 0),
			Items:        []models.Item{item(t, "ab", "0.01")},
			Total:        money(t, "0.01"),
		}
		assert.GreaterOrEqual(t, engine.Calculate(r), int64(0))
	})
}

func TestLargeTotalBonus(t *testing.T) {
	base := func(total string) models.Receipt {
		return models.Receipt{
			Retailer:     "x",
			PurchaseDate: onDate(t, "2022-01-02"),
			PurchaseTime: atTime(9, 0),
			Items:        []models.Item{item(t, "ab", "1.00")},
			Total:        money(t, total),
		}
	}

	off := &Engine{}
	on := &Engine{LargeTotalBonus: true}

	t.Run("disabled by default", func(t *testing.T) {
		assert.Equal(t, int64(1), off.Calculate(base("10.01")))
	})

	t.Run("awards five above the floor", func(t *testing.T) {
		assert.Equal(t, int64(6), on.Calculate(base("10.01")))
	})

	t.Run("floor itself does not qualify", func(t *testing.T) {
		// 10.00 earns 75 from the total rules but no bonus.
		assert.Equal(t, int64(76), on.Calculate(base("10.00")))
	})
}
