package astro

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// HumanizeLargeNumber приводит большое число к читаемому виду для фронтенда.
// 147191891269293 -> "147 trillion", 1500000000 -> "1.5 billion"
func HumanizeLargeNumber(value float64) string {
	scales := []struct {
		limit float64
		name  string
	}{
		{1e15, "quadrillion"},
		{1e12, "trillion"},
		{1e9, "billion"},
		{1e6, "million"},
		{1e3, "thousand"},
	}

	for _, s := range scales {
		if value >= s.limit {
			result := value / s.limit
			if result >= 100 {
				return fmt.Sprintf("%.0f %s", result, s.name)
			}
			return fmt.Sprintf("%.1f %s", result, s.name)
		}
	}
	return fmt.Sprintf("%.0f", value)
}

// HumanizeDistanceMiles форматирует расстояние в милях с подписью.
func HumanizeDistanceMiles(miles *decimal.Decimal) string {
	if miles == nil || miles.IsZero() {
		return "distance unknown"
	}
	return HumanizeLargeNumber(miles.InexactFloat64()) + " miles"
}
