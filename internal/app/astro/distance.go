package astro

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidMeasurement — входное значение отсутствует, не число, ноль или отрицательное
var ErrInvalidMeasurement = errors.New("invalid measurement")

var (
	// 1 световой год = 5.88 триллиона миль
	milesPerLightYear = decimal.RequireFromString("5880000000000")
	// 1 световой год = 525600 световых минут (365.25 суток * 24 часа * 60 минут)
	lightMinutesPerYear = decimal.RequireFromString("525600.0")
	// перевод параллакса (миллисекунды дуги) в световые годы
	parallaxFactor = decimal.RequireFromString("3260.0")
)

// Distance — расстояние до объекта в двух единицах.
// Значения без округления, округление до 1 знака делается при записи в БД.
type Distance struct {
	LightYears decimal.Decimal
	Miles      decimal.Decimal
}

// FromParallax переводит параллакс (mas) в расстояние.
// Значение приходит строкой из нормализованного ответа каталога.
func FromParallax(parallax string) (Distance, error) {
	value, err := decimal.NewFromString(parallax)
	if err != nil {
		return Distance{}, fmt.Errorf("%w: parallax %q", ErrInvalidMeasurement, parallax)
	}
	if value.Sign() <= 0 {
		return Distance{}, fmt.Errorf("%w: parallax must be positive, got %s", ErrInvalidMeasurement, value)
	}

	lightYears := parallaxFactor.Div(value)
	return Distance{
		LightYears: lightYears,
		Miles:      lightYears.Mul(milesPerLightYear),
	}, nil
}

// FromLightTime переводит световое время (минуты, из эфемерид JPL Horizons) в расстояние.
func FromLightTime(lighttime string) (Distance, error) {
	value, err := decimal.NewFromString(lighttime)
	if err != nil {
		return Distance{}, fmt.Errorf("%w: lighttime %q", ErrInvalidMeasurement, lighttime)
	}
	if value.Sign() <= 0 {
		return Distance{}, fmt.Errorf("%w: lighttime must be positive, got %s", ErrInvalidMeasurement, value)
	}

	lightYears := value.Div(lightMinutesPerYear)
	return Distance{
		LightYears: lightYears,
		Miles:      lightYears.Mul(milesPerLightYear),
	}, nil
}
