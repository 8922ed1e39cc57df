package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestObservingSessionValidate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(-2 * time.Hour)
	end := now.Add(-time.Hour)

	ok := ObservingSession{DatetimeStartUT: start, DatetimeEndUT: &end, SiteName: "балкон"}
	if err := ok.Validate(now); err != nil {
		t.Fatalf("валидный сеанс отклонён: %v", err)
	}

	if err := (&ObservingSession{}).Validate(now); err == nil {
		t.Fatal("сеанс без времени начала принят")
	}
	if err := (&ObservingSession{DatetimeStartUT: now.Add(time.Minute)}).Validate(now); err == nil {
		t.Fatal("сеанс с началом в будущем принят")
	}

	before := start.Add(-time.Minute)
	if err := (&ObservingSession{DatetimeStartUT: start, DatetimeEndUT: &before}).Validate(now); err == nil {
		t.Fatal("сеанс с окончанием раньше начала принят")
	}
}

func TestSolarSystemValidate(t *testing.T) {
	ok := SolarSystem{
		CelestialBody:      "jupiter",
		CentralMeridianDeg: decPtr("123.45"),
		PhaseFraction:      decPtr("0.97"),
		DiskDiameterArcsec: decPtr("44.2"),
	}
	ok.AntoniadiScale = "II"
	if err := ok.Validate(); err != nil {
		t.Fatalf("валидное наблюдение отклонено: %v", err)
	}

	if err := (&SolarSystem{CelestialBody: "pluto"}).Validate(); err == nil {
		t.Fatal("небесное тело вне справочника принято")
	}

	bad := SolarSystem{CelestialBody: "mars"}
	bad.AntoniadiScale = "VI"
	if err := bad.Validate(); err == nil {
		t.Fatal("шкала Антониади вне I–V принята")
	}

	altitude := 120
	if err := (&SolarSystem{CelestialBody: "mars", AltitudeDegrees: &altitude}).Validate(); err == nil {
		t.Fatal("высота выше 90 градусов принята")
	}
	if err := (&SolarSystem{CelestialBody: "mars", PhaseFraction: decPtr("1.5")}).Validate(); err == nil {
		t.Fatal("доля освещённого диска больше 1 принята")
	}
}

func TestStarValidate(t *testing.T) {
	if err := (&Star{}).Validate(); err == nil {
		t.Fatal("звезда без названия принята")
	}
	if err := (&Star{StarName: "Vega", MagnitudeEstimate: decPtr("20")}).Validate(); err == nil {
		t.Fatal("оценка величины вне диапазона принята")
	}
	if err := (&Star{StarName: "Vega", MagnitudeEstimate: decPtr("0.0")}).Validate(); err != nil {
		t.Fatalf("валидное наблюдение отклонено: %v", err)
	}
}

func TestDeepSkyValidate(t *testing.T) {
	if err := (&DeepSky{ObjectName: "M31", VisibilityRating: "easy"}).Validate(); err != nil {
		t.Fatalf("валидное наблюдение отклонено: %v", err)
	}
	if err := (&DeepSky{ObjectName: "M31", VisibilityRating: "superb"}).Validate(); err == nil {
		t.Fatal("оценка видимости вне справочника принята")
	}
}

func TestSpecialEventValidate(t *testing.T) {
	if err := (&SpecialEvent{EventType: "aurora"}).Validate(); err != nil {
		t.Fatalf("валидное событие отклонено: %v", err)
	}
	if err := (&SpecialEvent{EventType: "ufo"}).Validate(); err == nil {
		t.Fatal("тип события вне справочника принят")
	}
}

func TestSetDistancesRounding(t *testing.T) {
	var fields CatalogFields
	fields.SetDistances(
		decimal.RequireFromString("8.59690672187969"),
		decimal.RequireFromString("50342465.7534246575"),
	)

	if fields.DistanceLightYears == nil || fields.DistanceMiles == nil {
		t.Fatal("расстояния не записаны")
	}
	if got := fields.DistanceLightYears.String(); got != "8.6" {
		t.Fatalf("distance_light_years = %s", got)
	}
	if got := fields.DistanceMiles.String(); got != "50342465.8" {
		t.Fatalf("distance_miles = %s", got)
	}
}

func TestDateFromSlug(t *testing.T) {
	if got := DateFromSlug("curtis-logan-2024-01-01-2"); got != "2024-01-01" {
		t.Fatalf("DateFromSlug = %q", got)
	}
	if got := DateFromSlug("no-date-here"); got != "no-date-here" {
		t.Fatalf("DateFromSlug без даты = %q", got)
	}
}
