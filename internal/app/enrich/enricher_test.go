package enrich

import (
	"context"
	"errors"
	"testing"

	"github.com/curtisnlogan/lodestar-project/internal/app/catalog"
	"github.com/curtisnlogan/lodestar-project/internal/app/models"
)

type stubCatalog struct {
	row   *catalog.Row
	err   error
	calls int
}

func (s *stubCatalog) QueryObject(_ context.Context, _ string) (*catalog.Row, error) {
	s.calls++
	return s.row, s.err
}

type stubEphemeris struct {
	row    *catalog.Row
	err    error
	calls  int
	lastID int
}

func (s *stubEphemeris) QueryBody(_ context.Context, bodyID int) (*catalog.Row, error) {
	s.calls++
	s.lastID = bodyID
	return s.row, s.err
}

func TestEnrichSolarSystemMars(t *testing.T) {
	ephem := &stubEphemeris{row: &catalog.Row{Columns: []catalog.Column{
		{Name: "delta", Value: "0.54321"},
		{Name: "lighttime", Value: "4.5"},
	}}}
	enricher := NewEnricher(&stubCatalog{}, ephem)

	obs := &models.SolarSystem{CelestialBody: "mars"}
	enricher.EnrichSolarSystem(context.Background(), obs)

	if ephem.calls != 1 {
		t.Fatalf("ephemeris called %d times, want 1", ephem.calls)
	}
	if ephem.lastID != 499 {
		t.Fatalf("queried body id %d, want 499 for mars", ephem.lastID)
	}
	if obs.Payload()["lighttime"] != "4.5" {
		t.Fatalf("payload lighttime = %q, want 4.5", obs.Payload()["lighttime"])
	}
	if obs.DistanceLightYears == nil || obs.DistanceMiles == nil {
		t.Fatal("distances not set")
	}
	// 4.5/525600 св. лет — после округления до 1 знака хранится 0.0
	if obs.DistanceLightYears.String() != "0" && obs.DistanceLightYears.String() != "0.0" {
		t.Fatalf("distance_light_years = %s", obs.DistanceLightYears)
	}
	if obs.DistanceMiles.String() != "50342465.8" {
		t.Fatalf("distance_miles = %s, want 50342465.8", obs.DistanceMiles)
	}
}

func TestEnrichSolarSystemOtherBodySkipsLookup(t *testing.T) {
	ephem := &stubEphemeris{}
	enricher := NewEnricher(&stubCatalog{}, ephem)

	obs := &models.SolarSystem{CelestialBody: "other"}
	enricher.EnrichSolarSystem(context.Background(), obs)

	if ephem.calls != 0 {
		t.Fatalf("ephemeris called %d times for body 'other', want 0", ephem.calls)
	}
	if obs.HasCatalogData() || obs.DistanceLightYears != nil || obs.DistanceMiles != nil {
		t.Fatal("observation unexpectedly enriched")
	}
}

func TestEnrichSolarSystemInvalidLighttime(t *testing.T) {
	for _, lighttime := range []string{"-2", "0", "n/a", "--"} {
		ephem := &stubEphemeris{row: &catalog.Row{Columns: []catalog.Column{
			{Name: "lighttime", Value: lighttime},
		}}}
		enricher := NewEnricher(&stubCatalog{}, ephem)

		obs := &models.SolarSystem{CelestialBody: "jupiter"}
		enricher.EnrichSolarSystem(context.Background(), obs)

		// payload сохраняется, но оба расстояния остаются пустыми
		if !obs.HasCatalogData() {
			t.Fatalf("lighttime %q: payload not stored", lighttime)
		}
		if obs.DistanceLightYears != nil || obs.DistanceMiles != nil {
			t.Fatalf("lighttime %q: distances set from invalid measurement", lighttime)
		}
	}
}

func TestEnrichStar(t *testing.T) {
	cat := &stubCatalog{row: &catalog.Row{Columns: []catalog.Column{
		{Name: "main_id", Value: "* alf CMa"},
		{Name: "otype", Value: "SB*"},
		{Name: "parallax", Value: 379.21},
	}}}
	enricher := NewEnricher(cat, &stubEphemeris{})

	obs := &models.Star{StarName: "Sirius"}
	enricher.EnrichStar(context.Background(), obs)

	if cat.calls != 1 {
		t.Fatalf("catalog called %d times, want 1", cat.calls)
	}
	if obs.Payload()["parallax"] != "379.21" {
		t.Fatalf("payload parallax = %q", obs.Payload()["parallax"])
	}
	if obs.DistanceLightYears == nil {
		t.Fatal("distance not set")
	}
	// 3260/379.21 = 8.6..., после округления 8.6
	if obs.DistanceLightYears.String() != "8.6" {
		t.Fatalf("distance_light_years = %s, want 8.6", obs.DistanceLightYears)
	}
}

func TestEnrichStarLookupFailure(t *testing.T) {
	enricher := NewEnricher(&stubCatalog{err: errors.New("connection timeout")}, &stubEphemeris{})

	obs := &models.Star{StarName: "Sirius"}
	enricher.EnrichStar(context.Background(), obs)

	// сбой каталога гасится: наблюдение остаётся пригодным для сохранения
	if obs.HasCatalogData() || obs.DistanceLightYears != nil || obs.DistanceMiles != nil {
		t.Fatal("observation enriched despite lookup failure")
	}
}

func TestEnrichStarNotFound(t *testing.T) {
	enricher := NewEnricher(&stubCatalog{}, &stubEphemeris{})

	obs := &models.Star{StarName: "no such star"}
	enricher.EnrichStar(context.Background(), obs)

	if obs.HasCatalogData() || obs.DistanceLightYears != nil {
		t.Fatal("observation enriched from empty result")
	}
}

func TestEnrichDeepSkyPlxValueFallback(t *testing.T) {
	cat := &stubCatalog{row: &catalog.Row{Columns: []catalog.Column{
		{Name: "main_id", Value: "M 31"},
		{Name: "plx_value", Value: "0.0487"},
	}}}
	enricher := NewEnricher(cat, &stubEphemeris{})

	obs := &models.DeepSky{ObjectName: "M31"}
	enricher.EnrichDeepSky(context.Background(), obs)

	if obs.DistanceLightYears == nil {
		t.Fatal("distance not computed from plx_value")
	}
	// 3260/0.0487 = 66940.4...
	if obs.DistanceLightYears.String() != "66940.5" {
		t.Fatalf("distance_light_years = %s", obs.DistanceLightYears)
	}
}

func TestEnrichDeepSkyNoParallaxColumn(t *testing.T) {
	cat := &stubCatalog{row: &catalog.Row{Columns: []catalog.Column{
		{Name: "main_id", Value: "M 42"},
		{Name: "parallax", Value: "--"},
	}}}
	enricher := NewEnricher(cat, &stubEphemeris{})

	obs := &models.DeepSky{ObjectName: "M42"}
	enricher.EnrichDeepSky(context.Background(), obs)

	if !obs.HasCatalogData() {
		t.Fatal("payload not stored")
	}
	if obs.DistanceLightYears != nil || obs.DistanceMiles != nil {
		t.Fatal("distances set without usable parallax")
	}
}
