package enrich

import (
	"context"

	"github.com/curtisnlogan/lodestar-project/internal/app/astro"
	"github.com/curtisnlogan/lodestar-project/internal/app/catalog"
	"github.com/curtisnlogan/lodestar-project/internal/app/models"

	"github.com/sirupsen/logrus"
)

// идентификаторы тел Солнечной системы в JPL Horizons
var horizonsBodyIDs = map[string]int{
	"sun":     10,
	"moon":    301,
	"mercury": 199,
	"venus":   299,
	"mars":    499,
	"jupiter": 599,
	"saturn":  699,
	"uranus":  799,
	"neptune": 899,
}

// Enricher обогащает наблюдение данными внешнего каталога/эфемерид и
// рассчитанным расстоянием. Любой сбой обогащения гасится внутри:
// наблюдение всегда остаётся пригодным для сохранения, методы ничего
// не возвращают. Сохраняет вызывающий — ровно один раз, после обогащения.
// SpecialEvent не обогащается и метода здесь не имеет.
type Enricher struct {
	catalog catalog.CatalogService
	ephem   catalog.EphemerisService
}

func NewEnricher(cat catalog.CatalogService, ephem catalog.EphemerisService) *Enricher {
	return &Enricher{catalog: cat, ephem: ephem}
}

// EnrichStar обогащает наблюдение звезды: каталог по имени, расстояние из параллакса.
func (e *Enricher) EnrichStar(ctx context.Context, obs *models.Star) {
	e.enrichFromCatalog(ctx, obs.StarName, &obs.CatalogFields, "star")
}

// EnrichDeepSky обогащает наблюдение объекта глубокого космоса.
func (e *Enricher) EnrichDeepSky(ctx context.Context, obs *models.DeepSky) {
	e.enrichFromCatalog(ctx, obs.ObjectName, &obs.CatalogFields, "deepsky")
}

// EnrichSolarSystem обогащает наблюдение тела Солнечной системы эфемеридами,
// расстояние — из светового времени.
func (e *Enricher) EnrichSolarSystem(ctx context.Context, obs *models.SolarSystem) {
	log := logrus.WithFields(logrus.Fields{"kind": "solar_system", "body": obs.CelestialBody})

	// для произвольного тела нет идентификатора в эфемеридах
	if obs.CelestialBody == "other" {
		log.Info("обогащение пропущено: тело вне справочника")
		return
	}

	bodyID, ok := horizonsBodyIDs[obs.CelestialBody]
	if !ok {
		log.Warn("обогащение пропущено: нет идентификатора Horizons")
		return
	}

	row, err := e.ephem.QueryBody(ctx, bodyID)
	if err != nil {
		log.Warn("эфемериды недоступны: ", err)
		return
	}

	payload := catalog.Normalize(row)
	if payload == nil {
		log.Info("эфемериды не вернули данных")
		return
	}
	obs.SetPayload(payload)

	value, ok := catalog.ExtractNumeric(payload, "lighttime")
	if !ok {
		log.WithField("columns", len(payload)).Info("payload сохранён, светового времени нет")
		return
	}

	distance, err := astro.FromLightTime(value)
	if err != nil {
		// некорректное значение не мешает сохранению, расстояния остаются пустыми
		log.Warn("световое время непригодно для расчёта: ", err)
		return
	}
	obs.SetDistances(distance.LightYears, distance.Miles)

	log.WithFields(logrus.Fields{
		"columns":   len(payload),
		"lighttime": value,
	}).Info("наблюдение обогащено")
}

// общий путь для звёзд и объектов глубокого космоса: имя объекта — ключ каталога
func (e *Enricher) enrichFromCatalog(ctx context.Context, name string, fields *models.CatalogFields, kind string) {
	log := logrus.WithFields(logrus.Fields{"kind": kind, "object": name})

	row, err := e.catalog.QueryObject(ctx, name)
	if err != nil {
		log.Warn("каталог недоступен: ", err)
		return
	}

	payload := catalog.Normalize(row)
	if payload == nil {
		log.Info("объект в каталоге не найден")
		return
	}
	fields.SetPayload(payload)

	value, ok := catalog.ExtractNumeric(payload, "parallax")
	if !ok {
		value, ok = catalog.ExtractNumeric(payload, "plx_value")
	}
	if !ok {
		log.WithField("columns", len(payload)).Info("payload сохранён, параллакса нет")
		return
	}

	distance, err := astro.FromParallax(value)
	if err != nil {
		log.Warn("параллакс непригоден для расчёта: ", err)
		return
	}
	fields.SetDistances(distance.LightYears, distance.Miles)

	log.WithFields(logrus.Fields{
		"columns":  len(payload),
		"parallax": value,
	}).Info("наблюдение обогащено")
}
