package main

import (
	"log"

	"github.com/curtisnlogan/lodestar-project/internal/app/astro"
	"github.com/curtisnlogan/lodestar-project/internal/app/catalog"
	"github.com/curtisnlogan/lodestar-project/internal/app/config"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// Утилита пересчёта расстояний: находит сохранённые наблюдения Солнечной
// системы с payload эфемерид, но без рассчитанного расстояния, и заполняет
// его из сохранённого светового времени. Повторный запуск безопасен.

type solarSystemRow struct {
	ID            int    `db:"solar_system_id"`
	CelestialBody string `db:"celestial_body"`
	ApiPayload    []byte `db:"api_payload"`
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфига: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer db.Close()

	var rows []solarSystemRow
	err = db.Select(&rows, `
		SELECT solar_system_id, celestial_body, api_payload
		FROM solar_systems
		WHERE api_payload IS NOT NULL AND distance_light_years IS NULL`)
	if err != nil {
		log.Fatalf("Ошибка выборки наблюдений: %v", err)
	}

	updated := 0
	for _, row := range rows {
		// ошибки отдельных записей не прерывают обход
		var payload map[string]string
		if err := json.Unmarshal(row.ApiPayload, &payload); err != nil {
			logrus.Warnf("наблюдение %d (%s): payload не разобран: %v", row.ID, row.CelestialBody, err)
			continue
		}

		value, ok := catalog.ExtractNumeric(payload, "lighttime")
		if !ok {
			logrus.Warnf("наблюдение %d (%s): световое время отсутствует или непригодно", row.ID, row.CelestialBody)
			continue
		}

		distance, err := astro.FromLightTime(value)
		if err != nil {
			logrus.Warnf("наблюдение %d (%s): %v", row.ID, row.CelestialBody, err)
			continue
		}

		_, err = db.Exec(`
			UPDATE solar_systems
			SET distance_light_years = $1, distance_miles = $2
			WHERE solar_system_id = $3`,
			distance.LightYears.Round(1), distance.Miles.Round(1), row.ID)
		if err != nil {
			logrus.Warnf("наблюдение %d (%s): не обновлено: %v", row.ID, row.CelestialBody, err)
			continue
		}

		updated++
		logrus.Infof("наблюдение %d (%s): lighttime %s мин, расстояние %s св. лет",
			row.ID, row.CelestialBody, value, distance.LightYears.Round(1))
	}

	logrus.Infof("Пересчитаны расстояния для %d наблюдений (кандидатов было %d)", updated, len(rows))
}
