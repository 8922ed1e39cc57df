package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// Ошибки валидации отдаются пользователю как исправимые ошибки ввода (400),
// проверяются до любой попытки обогащения.

var antoniadiValues = map[string]bool{
	"I": true, "II": true, "III": true, "IV": true, "V": true,
}

var celestialBodies = map[string]bool{
	"sun": true, "moon": true, "mercury": true, "venus": true, "mars": true,
	"jupiter": true, "saturn": true, "uranus": true, "neptune": true, "other": true,
}

var visibilityRatings = map[string]bool{
	"easy": true, "moderate": true, "difficult": true, "invisible": true,
}

var eventTypes = map[string]bool{
	"comet": true, "meteor_shower": true, "solar_eclipse": true,
	"lunar_eclipse": true, "aurora": true, "other": true,
}

func (s *ObservingSession) Validate(now time.Time) error {
	if s.DatetimeStartUT.IsZero() {
		return errors.New("время начала сеанса обязательно")
	}
	if s.DatetimeStartUT.After(now) {
		return errors.New("время начала сеанса не может быть в будущем")
	}
	if s.DatetimeEndUT != nil && !s.DatetimeEndUT.After(s.DatetimeStartUT) {
		return errors.New("время окончания должно быть позже времени начала")
	}
	if len(s.SiteName) > 50 {
		return errors.New("название места наблюдения не длиннее 50 символов")
	}
	return nil
}

func (o *ObservationFields) validateCommon() error {
	if o.AntoniadiScale != "" && !antoniadiValues[o.AntoniadiScale] {
		return fmt.Errorf("недопустимое значение шкалы Антониади: %q", o.AntoniadiScale)
	}
	return nil
}

func (s *SolarSystem) Validate() error {
	if err := s.validateCommon(); err != nil {
		return err
	}
	if !celestialBodies[s.CelestialBody] {
		return fmt.Errorf("недопустимое небесное тело: %q", s.CelestialBody)
	}
	if s.AltitudeDegrees != nil && (*s.AltitudeDegrees < 0 || *s.AltitudeDegrees > 90) {
		return errors.New("высота над горизонтом должна быть в пределах 0–90 градусов")
	}
	if err := inRange(s.CentralMeridianDeg, "0", "359.99", "долгота центрального меридиана"); err != nil {
		return err
	}
	if err := inRange(s.PhaseFraction, "0", "1", "доля освещённого диска"); err != nil {
		return err
	}
	if err := inRange(s.DiskDiameterArcsec, "0", "100", "видимый диаметр диска"); err != nil {
		return err
	}
	return nil
}

func (s *Star) Validate() error {
	if err := s.validateCommon(); err != nil {
		return err
	}
	if s.StarName == "" {
		return errors.New("название звезды обязательно")
	}
	if err := inRange(s.MagnitudeEstimate, "-1.5", "15.0", "оценка звёздной величины"); err != nil {
		return err
	}
	return nil
}

func (d *DeepSky) Validate() error {
	if err := d.validateCommon(); err != nil {
		return err
	}
	if d.ObjectName == "" {
		return errors.New("название объекта обязательно")
	}
	if d.VisibilityRating != "" && !visibilityRatings[d.VisibilityRating] {
		return fmt.Errorf("недопустимая оценка видимости: %q", d.VisibilityRating)
	}
	return nil
}

func (e *SpecialEvent) Validate() error {
	if err := e.validateCommon(); err != nil {
		return err
	}
	if !eventTypes[e.EventType] {
		return fmt.Errorf("недопустимый тип события: %q", e.EventType)
	}
	return nil
}

func inRange(value *decimal.Decimal, min, max, label string) error {
	if value == nil {
		return nil
	}
	lo := decimal.RequireFromString(min)
	hi := decimal.RequireFromString(max)
	if value.LessThan(lo) || value.GreaterThan(hi) {
		return fmt.Errorf("%s должна быть в пределах %s–%s", label, min, max)
	}
	return nil
}

var slugDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// DateFromSlug достаёт дату сеанса из slug ("user-2025-10-11-1" -> "2025-10-11").
func DateFromSlug(slug string) string {
	if date := slugDatePattern.FindString(slug); date != "" {
		return date
	}
	return slug
}
