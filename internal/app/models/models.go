package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type User struct {
	UserID       int    `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string `gorm:"column:username;size:150;uniqueIndex"`
	PasswordHash string `gorm:"column:password_hash" json:"-"`
	IsModerator  bool   `gorm:"column:is_moderator"`

	// удаление пользователя каскадом удаляет его сеансы и наблюдения
	Sessions []ObservingSession `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// ObservingSession — сеанс наблюдений: контейнер по времени и месту для
// наблюдений одного пользователя.
type ObservingSession struct {
	SessionID       int        `gorm:"primaryKey;autoIncrement;column:session_id"`
	UserID          int        `gorm:"column:user_id;index"`
	DatetimeStartUT time.Time  `gorm:"column:datetime_start_ut;index"`
	DatetimeEndUT   *time.Time `gorm:"column:datetime_end_ut"`
	SiteName        string     `gorm:"column:site_name;size:50"`
	Slug            string     `gorm:"column:slug;size:255;uniqueIndex"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`

	User User `gorm:"foreignKey:UserID;references:UserID" json:"-"`

	SolarSystemObservations  []SolarSystem  `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
	StarObservations         []Star         `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
	DeepSkyObservations      []DeepSky      `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
	SpecialEventObservations []SpecialEvent `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
}

// ObservationFields — общие поля всех четырёх видов наблюдений
// (оборудование, условия, заметки).
type ObservationFields struct {
	SessionID         int       `gorm:"column:session_id;index"`
	AntoniadiScale    string    `gorm:"column:antoniadi_scale;size:3"` // I..V, I = идеальная атмосфера
	TelescopeSizeType string    `gorm:"column:telescope_size_type;size:50"`
	MagnificationUsed string    `gorm:"column:magnification_used;size:25"`
	EyepiecesUsed     string    `gorm:"column:eyepieces_used;size:25"`
	FiltersUsed       string    `gorm:"column:filters_used;size:25"`
	Drawing           string    `gorm:"column:drawing;size:255"` // имя объекта в хранилище рисунков
	AdditionalNotes   string    `gorm:"column:additional_notes"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

// CatalogFields — данные обогащения из внешнего каталога/эфемерид.
// Заполняются один раз при создании наблюдения, пользователь их не меняет.
// Либо оба расстояния заполнены, либо оба null.
type CatalogFields struct {
	ApiPayload         datatypes.JSONMap `gorm:"column:api_payload"`
	DistanceLightYears *decimal.Decimal  `gorm:"column:distance_light_years;type:numeric(10,1)"`
	DistanceMiles      *decimal.Decimal  `gorm:"column:distance_miles;type:numeric(25,1)"`
}

func (c *CatalogFields) HasCatalogData() bool {
	return len(c.ApiPayload) > 0
}

// SetPayload сохраняет нормализованный ответ сервиса.
func (c *CatalogFields) SetPayload(payload map[string]string) {
	if payload == nil {
		c.ApiPayload = nil
		return
	}
	c.ApiPayload = make(datatypes.JSONMap, len(payload))
	for key, value := range payload {
		c.ApiPayload[key] = value
	}
}

// Payload возвращает payload обратно картой строк.
func (c *CatalogFields) Payload() map[string]string {
	if c.ApiPayload == nil {
		return nil
	}
	payload := make(map[string]string, len(c.ApiPayload))
	for key, value := range c.ApiPayload {
		if s, ok := value.(string); ok {
			payload[key] = s
		}
	}
	return payload
}

// SetDistances записывает оба расстояния, округляя до одного знака.
func (c *CatalogFields) SetDistances(lightYears, miles decimal.Decimal) {
	ly := lightYears.Round(1)
	mi := miles.Round(1)
	c.DistanceLightYears = &ly
	c.DistanceMiles = &mi
}

// SolarSystem — наблюдение объекта Солнечной системы.
type SolarSystem struct {
	SolarSystemID int `gorm:"primaryKey;autoIncrement;column:solar_system_id"`
	ObservationFields
	CatalogFields

	CelestialBody      string           `gorm:"column:celestial_body;size:25;index"`
	AltitudeDegrees    *int             `gorm:"column:altitude_degrees"`
	CentralMeridianDeg *decimal.Decimal `gorm:"column:central_meridian_deg;type:numeric(6,2)"`
	PhaseFraction      *decimal.Decimal `gorm:"column:phase_fraction;type:numeric(3,2)"`
	DiskDiameterArcsec *decimal.Decimal `gorm:"column:disk_diameter_arcsec;type:numeric(5,2)"`
}

// Star — наблюдение звезды.
type Star struct {
	StarID int `gorm:"primaryKey;autoIncrement;column:star_id"`
	ObservationFields
	CatalogFields

	StarName          string           `gorm:"column:star_name;size:200;index"`
	MagnitudeEstimate *decimal.Decimal `gorm:"column:magnitude_estimate;type:numeric(4,1)"`
	FinderChartUsed   string           `gorm:"column:finder_chart_used;size:200"`
}

// DeepSky — наблюдение объекта глубокого космоса.
type DeepSky struct {
	DeepSkyID int `gorm:"primaryKey;autoIncrement;column:deep_sky_id"`
	ObservationFields
	CatalogFields

	ObjectName       string `gorm:"column:object_name;size:200;index"`
	VisibilityRating string `gorm:"column:visibility_rating;size:20"`
}

// SpecialEvent — особое астрономическое событие. Каталогом не обогащается.
type SpecialEvent struct {
	SpecialEventID int `gorm:"primaryKey;autoIncrement;column:special_event_id"`
	ObservationFields

	EventType string `gorm:"column:event_type;size:20;index"`
	EventName string `gorm:"column:event_name;size:200"`
}
