package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/curtisnlogan/lodestar-project/internal/app/astro"
	"github.com/curtisnlogan/lodestar-project/internal/app/catalog"
	"github.com/curtisnlogan/lodestar-project/internal/app/models"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

// Создание наблюдения: валидация -> обогащение -> одно сохранение.
// Сбой обогащения никогда не мешает записи.

func (h *Handler) CreateSolarSystemObservation(c *gin.Context) {
	session, ok := h.ownedSessionByID(c)
	if !ok {
		return
	}

	var obs models.SolarSystem
	if err := c.ShouldBindJSON(&obs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный JSON: " + err.Error()})
		return
	}
	obs.SolarSystemID = 0
	obs.SessionID = session.SessionID
	resetCatalogFields(&obs.CatalogFields)

	if err := obs.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Enricher.EnrichSolarSystem(c.Request.Context(), &obs)

	if err := h.Repository.CreateSolarSystem(&obs); err != nil {
		logrus.Error("Ошибка сохранения наблюдения: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения наблюдения"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Наблюдение сохранено", "observation": obs})
}

func (h *Handler) CreateStarObservation(c *gin.Context) {
	session, ok := h.ownedSessionByID(c)
	if !ok {
		return
	}

	var obs models.Star
	if err := c.ShouldBindJSON(&obs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный JSON: " + err.Error()})
		return
	}
	obs.StarID = 0
	obs.SessionID = session.SessionID
	resetCatalogFields(&obs.CatalogFields)

	if err := obs.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Enricher.EnrichStar(c.Request.Context(), &obs)

	if err := h.Repository.CreateStar(&obs); err != nil {
		logrus.Error("Ошибка сохранения наблюдения: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения наблюдения"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Наблюдение сохранено", "observation": obs})
}

func (h *Handler) CreateDeepSkyObservation(c *gin.Context) {
	session, ok := h.ownedSessionByID(c)
	if !ok {
		return
	}

	var obs models.DeepSky
	if err := c.ShouldBindJSON(&obs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный JSON: " + err.Error()})
		return
	}
	obs.DeepSkyID = 0
	obs.SessionID = session.SessionID
	resetCatalogFields(&obs.CatalogFields)

	if err := obs.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Enricher.EnrichDeepSky(c.Request.Context(), &obs)

	if err := h.Repository.CreateDeepSky(&obs); err != nil {
		logrus.Error("Ошибка сохранения наблюдения: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения наблюдения"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Наблюдение сохранено", "observation": obs})
}

// Особые события не обогащаются, сохраняются как есть.
func (h *Handler) CreateSpecialEventObservation(c *gin.Context) {
	session, ok := h.ownedSessionByID(c)
	if !ok {
		return
	}

	var obs models.SpecialEvent
	if err := c.ShouldBindJSON(&obs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный JSON: " + err.Error()})
		return
	}
	obs.SpecialEventID = 0
	obs.SessionID = session.SessionID

	if err := obs.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Repository.CreateSpecialEvent(&obs); err != nil {
		logrus.Error("Ошибка сохранения наблюдения: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения наблюдения"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Наблюдение сохранено", "observation": obs})
}

// поля обогащения пользователь задавать не может
func resetCatalogFields(fields *models.CatalogFields) {
	fields.ApiPayload = nil
	fields.DistanceLightYears = nil
	fields.DistanceMiles = nil
}

func (h *Handler) GetObservation(c *gin.Context) {
	obs, _, ok := h.loadObservation(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"observation": obs,
		"display":     displayFields(obs),
	})
}

// displayFields строит готовые подписи для фронтенда из данных обогащения.
func displayFields(obs any) gin.H {
	var fields *models.CatalogFields
	switch o := obs.(type) {
	case *models.SolarSystem:
		fields = &o.CatalogFields
	case *models.Star:
		fields = &o.CatalogFields
	case *models.DeepSky:
		fields = &o.CatalogFields
	default:
		return nil
	}
	if !fields.HasCatalogData() {
		return nil
	}

	payload := fields.Payload()
	display := gin.H{
		"distance": astro.HumanizeDistanceMiles(fields.DistanceMiles),
	}
	if mag := catalog.ApparentMagnitude(payload); mag != "" {
		display["apparent_magnitude"] = mag
	}
	if sp := catalog.SpectralType(payload); sp != "" {
		display["spectral_type"] = sp
	}
	if otype := payload["otype"]; otype != "" {
		display["object_type"] = astro.TranslateObjectType(otype)
	}
	return display
}

func (h *Handler) DeleteObservation(c *gin.Context) {
	_, remove, ok := h.loadObservation(c)
	if !ok {
		return
	}

	if err := remove(); err != nil {
		logrus.Error("Ошибка удаления наблюдения: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления наблюдения"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Наблюдение удалено"})
}

// UploadDrawing принимает файл зарисовки и кладёт его в MinIO,
// в наблюдении остаётся только имя объекта.
func (h *Handler) UploadDrawing(c *gin.Context) {
	obs, _, ok := h.loadObservation(c)
	if !ok {
		return
	}

	file, err := c.FormFile("drawing")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Файл не получен"})
		return
	}

	kind := c.Param("kind")
	id := c.Param("id")
	filename := fmt.Sprintf("%s_%s_%s", kind, id, file.Filename)

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка открытия файла: " + err.Error()})
		return
	}
	defer src.Close()

	ctx := context.Background()
	_, err = h.MinioClient.PutObject(ctx, h.Bucket, filename, src, file.Size, minio.PutObjectOptions{
		ContentType: file.Header.Get("Content-Type"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки в MinIO: " + err.Error()})
		return
	}

	if err := h.Repository.DB.Model(obs).Update("drawing", filename).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения ссылки на рисунок: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Рисунок загружен", "filename": filename})
}

// loadObservation достаёт наблюдение по :kind/:id, проверяет доступ через его
// сеанс и возвращает замыкание для удаления.
func (h *Handler) loadObservation(c *gin.Context) (any, func() error, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID наблюдения"})
		return nil, nil, false
	}

	var (
		obs       any
		sessionID int
		remove    func() error
	)

	switch c.Param("kind") {
	case "solar":
		o, err := h.Repository.GetSolarSystem(id)
		if err == nil {
			obs, sessionID = o, o.SessionID
			remove = func() error { return h.Repository.DeleteSolarSystem(id) }
		}
	case "star":
		o, err := h.Repository.GetStar(id)
		if err == nil {
			obs, sessionID = o, o.SessionID
			remove = func() error { return h.Repository.DeleteStar(id) }
		}
	case "deepsky":
		o, err := h.Repository.GetDeepSky(id)
		if err == nil {
			obs, sessionID = o, o.SessionID
			remove = func() error { return h.Repository.DeleteDeepSky(id) }
		}
	case "event":
		o, err := h.Repository.GetSpecialEvent(id)
		if err == nil {
			obs, sessionID = o, o.SessionID
			remove = func() error { return h.Repository.DeleteSpecialEvent(id) }
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неизвестный вид наблюдения"})
		return nil, nil, false
	}

	if obs == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Наблюдение не найдено"})
		return nil, nil, false
	}

	session, err := h.Repository.GetSessionByID(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Сеанс наблюдения не найден"})
		return nil, nil, false
	}
	if !h.canAccess(c, session.UserID) {
		return nil, nil, false
	}
	return obs, remove, true
}
