package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/curtisnlogan/lodestar-project/internal/app/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Создание сеанса наблюдений. Slug генерируется при сохранении.
func (h *Handler) CreateSession(c *gin.Context) {
	var session models.ObservingSession
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный JSON: " + err.Error()})
		return
	}

	session.SessionID = 0
	session.Slug = ""
	session.UserID = c.GetInt("user_id")

	// ошибки полей отдаём как 400 до обращения к БД
	if err := session.Validate(time.Now().UTC()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Repository.SaveSession(&session); err != nil {
		logrus.Error("Ошибка сохранения сеанса: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения сеанса"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Сеанс наблюдений создан",
		"session": session,
	})
}

func (h *Handler) GetSessions(c *gin.Context) {
	sessions, err := h.Repository.GetSessions(c.GetInt("user_id"))
	if err != nil {
		logrus.Error("Ошибка получения сеансов: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения сеансов"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *Handler) GetSessionBySlug(c *gin.Context) {
	session, err := h.Repository.GetSessionBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Сеанс не найден"})
		return
	}
	if !h.canAccess(c, session.UserID) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":      session,
		"session_date": models.DateFromSlug(session.Slug),
	})
}

func (h *Handler) UpdateSession(c *gin.Context) {
	session, ok := h.ownedSessionByID(c)
	if !ok {
		return
	}

	var input struct {
		DatetimeStartUT *time.Time `json:"datetime_start_ut"`
		DatetimeEndUT   *time.Time `json:"datetime_end_ut"`
		SiteName        *string    `json:"site_name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный JSON: " + err.Error()})
		return
	}

	if input.DatetimeStartUT != nil {
		session.DatetimeStartUT = *input.DatetimeStartUT
	}
	if input.DatetimeEndUT != nil {
		session.DatetimeEndUT = input.DatetimeEndUT
	}
	if input.SiteName != nil {
		session.SiteName = *input.SiteName
	}

	if err := session.Validate(time.Now().UTC()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// slug не перегенерируется: он уже задан, SaveSession его не тронет
	if err := h.Repository.SaveSession(session); err != nil {
		logrus.Error("Ошибка обновления сеанса: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка обновления сеанса"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Сеанс обновлён",
		"session": session,
	})
}

func (h *Handler) DeleteSession(c *gin.Context) {
	session, ok := h.ownedSessionByID(c)
	if !ok {
		return
	}

	if err := h.Repository.DeleteSession(session.SessionID); err != nil {
		logrus.Error("Ошибка удаления сеанса: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления сеанса"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Сеанс и его наблюдения удалены"})
}

// ownedSessionByID достаёт сеанс из :id и проверяет права доступа.
func (h *Handler) ownedSessionByID(c *gin.Context) (*models.ObservingSession, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID сеанса"})
		return nil, false
	}

	session, err := h.Repository.GetSessionByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Сеанс не найден"})
		return nil, false
	}
	if !h.canAccess(c, session.UserID) {
		return nil, false
	}
	return session, true
}

// canAccess: сеанс принадлежит пользователю либо запрос от модератора.
func (h *Handler) canAccess(c *gin.Context, ownerID int) bool {
	if c.GetInt("user_id") == ownerID || c.GetBool("is_moderator") {
		return true
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "Нет доступа к чужому сеансу"})
	return false
}
