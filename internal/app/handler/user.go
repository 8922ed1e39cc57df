package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/curtisnlogan/lodestar-project/internal/app/models"
	"github.com/curtisnlogan/lodestar-project/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

func (h *Handler) RegisterUser(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный JSON"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Логин и пароль обязательны"})
		return
	}

	hash, err := repository.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := h.Repository.CreateUser(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка создания пользователя: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Пользователь создан", "user_id": user.UserID})
}

func (h *Handler) LoginUser(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный JSON"})
		return
	}

	user, err := h.Repository.GetUserByUsername(req.Username)
	if err != nil || !repository.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный логин или пароль"})
		return
	}

	token := uuid.NewString()
	if err := h.Repository.Redis.SetSession(c.Request.Context(), token, user.UserID, tokenTTL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения сессии: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user_id": user.UserID})
}

func (h *Handler) LogoutUser(c *gin.Context) {
	auth := c.GetHeader("Authorization")
	if len(auth) > 7 && auth[:7] == "Bearer " {
		_ = h.Repository.Redis.DeleteSession(c.Request.Context(), auth[7:])
	}
	c.JSON(http.StatusOK, gin.H{"message": "Выход выполнен"})
}

func (h *Handler) GetCurrentUser(c *gin.Context) {
	uid := c.GetInt("user_id")

	user, err := h.Repository.GetUserByID(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":      user.UserID,
		"username":     user.Username,
		"is_moderator": user.IsModerator,
	})
}

// DeleteUser удаляет пользователя со всеми его сеансами. Только для модераторов.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор"})
		return
	}

	if err := h.Repository.DeleteUser(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Пользователь удалён"})
}
