package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/curtisnlogan/lodestar-project/internal/app/models"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// бюджет попыток сохранения при гонке за уникальный slug
const slugSaveAttempts = 5

// ============================
// Сеансы наблюдений
// ============================

func (r *Repository) GetSessions(userID int) ([]models.ObservingSession, error) {
	var sessions []models.ObservingSession
	err := r.DB.Where("user_id = ?", userID).
		Order("datetime_start_ut DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *Repository) GetSessionByID(id int) (*models.ObservingSession, error) {
	var session models.ObservingSession
	if err := r.DB.First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *Repository) GetSessionBySlug(slugValue string) (*models.ObservingSession, error) {
	var session models.ObservingSession
	if err := r.DB.Where("slug = ?", slugValue).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession удаляет сеанс, каскад БД забирает его наблюдения.
func (r *Repository) DeleteSession(id int) error {
	return r.DB.Delete(&models.ObservingSession{}, id).Error
}

// GenerateSlug строит уникальный slug "<username>-<YYYY-MM-DD>".
// Если slug уже задан — ничего не делает. Коллизии разрешаются суффиксом -1, -2, ...
func (r *Repository) GenerateSlug(session *models.ObservingSession) error {
	if session.Slug != "" {
		return nil
	}

	user, err := r.GetUserByID(session.UserID)
	if err != nil {
		return fmt.Errorf("пользователь сеанса не найден: %w", err)
	}

	datePart := session.DatetimeStartUT.Format("2006-01-02")
	baseSlug := slug.Make(user.Username) + "-" + datePart

	candidate := baseSlug
	suffix := 1
	for {
		query := r.DB.Model(&models.ObservingSession{}).Where("slug = ?", candidate)
		// при обновлении не сравниваем сеанс с самим собой
		if session.SessionID != 0 {
			query = query.Where("session_id <> ?", session.SessionID)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			break
		}
		candidate = fmt.Sprintf("%s-%d", baseSlug, suffix)
		suffix++
	}

	session.Slug = candidate
	return nil
}

// SaveSession выполняет полный цикл валидация -> slug -> запись.
// Две параллельные записи могут выбрать один и тот же slug; нарушение
// уникальности при записи разрешается сбросом slug и повтором,
// не более slugSaveAttempts раз подряд.
func (r *Repository) SaveSession(session *models.ObservingSession) error {
	attemptsRemaining := slugSaveAttempts

	for {
		if err := session.Validate(time.Now().UTC()); err != nil {
			return err
		}
		if err := r.GenerateSlug(session); err != nil {
			return err
		}

		err := r.DB.Save(session).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}

		attemptsRemaining--
		if attemptsRemaining == 0 {
			return err
		}
		session.Slug = ""
	}
}
