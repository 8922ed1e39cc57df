package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/curtisnlogan/lodestar-project/internal/app/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("открытие тестовой БД: %v", err)
	}

	repo := NewRepositoryFromDB(db)
	if err := repo.Migrate(); err != nil {
		t.Fatalf("миграция тестовой БД: %v", err)
	}
	return repo
}

func newTestUser(t *testing.T, repo *Repository, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, PasswordHash: "x"}
	if err := repo.CreateUser(user); err != nil {
		t.Fatalf("создание пользователя: %v", err)
	}
	return user
}

func testSession(userID int, start time.Time) *models.ObservingSession {
	return &models.ObservingSession{
		UserID:          userID,
		DatetimeStartUT: start,
		SiteName:        "задний двор",
	}
}

func TestSaveSessionSlugFormat(t *testing.T) {
	repo := newTestRepository(t)
	user := newTestUser(t, repo, "Curtis Logan")

	start := time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)
	session := testSession(user.UserID, start)
	if err := repo.SaveSession(session); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	if session.Slug != "curtis-logan-2024-01-01" {
		t.Fatalf("slug = %q, want curtis-logan-2024-01-01", session.Slug)
	}
}

func TestSaveSessionSlugCollision(t *testing.T) {
	repo := newTestRepository(t)
	user := newTestUser(t, repo, "observer")

	start := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	want := []string{
		"observer-2024-01-01",
		"observer-2024-01-01-1",
		"observer-2024-01-01-2",
	}

	// три сеанса одного пользователя в одну дату
	for i, wantSlug := range want {
		session := testSession(user.UserID, start.Add(time.Duration(i)*time.Hour))
		if err := repo.SaveSession(session); err != nil {
			t.Fatalf("SaveSession #%d: %v", i, err)
		}
		if session.Slug != wantSlug {
			t.Fatalf("slug #%d = %q, want %q", i, session.Slug, wantSlug)
		}
	}
}

func TestSaveSessionKeepsSlugOnUpdate(t *testing.T) {
	repo := newTestRepository(t)
	user := newTestUser(t, repo, "observer")

	session := testSession(user.UserID, time.Date(2024, 3, 15, 21, 0, 0, 0, time.UTC))
	if err := repo.SaveSession(session); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	original := session.Slug

	session.SiteName = "дача"
	if err := repo.SaveSession(session); err != nil {
		t.Fatalf("повторный SaveSession: %v", err)
	}
	if session.Slug != original {
		t.Fatalf("slug изменился при обновлении: %q -> %q", original, session.Slug)
	}

	loaded, err := repo.GetSessionBySlug(original)
	if err != nil {
		t.Fatalf("GetSessionBySlug: %v", err)
	}
	if loaded.SiteName != "дача" {
		t.Fatalf("site_name = %q после обновления", loaded.SiteName)
	}
}

func TestSaveSessionRetriesOnDuplicateSlug(t *testing.T) {
	repo := newTestRepository(t)
	user := newTestUser(t, repo, "observer")

	start := time.Date(2024, 5, 2, 23, 0, 0, 0, time.UTC)
	first := testSession(user.UserID, start)
	if err := repo.SaveSession(first); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	// имитируем проигранную гонку: slug уже выбран и уже занят
	second := testSession(user.UserID, start)
	second.Slug = first.Slug
	if err := repo.SaveSession(second); err != nil {
		t.Fatalf("SaveSession после коллизии: %v", err)
	}
	if second.Slug != first.Slug+"-1" {
		t.Fatalf("slug после повтора = %q, want %q", second.Slug, first.Slug+"-1")
	}
}

func TestSaveSessionValidation(t *testing.T) {
	repo := newTestRepository(t)
	user := newTestUser(t, repo, "observer")

	future := testSession(user.UserID, time.Now().UTC().Add(24*time.Hour))
	if err := repo.SaveSession(future); err == nil {
		t.Fatal("сеанс с началом в будущем сохранён")
	}

	start := time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	backwards := testSession(user.UserID, start)
	backwards.DatetimeEndUT = &end
	if err := repo.SaveSession(backwards); err == nil {
		t.Fatal("сеанс с окончанием раньше начала сохранён")
	}
}

func TestDeleteSessionCascade(t *testing.T) {
	repo := newTestRepository(t)
	user := newTestUser(t, repo, "observer")

	session := testSession(user.UserID, time.Date(2024, 7, 9, 22, 0, 0, 0, time.UTC))
	if err := repo.SaveSession(session); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	star := &models.Star{StarName: "Vega"}
	star.SessionID = session.SessionID
	if err := repo.CreateStar(star); err != nil {
		t.Fatalf("CreateStar: %v", err)
	}

	if err := repo.DeleteSession(session.SessionID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if _, err := repo.GetSessionByID(session.SessionID); err == nil {
		t.Fatal("сеанс найден после удаления")
	}
	if _, err := repo.GetStar(star.StarID); err == nil {
		t.Fatal("наблюдение пережило каскадное удаление сеанса")
	}
}
