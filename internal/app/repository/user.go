package repository

import (
	"github.com/curtisnlogan/lodestar-project/internal/app/models"

	"golang.org/x/crypto/bcrypt"
)

func (r *Repository) CreateUser(user *models.User) error {
	return r.DB.Create(user).Error
}

func (r *Repository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *Repository) GetUserByID(id int) (*models.User, error) {
	var user models.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

// DeleteUser удаляет пользователя, каскад БД забирает сеансы и наблюдения.
func (r *Repository) DeleteUser(id int) error {
	return r.DB.Delete(&models.User{}, id).Error
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
