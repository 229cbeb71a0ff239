package auth

import (
	"dukkan-backend/internal/models"

	"gorm.io/gorm"
)

// UserStore: kullanıcı kayıtlarına erişim. Handler'lar global DB yerine bu
// arayüz üzerinden çalışır.
type UserStore interface {
	Count() (int64, error)
	Create(user *models.User) error
	ByEmail(email string) (*models.User, error)
	ByID(id uint) (*models.User, error)
}

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (s *GormUserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *GormUserStore) ByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) ByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
