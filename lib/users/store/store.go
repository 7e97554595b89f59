package userstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "talent-bridge-backend/models/db"
)

type Provider interface {
	Create(user *dbmodels.User) error
	GetByID(userID string) (*dbmodels.User, error)
	GetByEmail(email string) (*dbmodels.User, error)
	ExistByEmail(email string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		DB: DB,
	}
}

type impl struct {
	DB *gorm.DB
}

func (u impl) Create(user *dbmodels.User) error {
	if err := u.DB.Create(user).Error; err != nil {
		return errors.Wrap(err, "ошибка создания пользователя")
	}
	return nil
}

func (u impl) GetByID(userID string) (*dbmodels.User, error) {
	user := dbmodels.User{}
	if err := u.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, errors.Wrap(err, "ошибка получения пользователя")
	}
	return &user, nil
}

func (u impl) GetByEmail(email string) (*dbmodels.User, error) {
	user := dbmodels.User{}
	if err := u.DB.First(&user, "email = ?", email).Error; err != nil {
		return nil, errors.Wrap(err, "ошибка получения пользователя по email")
	}
	return &user, nil
}

func (u impl) ExistByEmail(email string) (bool, error) {
	var count int64
	if err := u.DB.Model(&dbmodels.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "ошибка проверки email")
	}
	return count > 0, nil
}
