package dbmodels

import (
	"fmt"
	"strings"

	"talent-bridge-backend/models"
)

type User struct {
	BaseModel
	Role         models.UserRole `gorm:"type:varchar(50);index"`
	FirstName    string          `gorm:"type:varchar(255)"`
	LastName     string          `gorm:"type:varchar(255)"`
	Email        string          `gorm:"type:varchar(255);uniqueIndex"`
	Phone        string          `gorm:"type:varchar(255)"`
	PasswordHash string          `gorm:"type:varchar(255)"`
	CompanyName  string          `gorm:"type:varchar(255)"` // для работодателя
	IsActive     bool            `gorm:"default:true"`
}

func (u User) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%v %v", u.LastName, u.FirstName))
}
