package dbmodels

import (
	"github.com/pkg/errors"
)

// RejectReason пользовательская причина отказа,
// дополняет стандартный каталог
type RejectReason struct {
	BaseModel
	OwnerID string `gorm:"type:varchar(36);index"` // работодатель-владелец
	Name    string `gorm:"type:varchar(255)"`
}

func (r RejectReason) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название причины отказа")
	}
	return nil
}
