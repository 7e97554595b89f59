package rejectreasonstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "talent-bridge-backend/models/db"
)

type Provider interface {
	Create(rec *dbmodels.RejectReason) error
	GetByID(ownerID, id string) (*dbmodels.RejectReason, error)
	List(ownerID, search string) ([]dbmodels.RejectReason, error)
	Update(rec *dbmodels.RejectReason) error
	Delete(ownerID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		DB: DB,
	}
}

type impl struct {
	DB *gorm.DB
}

func (r impl) Create(rec *dbmodels.RejectReason) error {
	if err := r.DB.Create(rec).Error; err != nil {
		return errors.Wrap(err, "ошибка создания причины отказа")
	}
	return nil
}

func (r impl) GetByID(ownerID, id string) (*dbmodels.RejectReason, error) {
	rec := dbmodels.RejectReason{}
	err := r.DB.First(&rec, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения причины отказа")
	}
	return &rec, nil
}

func (r impl) List(ownerID, search string) ([]dbmodels.RejectReason, error) {
	var records []dbmodels.RejectReason
	query := r.DB.Where("owner_id = ?", ownerID)
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := query.Order("name").Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "ошибка получения причин отказа")
	}
	return records, nil
}

func (r impl) Update(rec *dbmodels.RejectReason) error {
	if err := r.DB.Save(rec).Error; err != nil {
		return errors.Wrap(err, "ошибка обновления причины отказа")
	}
	return nil
}

func (r impl) Delete(ownerID, id string) error {
	err := r.DB.Delete(&dbmodels.RejectReason{}, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления причины отказа")
	}
	return nil
}
