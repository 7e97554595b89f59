package dictapimodels

import (
	"github.com/pkg/errors"

	dbmodels "talent-bridge-backend/models/db"
)

type RejectReasonData struct {
	Name string `json:"name"`
}

func (r RejectReasonData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название причины отказа")
	}
	return nil
}

type RejectReasonView struct {
	RejectReasonData
	ID        string `json:"id"`
	CanChange bool   `json:"can_change"` // false для причин из стандартного каталога
}

type RejectReasonFind struct {
	Search string `json:"search"`
}

func RejectReasonConvert(rec dbmodels.RejectReason) RejectReasonView {
	return RejectReasonView{
		RejectReasonData: RejectReasonData{
			Name: rec.Name,
		},
		ID:        rec.ID,
		CanChange: true,
	}
}
