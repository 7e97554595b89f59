package rejectreason

import (
	"strings"

	rejectreasonstore "talent-bridge-backend/lib/dicts/reject-reason/store"
	dictapimodels "talent-bridge-backend/models/api/dict"
	dbmodels "talent-bridge-backend/models/db"
)

// стандартный каталог причин отказа, не редактируется
var defaultReasons = []string{
	"Недостаточно опыта",
	"Не совпадают зарплатные ожидания",
	"Не хватает обязательных навыков",
	"Не прошел интервью",
	"Несовпадение по культуре компании",
	"Кандидат отказался от вакансии",
	"Принят другой кандидат",
	"Не готов к переезду",
	"Не вышел на связь",
	"Недостоверные данные в резюме",
}

type Provider interface {
	Create(ownerID string, data dictapimodels.RejectReasonData) (*dictapimodels.RejectReasonView, error)
	List(ownerID string, filter dictapimodels.RejectReasonFind) ([]dictapimodels.RejectReasonView, error)
	Update(ownerID, id string, data dictapimodels.RejectReasonData) error
	Delete(ownerID, id string) error
}

var Instance Provider

func NewHandler(store rejectreasonstore.Provider) {
	Instance = &impl{
		store: store,
	}
}

type impl struct {
	store rejectreasonstore.Provider
}

func (i impl) Create(ownerID string, data dictapimodels.RejectReasonData) (*dictapimodels.RejectReasonView, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	rec := dbmodels.RejectReason{
		OwnerID: ownerID,
		Name:    data.Name,
	}
	if err := i.store.Create(&rec); err != nil {
		return nil, err
	}
	view := dictapimodels.RejectReasonConvert(rec)
	return &view, nil
}

// List стандартный каталог плюс пользовательские причины владельца
func (i impl) List(ownerID string, filter dictapimodels.RejectReasonFind) ([]dictapimodels.RejectReasonView, error) {
	custom, err := i.store.List(ownerID, filter.Search)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	result := make([]dictapimodels.RejectReasonView, 0, len(defaultReasons)+len(custom))
	for _, name := range defaultReasons {
		if search != "" && !strings.Contains(strings.ToLower(name), search) {
			continue
		}
		result = append(result, dictapimodels.RejectReasonView{
			RejectReasonData: dictapimodels.RejectReasonData{
				Name: name,
			},
			CanChange: false,
		})
	}
	for _, rec := range custom {
		result = append(result, dictapimodels.RejectReasonConvert(rec))
	}
	return result, nil
}

func (i impl) Update(ownerID, id string, data dictapimodels.RejectReasonData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(ownerID, id)
	if err != nil {
		return err
	}
	rec.Name = data.Name
	return i.store.Update(rec)
}

func (i impl) Delete(ownerID, id string) error {
	return i.store.Delete(ownerID, id)
}
