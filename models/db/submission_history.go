package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
)

type SubmissionHistory struct {
	BaseModel
	SubmissionID string `gorm:"type:varchar(36);index"`
	JobID        string
	Job          *Job `gorm:"foreignKey:JobID"`
	UserID       *string
	UserName     string
	ActionType   ActionType        `gorm:"type:varchar(255)"`
	Changes      SubmissionChanges `gorm:"type:jsonb"`
}

func (j SubmissionChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *SubmissionChanges) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

type SubmissionChanges struct {
	Description string             `json:"description"` // Комментарий
	Data        []SubmissionChange `json:"data"`        // Список изменений
}

type SubmissionChange struct {
	Field    string      `json:"field"`     // Измененное поле
	OldValue interface{} `json:"old_value"` // Старое значение
	NewValue interface{} `json:"new_value"` // Новое значение
}

type ActionType string

const (
	HistoryTypeAdded       ActionType = "added"        // Кандидат предложен на вакансию
	HistoryTypeStageChange ActionType = "stage_change" // Кандидат переведен на другой этап
	HistoryTypeReject      ActionType = "reject"       // Кандидат отклонен
	HistoryTypeComment     ActionType = "comment"      // Добавлен комментарий
	HistoryTypeReorder     ActionType = "reorder"      // Изменен порядок в колонке
)
