package dbmodels

type ChatMessage struct {
	BaseModel
	SubmissionID string `gorm:"type:varchar(36);index"`
	SenderID     string `gorm:"type:varchar(36)"`
	Sender       *User  `gorm:"foreignKey:SenderID"`
	Text         string
}
