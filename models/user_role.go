package models

type UserRole string

const (
	EmployerRole  UserRole = "EMPLOYER_ROLE"
	RecruiterRole UserRole = "RECRUITER_ROLE"
	AdminRole     UserRole = "ADMIN_ROLE"
)

var roleHumanName = map[UserRole]string{
	EmployerRole:  "Работодатель",
	RecruiterRole: "Рекрутер",
	AdminRole:     "Администратор",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

// CanSeeContacts контакты кандидата скрыты от работодателя
func (r UserRole) CanSeeContacts() bool {
	return r == RecruiterRole || r == AdminRole
}

const SystemUser = "Система"
