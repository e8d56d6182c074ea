package entities

import "time"

type Role string

const (
	RoleFieldOwner      Role = "FieldOwner"
	RoleProducer        Role = "Producer"
	RoleAgronomist      Role = "Agronomist"
	RoleAdministrator   Role = "Administrator"
	RoleServiceProvider Role = "ServiceProvider"
)

func (r Role) Valid() bool {
	switch r {
	case RoleFieldOwner, RoleProducer, RoleAgronomist, RoleAdministrator, RoleServiceProvider:
		return true
	}
	return false
}

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	}
	return u.Email
}
