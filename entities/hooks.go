package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (f *Field) BeforeCreate(tx *gorm.DB) (err error) {
	newID(&f.ID)
	return
}

func (t *Task) BeforeCreate(tx *gorm.DB) (err error) {
	newID(&t.ID)
	return
}

func (e *Evidence) BeforeCreate(tx *gorm.DB) (err error) {
	newID(&e.ID)
	return
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	newID(&u.ID)
	return
}

func (l *Lifecycle) BeforeCreate(tx *gorm.DB) (err error) {
	newID(&l.ID)
	return
}
