package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`

	DisplayName string `json:"displayName"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`     // user | staff | owner
	UserType    string `json:"userType"` // student | teacher

	AdmissionNumber string `json:"admissionNumber,omitempty"`
	TeacherID       string `json:"teacherId,omitempty"`

	Wallet *Wallet `json:"-" gorm:"foreignKey:UserID"`
}

// SnapshotRef returns the identifier captured into an order's customer
// snapshot: admission number for students, teacher id otherwise.
func (u *User) SnapshotRef() string {
	if u.AdmissionNumber != "" {
		return u.AdmissionNumber
	}
	if u.TeacherID != "" {
		return u.TeacherID
	}
	return "N/A"
}
