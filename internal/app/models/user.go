package models

import (
	"time"

	"myhealthcare-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	FullName     string             `bson:"full_name" json:"full_name"`
	PhoneNumber  string             `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	Role         string             `bson:"role" json:"role"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	Doctor       *DoctorProfile     `bson:"doctor_profile,omitempty" json:"doctor_profile,omitempty"`
	Patient      *PatientProfile    `bson:"patient_profile,omitempty" json:"patient_profile,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// DoctorProfile extends a user with role 'doctor'.
type DoctorProfile struct {
	DepartmentID   primitive.ObjectID  `bson:"department_id" json:"department_id"`
	Specialization string              `bson:"specialization" json:"specialization"`
	Title          string              `bson:"title,omitempty" json:"title,omitempty"`
	LicenseNumber  string              `bson:"license_number,omitempty" json:"license_number,omitempty"`
	RoomID         *primitive.ObjectID `bson:"room_id,omitempty" json:"room_id,omitempty"`
	Rating         float64             `bson:"rating" json:"rating"`
}

// PatientProfile extends a user with role 'patient'.
type PatientProfile struct {
	DateOfBirth     string `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	Gender          string `bson:"gender,omitempty" json:"gender,omitempty"`
	InsuranceNumber string `bson:"insurance_number,omitempty" json:"insurance_number,omitempty"`
}

func (u *User) IsDoctor() bool {
	return u.Role == constvars.RoleDoctor
}

func (u *User) IsPatient() bool {
	return u.Role == constvars.RolePatient
}

func (u *User) IsAdmin() bool {
	return u.Role == constvars.RoleAdmin
}
