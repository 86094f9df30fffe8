package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecordAttachment points at an uploaded clinical document in object storage.
type RecordAttachment struct {
	ObjectKey   string    `bson:"object_key" json:"object_key"`
	FileName    string    `bson:"file_name" json:"file_name"`
	ContentType string    `bson:"content_type" json:"content_type"`
	Size        int64     `bson:"size" json:"size"`
	UploadedAt  time.Time `bson:"uploaded_at" json:"uploaded_at"`
}

// MedicalRecord is one-to-one with a completed appointment, enforced by a
// unique index on appointment_id.
type MedicalRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AppointmentID primitive.ObjectID `bson:"appointment_id" json:"appointment_id"`
	Diagnosis     string             `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	Prescription  string             `bson:"prescription,omitempty" json:"prescription,omitempty"`
	TreatmentPlan string             `bson:"treatment_plan,omitempty" json:"treatment_plan,omitempty"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	FollowUpDate  string             `bson:"follow_up_date,omitempty" json:"follow_up_date,omitempty"`
	VitalSigns    map[string]string  `bson:"vital_signs,omitempty" json:"vital_signs,omitempty"`
	Attachments   []RecordAttachment `bson:"attachments,omitempty" json:"attachments,omitempty"`
	CreatedBy     primitive.ObjectID `bson:"created_by" json:"created_by"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
