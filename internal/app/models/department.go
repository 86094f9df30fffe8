package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Department is a clinical unit owning services, rooms and doctors.
// HealthExaminationFee is the base examination fee in whole VND.
type Department struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                 string             `bson:"name" json:"name"`
	Icon                 string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Description          string             `bson:"description,omitempty" json:"description,omitempty"`
	HealthExaminationFee int64              `bson:"health_examination_fee" json:"health_examination_fee"`
	IsActive             bool               `bson:"is_active" json:"is_active"`
	CreatedAt            time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time          `bson:"updated_at" json:"updated_at"`
}
