package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Room struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	RoomNumber   string              `bson:"room_number" json:"room_number"`
	Floor        int                 `bson:"floor,omitempty" json:"floor,omitempty"`
	DepartmentID *primitive.ObjectID `bson:"department_id,omitempty" json:"department_id,omitempty"`
	IsActive     bool                `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
}
