package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a priced offering within a department. Price is whole VND.
type Service struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DepartmentID primitive.ObjectID `bson:"department_id" json:"department_id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        int64              `bson:"price" json:"price"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
