package contracts

import (
	"context"

	"myhealthcare-service/internal/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindDoctorByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindDoctorsByDepartmentID(ctx context.Context, departmentID primitive.ObjectID) ([]models.User, error)
	FindDoctors(ctx context.Context, departmentID *primitive.ObjectID, specialization string) ([]models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
}
