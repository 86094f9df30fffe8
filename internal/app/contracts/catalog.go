package contracts

import (
	"context"

	"myhealthcare-service/internal/app/models"
	"myhealthcare-service/internal/pkg/dto/requests"
	"myhealthcare-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DepartmentRepository interface {
	FindAll(ctx context.Context, activeOnly bool) ([]models.Department, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Department, error)
}

type ServiceRepository interface {
	FindByDepartmentID(ctx context.Context, departmentID primitive.ObjectID) ([]models.Service, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	FindAll(ctx context.Context, departmentID *primitive.ObjectID) ([]models.Service, error)
}

type RoomRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error)
	FindFirstActiveByDepartmentID(ctx context.Context, departmentID primitive.ObjectID) (*models.Room, error)
	FindAll(ctx context.Context, activeOnly bool) ([]models.Room, error)
}

type CatalogUsecase interface {
	ListDepartments(ctx context.Context, pagination *requests.Pagination) ([]responses.Department, int, error)
	GetDepartmentDetail(ctx context.Context, departmentID string) (*responses.DepartmentDetail, error)
	ListDoctorsByDepartment(ctx context.Context, departmentID string) ([]responses.Doctor, error)
	ListServicesByDepartment(ctx context.Context, departmentID string) ([]responses.Service, error)
	ListDoctors(ctx context.Context, departmentID, specialization string) ([]responses.Doctor, error)
	ListServices(ctx context.Context, departmentID string, pagination *requests.Pagination) ([]responses.Service, int, error)
	GetServiceDetail(ctx context.Context, serviceID string) (*responses.Service, error)
	ListRooms(ctx context.Context) ([]responses.Room, error)
}
