package catalog

import (
	"context"
	"sync"

	"myhealthcare-service/internal/app/contracts"
	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/dto/requests"
	"myhealthcare-service/internal/pkg/dto/responses"
	"myhealthcare-service/internal/pkg/exceptions"
	"myhealthcare-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type catalogUsecase struct {
	DepartmentRepository contracts.DepartmentRepository
	ServiceRepository    contracts.ServiceRepository
	RoomRepository       contracts.RoomRepository
	UserRepository       contracts.UserRepository
	Log                  *zap.Logger
}

var (
	catalogUsecaseInstance contracts.CatalogUsecase
	onceCatalogUsecase     sync.Once
)

func NewCatalogUsecase(
	departmentRepository contracts.DepartmentRepository,
	serviceRepository contracts.ServiceRepository,
	roomRepository contracts.RoomRepository,
	userRepository contracts.UserRepository,
	logger *zap.Logger,
) contracts.CatalogUsecase {
	onceCatalogUsecase.Do(func() {
		instance := &catalogUsecase{
			DepartmentRepository: departmentRepository,
			ServiceRepository:    serviceRepository,
			RoomRepository:       roomRepository,
			UserRepository:       userRepository,
			Log:                  logger,
		}
		catalogUsecaseInstance = instance
	})
	return catalogUsecaseInstance
}

func (uc *catalogUsecase) ListDepartments(ctx context.Context, pagination *requests.Pagination) ([]responses.Department, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.ListDepartments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	departments, err := uc.DepartmentRepository.FindAll(ctx, true)
	if err != nil {
		uc.Log.Error("catalogUsecase.ListDepartments error fetching departments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	total := len(departments)
	start := (pagination.Page - 1) * pagination.PageSize
	if start > total {
		start = total
	}
	end := start + pagination.PageSize
	if end > total {
		end = total
	}

	response := make([]responses.Department, 0, end-start)
	for _, department := range departments[start:end] {
		response = append(response, *utils.MapDepartmentToResponse(&department))
	}

	uc.Log.Info("catalogUsecase.ListDepartments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, total, nil
}

func (uc *catalogUsecase) GetDepartmentDetail(ctx context.Context, departmentID string) (*responses.DepartmentDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.GetDepartmentDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDepartmentIDKey, departmentID),
	)

	objectID, err := primitive.ObjectIDFromHex(departmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	department, err := uc.DepartmentRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrDepartmentNotFound(nil)
	}

	services, err := uc.ServiceRepository.FindByDepartmentID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	doctors, err := uc.UserRepository.FindDoctorsByDepartmentID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	detail := &responses.DepartmentDetail{
		Department: *utils.MapDepartmentToResponse(department),
		Services:   make([]responses.Service, 0, len(services)),
		Doctors:    make([]responses.Doctor, 0, len(doctors)),
	}
	for _, service := range services {
		detail.Services = append(detail.Services, *utils.MapServiceToResponse(&service))
	}
	for _, doctor := range doctors {
		detail.Doctors = append(detail.Doctors, *utils.MapDoctorToResponse(&doctor))
	}

	uc.Log.Info("catalogUsecase.GetDepartmentDetail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDepartmentIDKey, departmentID),
	)
	return detail, nil
}

func (uc *catalogUsecase) ListDoctorsByDepartment(ctx context.Context, departmentID string) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.ListDoctorsByDepartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDepartmentIDKey, departmentID),
	)

	objectID, err := primitive.ObjectIDFromHex(departmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	department, err := uc.DepartmentRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrDepartmentNotFound(nil)
	}

	doctors, err := uc.UserRepository.FindDoctorsByDepartmentID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		response = append(response, *utils.MapDoctorToResponse(&doctor))
	}

	uc.Log.Info("catalogUsecase.ListDoctorsByDepartment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *catalogUsecase) ListServicesByDepartment(ctx context.Context, departmentID string) ([]responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.ListServicesByDepartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDepartmentIDKey, departmentID),
	)

	objectID, err := primitive.ObjectIDFromHex(departmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	department, err := uc.DepartmentRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrDepartmentNotFound(nil)
	}

	services, err := uc.ServiceRepository.FindByDepartmentID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Service, 0, len(services))
	for _, service := range services {
		response = append(response, *utils.MapServiceToResponse(&service))
	}

	uc.Log.Info("catalogUsecase.ListServicesByDepartment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *catalogUsecase) ListDoctors(ctx context.Context, departmentID, specialization string) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var departmentObjectID *primitive.ObjectID
	if departmentID != "" {
		objectID, err := primitive.ObjectIDFromHex(departmentID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		departmentObjectID = &objectID
	}

	doctors, err := uc.UserRepository.FindDoctors(ctx, departmentObjectID, specialization)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		response = append(response, *utils.MapDoctorToResponse(&doctor))
	}

	uc.Log.Info("catalogUsecase.ListDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *catalogUsecase) ListServices(ctx context.Context, departmentID string, pagination *requests.Pagination) ([]responses.Service, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.ListServices called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var departmentObjectID *primitive.ObjectID
	if departmentID != "" {
		objectID, err := primitive.ObjectIDFromHex(departmentID)
		if err != nil {
			return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
		}
		departmentObjectID = &objectID
	}

	services, err := uc.ServiceRepository.FindAll(ctx, departmentObjectID)
	if err != nil {
		return nil, 0, err
	}

	total := len(services)
	start := (pagination.Page - 1) * pagination.PageSize
	if start > total {
		start = total
	}
	end := start + pagination.PageSize
	if end > total {
		end = total
	}

	response := make([]responses.Service, 0, end-start)
	for _, service := range services[start:end] {
		response = append(response, *utils.MapServiceToResponse(&service))
	}

	uc.Log.Info("catalogUsecase.ListServices succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, total, nil
}

func (uc *catalogUsecase) GetServiceDetail(ctx context.Context, serviceID string) (*responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.GetServiceDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID),
	)

	objectID, err := primitive.ObjectIDFromHex(serviceID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	service, err := uc.ServiceRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrServiceNotFound(nil)
	}
	return utils.MapServiceToResponse(service), nil
}

func (uc *catalogUsecase) ListRooms(ctx context.Context) ([]responses.Room, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.ListRooms called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rooms, err := uc.RoomRepository.FindAll(ctx, true)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Room, 0, len(rooms))
	for _, room := range rooms {
		response = append(response, *utils.MapRoomToResponse(&room))
	}

	uc.Log.Info("catalogUsecase.ListRooms succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}
