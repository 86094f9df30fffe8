package slot

import (
	"context"
	"sync"
	"time"

	"myhealthcare-service/internal/app/contracts"
	"myhealthcare-service/internal/app/models"
	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/dto/responses"
	"myhealthcare-service/internal/pkg/exceptions"
	"myhealthcare-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type slotUsecase struct {
	UserRepository        contracts.UserRepository
	DepartmentRepository  contracts.DepartmentRepository
	RoomRepository        contracts.RoomRepository
	AppointmentRepository contracts.AppointmentRepository
	Log                   *zap.Logger
}

var (
	slotUsecaseInstance contracts.SlotUsecase
	onceSlotUsecase     sync.Once
)

func NewSlotUsecase(
	userRepository contracts.UserRepository,
	departmentRepository contracts.DepartmentRepository,
	roomRepository contracts.RoomRepository,
	appointmentRepository contracts.AppointmentRepository,
	logger *zap.Logger,
) contracts.SlotUsecase {
	onceSlotUsecase.Do(func() {
		instance := &slotUsecase{
			UserRepository:        userRepository,
			DepartmentRepository:  departmentRepository,
			RoomRepository:        roomRepository,
			AppointmentRepository: appointmentRepository,
			Log:                   logger,
		}
		slotUsecaseInstance = instance
	})
	return slotUsecaseInstance
}

func (uc *slotUsecase) AvailableSlots(ctx context.Context, doctorID, date string) (*responses.AvailableSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.AvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, date),
	)

	requestedDate, err := utils.ParseAppointmentDate(date)
	if err != nil {
		return nil, exceptions.ErrInvalidDateFormat(err)
	}

	today := utils.TruncateToDay(time.Now())
	if requestedDate.Before(today) {
		return nil, exceptions.ErrDateInPast(nil)
	}
	if requestedDate.After(today.AddDate(0, 0, constvars.BookingMaxDaysAhead)) {
		return nil, exceptions.ErrDateTooFarAhead(nil)
	}

	doctorObjectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	doctor, err := uc.UserRepository.FindDoctorByID(ctx, doctorObjectID)
	if err != nil {
		uc.Log.Error("slotUsecase.AvailableSlots error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	bookedTimes, err := uc.AppointmentRepository.FindBookedTimesByDoctorDate(ctx, doctorObjectID, date)
	if err != nil {
		uc.Log.Error("slotUsecase.AvailableSlots error fetching booked times",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	booked := make(map[string]bool, len(bookedTimes))
	for _, bookedTime := range bookedTimes {
		booked[bookedTime] = true
	}

	roomNumber := uc.resolveRoomNumber(ctx, doctor)

	response := &responses.AvailableSlots{
		Date: date,
		Doctor: responses.SlotDoctor{
			ID:       doctor.ID.Hex(),
			FullName: doctor.FullName,
		},
		AvailableSlots: make([]responses.Slot, 0, constvars.SlotCount),
	}
	if doctor.Doctor != nil {
		response.Doctor.Specialization = doctor.Doctor.Specialization

		department, err := uc.DepartmentRepository.FindByID(ctx, doctor.Doctor.DepartmentID)
		if err != nil {
			return nil, err
		}
		if department != nil {
			response.Department = utils.MapDepartmentToResponse(department)
		}
	}

	now := time.Now()
	isToday := requestedDate.Equal(today)
	for _, slotTime := range GenerateDailySlots() {
		available := !booked[slotTime]
		if available && isToday {
			startsAt, err := utils.ParseAppointmentDateTime(date, slotTime)
			if err == nil && !startsAt.After(now) {
				available = false
			}
		}
		entry := responses.Slot{
			Time:      slotTime,
			Available: available,
		}
		if available {
			entry.Room = roomNumber
		}
		response.AvailableSlots = append(response.AvailableSlots, entry)
	}

	uc.Log.Info("slotUsecase.AvailableSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response.AvailableSlots)),
	)
	return response, nil
}

// resolveRoomNumber prefers the doctor's own room, then the first active
// room of the doctor's department. Failure to resolve leaves it blank.
func (uc *slotUsecase) resolveRoomNumber(ctx context.Context, doctor *models.User) string {
	if doctor.Doctor == nil {
		return ""
	}
	if doctor.Doctor.RoomID != nil {
		room, err := uc.RoomRepository.FindByID(ctx, *doctor.Doctor.RoomID)
		if err == nil && room != nil {
			return room.RoomNumber
		}
	}
	room, err := uc.RoomRepository.FindFirstActiveByDepartmentID(ctx, doctor.Doctor.DepartmentID)
	if err == nil && room != nil {
		return room.RoomNumber
	}
	return ""
}
