package utils

import (
	"time"

	"myhealthcare-service/internal/app/models"
	"myhealthcare-service/internal/pkg/dto/responses"
)

func MapDepartmentToResponse(department *models.Department) *responses.Department {
	return &responses.Department{
		ID:                   department.ID.Hex(),
		Name:                 department.Name,
		Icon:                 department.Icon,
		Description:          department.Description,
		HealthExaminationFee: department.HealthExaminationFee,
	}
}

func MapServiceToResponse(service *models.Service) *responses.Service {
	return &responses.Service{
		ID:           service.ID.Hex(),
		DepartmentID: service.DepartmentID.Hex(),
		Name:         service.Name,
		Description:  service.Description,
		Price:        service.Price,
	}
}

func MapRoomToResponse(room *models.Room) *responses.Room {
	response := &responses.Room{
		ID:         room.ID.Hex(),
		RoomNumber: room.RoomNumber,
		Floor:      room.Floor,
	}
	if room.DepartmentID != nil {
		response.DepartmentID = room.DepartmentID.Hex()
	}
	return response
}

func MapDoctorToResponse(doctor *models.User) *responses.Doctor {
	response := &responses.Doctor{
		ID:       doctor.ID.Hex(),
		FullName: doctor.FullName,
	}
	if doctor.Doctor != nil {
		response.Specialization = doctor.Doctor.Specialization
		response.Title = doctor.Doctor.Title
		response.DepartmentID = doctor.Doctor.DepartmentID.Hex()
		response.Rating = doctor.Doctor.Rating
	}
	return response
}

func MapAppointmentToResponse(
	appointment *models.Appointment,
	patient *models.User,
	doctor *models.User,
	department *models.Department,
	service *models.Service,
	room *models.Room,
) *responses.Appointment {
	response := &responses.Appointment{
		ID:                 appointment.ID.Hex(),
		AppointmentDate:    appointment.AppointmentDate,
		AppointmentTime:    appointment.AppointmentTime,
		Status:             appointment.Status,
		Symptoms:           appointment.Symptoms,
		Reason:             appointment.Reason,
		Notes:              appointment.Notes,
		EstimatedFee:       appointment.EstimatedFee,
		CancellationReason: appointment.CancellationReason,
		CreatedAt:          appointment.CreatedAt.Format(time.RFC3339),
	}

	if patient != nil {
		response.Patient = responses.AppointmentPatient{
			ID:       patient.ID.Hex(),
			FullName: patient.FullName,
			Email:    patient.Email,
		}
	}
	if doctor != nil {
		response.Doctor = responses.AppointmentDoctor{
			ID:       doctor.ID.Hex(),
			FullName: doctor.FullName,
		}
		if doctor.Doctor != nil {
			response.Doctor.Specialization = doctor.Doctor.Specialization
			response.Doctor.Title = doctor.Doctor.Title
			response.Doctor.Rating = doctor.Doctor.Rating
		}
	}
	if department != nil {
		response.Department = MapDepartmentToResponse(department)
	}
	if service != nil {
		response.Service = MapServiceToResponse(service)
	}
	if room != nil {
		response.Room = MapRoomToResponse(room)
	}
	if appointment.CancelledAt != nil {
		response.CancelledAt = appointment.CancelledAt.Format(time.RFC3339)
	}
	if appointment.RescheduledFrom != nil {
		response.RescheduledFrom = &responses.RescheduleOrigin{
			Date: appointment.RescheduledFrom.Date,
			Time: appointment.RescheduledFrom.Time,
		}
	}

	return response
}

func MapMedicalRecordToResponse(record *models.MedicalRecord, createdByName string) *responses.MedicalRecord {
	response := &responses.MedicalRecord{
		ID:            record.ID.Hex(),
		AppointmentID: record.AppointmentID.Hex(),
		Diagnosis:     record.Diagnosis,
		Prescription:  record.Prescription,
		TreatmentPlan: record.TreatmentPlan,
		Notes:         record.Notes,
		FollowUpDate:  record.FollowUpDate,
		VitalSigns:    record.VitalSigns,
		CreatedByName: createdByName,
		CreatedAt:     record.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     record.UpdatedAt.Format(time.RFC3339),
	}
	for _, attachment := range record.Attachments {
		response.Attachments = append(response.Attachments, responses.RecordAttachment{
			ObjectKey:   attachment.ObjectKey,
			FileName:    attachment.FileName,
			ContentType: attachment.ContentType,
			Size:        attachment.Size,
		})
	}
	return response
}
