package appointments

import (
	"context"

	"myhealthcare-service/internal/app/contracts"
	"myhealthcare-service/internal/app/models"
	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Database) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionAppointments),
	}
}

// EnsureIndexes creates the partial unique index guarding against
// double-booking. Only booked and confirmed appointments occupy a slot, so
// cancelled and completed ones are excluded from the constraint.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection(constvars.MongoCollectionAppointments)
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctor_id", Value: 1},
			{Key: "appointment_date", Value: 1},
			{Key: "appointment_time", Value: 1},
		},
		Options: options.Index().
			SetName("uniq_doctor_slot_active").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": []string{
					constvars.AppointmentStatusBooked,
					constvars.AppointmentStatusConfirmed,
				}},
			}),
	}
	_, err := collection.Indexes().CreateOne(ctx, indexModel)
	return err
}

func (r *AppointmentMongoRepository) Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrSlotTaken(err)
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	appointment.ID = result.InsertedID.(primitive.ObjectID)
	return appointment, nil
}

func (r *AppointmentMongoRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	filter := bson.M{"_id": appointment.ID}
	update := bson.M{"$set": appointment}
	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrNewSlotTaken(err)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByFilter(ctx context.Context, filter *contracts.AppointmentDBFilter) ([]models.Appointment, int, error) {
	query := bson.M{}
	if !filter.PatientID.IsZero() {
		query["patient_id"] = filter.PatientID
	}
	if !filter.DoctorID.IsZero() {
		query["doctor_id"] = filter.DoctorID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.DateFrom != "" || filter.DateTo != "" {
		dateRange := bson.M{}
		if filter.DateFrom != "" {
			dateRange["$gte"] = filter.DateFrom
		}
		if filter.DateTo != "" {
			dateRange["$lte"] = filter.DateTo
		}
		query["appointment_date"] = dateRange
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{
			{Key: "appointment_date", Value: -1},
			{Key: "appointment_time", Value: -1},
		}).
		SetSkip(int64((filter.Page - 1) * filter.PageSize)).
		SetLimit(int64(filter.PageSize))

	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, int(total), nil
}

func (r *AppointmentMongoRepository) FindBookedTimesByDoctorDate(ctx context.Context, doctorID primitive.ObjectID, date string) ([]string, error) {
	filter := bson.M{
		"doctor_id":        doctorID,
		"appointment_date": date,
		"status": bson.M{"$in": []string{
			constvars.AppointmentStatusBooked,
			constvars.AppointmentStatusConfirmed,
		}},
	}
	values, err := r.Collection.Distinct(ctx, "appointment_time", filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	times := make([]string, 0, len(values))
	for _, value := range values {
		if slotTime, ok := value.(string); ok {
			times = append(times, slotTime)
		}
	}
	return times, nil
}

func (r *AppointmentMongoRepository) FindDistinctPatientIDsByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]primitive.ObjectID, error) {
	values, err := r.Collection.Distinct(ctx, "patient_id", bson.M{"doctor_id": doctorID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	ids := make([]primitive.ObjectID, 0, len(values))
	for _, value := range values {
		if id, ok := value.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *AppointmentMongoRepository) FindLastCompletedByDoctorPatient(ctx context.Context, doctorID, patientID primitive.ObjectID) (*models.Appointment, error) {
	filter := bson.M{
		"doctor_id":  doctorID,
		"patient_id": patientID,
		"status":     constvars.AppointmentStatusCompleted,
	}
	findOptions := options.FindOne().SetSort(bson.D{
		{Key: "appointment_date", Value: -1},
		{Key: "appointment_time", Value: -1},
	})

	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, filter, findOptions).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) CountByDoctorPatient(ctx context.Context, doctorID, patientID primitive.ObjectID) (int, error) {
	filter := bson.M{
		"doctor_id":  doctorID,
		"patient_id": patientID,
	}
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(total), nil
}
