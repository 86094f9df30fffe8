package medicalrecords

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

type MedicalRecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicalRecordMongoRepository(db *mongo.Database) contracts.MedicalRecordRepository {
	return &MedicalRecordMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionMedicalRecords),
	}
}

// EnsureIndexes enforces the one-record-per-appointment rule at the
// database level.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection(constvars.MongoCollectionMedicalRecords)
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "appointment_id", Value: 1}},
		Options: options.Index().SetName("uniq_appointment_record").SetUnique(true),
	}
	_, err := collection.Indexes().CreateOne(ctx, indexModel)
	return err
}

func (r *MedicalRecordMongoRepository) Upsert(ctx context.Context, record *models.MedicalRecord) (*models.MedicalRecord, error) {
	filter := bson.M{"appointment_id": record.AppointmentID}
	update := bson.M{
		"$set": bson.M{
			"diagnosis":      record.Diagnosis,
			"prescription":   record.Prescription,
			"treatment_plan": record.TreatmentPlan,
			"notes":          record.Notes,
			"follow_up_date": record.FollowUpDate,
			"vital_signs":    record.VitalSigns,
			"updated_at":     record.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"appointment_id": record.AppointmentID,
			"created_by":     record.CreatedBy,
			"created_at":     record.CreatedAt,
		},
	}

	updateOptions := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.MedicalRecord
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, updateOptions).Decode(&saved)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &saved, nil
}

func (r *MedicalRecordMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID primitive.ObjectID) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	err := r.Collection.FindOne(ctx, bson.M{"appointment_id": appointmentID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (r *MedicalRecordMongoRepository) FindByAppointmentIDs(ctx context.Context, appointmentIDs []primitive.ObjectID) ([]models.MedicalRecord, error) {
	if len(appointmentIDs) == 0 {
		return nil, nil
	}
	filter := bson.M{"appointment_id": bson.M{"$in": appointmentIDs}}
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var records []models.MedicalRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}

func (r *MedicalRecordMongoRepository) FindByCreatedBy(ctx context.Context, doctorID primitive.ObjectID) ([]models.MedicalRecord, error) {
	filter := bson.M{"created_by": doctorID}
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var records []models.MedicalRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}

func (r *MedicalRecordMongoRepository) AppendAttachment(ctx context.Context, recordID primitive.ObjectID, attachment *models.RecordAttachment) error {
	filter := bson.M{"_id": recordID}
	update := bson.M{
		"$push": bson.M{"attachments": attachment},
		"$set":  bson.M{"updated_at": attachment.UploadedAt},
	}
	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
