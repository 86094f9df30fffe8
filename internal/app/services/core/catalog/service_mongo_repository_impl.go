package catalog

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

type ServiceMongoRepository struct {
	Collection *mongo.Collection
}

func NewServiceMongoRepository(db *mongo.Database) contracts.ServiceRepository {
	return &ServiceMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionServices),
	}
}

func (r *ServiceMongoRepository) FindByDepartmentID(ctx context.Context, departmentID primitive.ObjectID) ([]models.Service, error) {
	filter := bson.M{
		"department_id": departmentID,
		"is_active":     true,
	}
	findOptions := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return services, nil
}

func (r *ServiceMongoRepository) FindAll(ctx context.Context, departmentID *primitive.ObjectID) ([]models.Service, error) {
	filter := bson.M{"is_active": true}
	if departmentID != nil {
		filter["department_id"] = *departmentID
	}
	findOptions := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return services, nil
}

func (r *ServiceMongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	var service models.Service
	err := r.Collection.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&service)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &service, nil
}
