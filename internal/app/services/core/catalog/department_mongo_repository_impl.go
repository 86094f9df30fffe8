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

type DepartmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewDepartmentMongoRepository(db *mongo.Database) contracts.DepartmentRepository {
	return &DepartmentMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionDepartments),
	}
}

func (r *DepartmentMongoRepository) FindAll(ctx context.Context, activeOnly bool) ([]models.Department, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}
	findOptions := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var departments []models.Department
	if err := cursor.All(ctx, &departments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return departments, nil
}

func (r *DepartmentMongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Department, error) {
	var department models.Department
	err := r.Collection.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&department)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &department, nil
}
