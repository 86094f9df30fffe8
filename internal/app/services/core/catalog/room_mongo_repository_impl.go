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

type RoomMongoRepository struct {
	Collection *mongo.Collection
}

func NewRoomMongoRepository(db *mongo.Database) contracts.RoomRepository {
	return &RoomMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionRooms),
	}
}

func (r *RoomMongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error) {
	var room models.Room
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &room, nil
}

func (r *RoomMongoRepository) FindAll(ctx context.Context, activeOnly bool) ([]models.Room, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}
	findOptions := options.Find().SetSort(bson.M{"room_number": 1})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return rooms, nil
}

func (r *RoomMongoRepository) FindFirstActiveByDepartmentID(ctx context.Context, departmentID primitive.ObjectID) (*models.Room, error) {
	var room models.Room
	filter := bson.M{
		"department_id": departmentID,
		"is_active":     true,
	}
	findOptions := options.FindOne().SetSort(bson.M{"room_number": 1})
	err := r.Collection.FindOne(ctx, filter, findOptions).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &room, nil
}
