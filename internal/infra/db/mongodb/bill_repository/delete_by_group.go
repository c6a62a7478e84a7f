package bill_repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteBillsByGroupIdRepository struct {
	Db *mongo.Database
}

func NewDeleteBillsByGroupIdRepository(db *mongo.Database) *DeleteBillsByGroupIdRepository {
	return &DeleteBillsByGroupIdRepository{
		Db: db,
	}
}

func (r *DeleteBillsByGroupIdRepository) DeleteByGroupId(groupId primitive.ObjectID) error {
	collection := r.Db.Collection(BillCollection)

	_, err := collection.DeleteMany(context.Background(), bson.M{"group_id": groupId.Hex()})
	return err
}
