package mongodb

import (
	"charity/internal/domain/identifier"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func toObjectIDPtr(id *identifier.ID) *primitive.ObjectID {
	if id == nil {
		return nil
	}

	oid := id.ObjectID()

	return &oid
}
