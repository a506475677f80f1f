package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscriberCollection is the collection holding newsletter subscribers.
const SubscriberCollection = "subscribers"

// SubscriberModel is the BSON document stored in the 'subscribers' collection.
type SubscriberModel struct {
	ID           primitive.ObjectID `bson:"_id"`
	Email        string             `bson:"email"`
	FirstName    *string            `bson:"firstName,omitempty"`
	LastName     *string            `bson:"lastName,omitempty"`
	Preferences  []string           `bson:"preferences,omitempty"`
	SubscribedAt time.Time          `bson:"subscribedAt"`
}
