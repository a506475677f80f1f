package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonationCollection is the collection holding donation records.
const DonationCollection = "donations"

// DonationModel is the BSON document stored in the 'donations' collection.
type DonationModel struct {
	ID            primitive.ObjectID  `bson:"_id"`
	FirstName     string              `bson:"firstName"`
	LastName      string              `bson:"lastName"`
	Email         string              `bson:"email"`
	Phone         *string             `bson:"phone,omitempty"`
	Amount        *float64            `bson:"amount,omitempty"`
	Currency      *string             `bson:"currency,omitempty"`
	ItemType      *string             `bson:"itemType,omitempty"`
	Description   *string             `bson:"description,omitempty"`
	Type          string              `bson:"type"`
	Category      string              `bson:"category"`
	PaymentMethod *string             `bson:"paymentMethod,omitempty"`
	ChildID       *primitive.ObjectID `bson:"childId,omitempty"`
	CreatedAt     time.Time           `bson:"createdAt"`
}
