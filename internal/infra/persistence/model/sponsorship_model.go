package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SponsorshipCollection is the collection holding sponsorship records.
const SponsorshipCollection = "sponsorships"

// SponsorshipModel is the BSON document stored in the 'sponsorships' collection.
type SponsorshipModel struct {
	ID            primitive.ObjectID  `bson:"_id"`
	FirstName     string              `bson:"firstName"`
	LastName      string              `bson:"lastName"`
	Email         string              `bson:"email"`
	ChildID       *primitive.ObjectID `bson:"childId,omitempty"`
	MonthlyAmount float64             `bson:"monthlyAmount"`
	PaymentMethod string              `bson:"paymentMethod"`
	Currency      string              `bson:"currency"`
	CreatedAt     time.Time           `bson:"createdAt"`
}
