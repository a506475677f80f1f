package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// ChildCollection is the collection holding sponsorable children.
const ChildCollection = "children"

// ChildModel is the BSON document stored in the 'children' collection.
// The sponsorship flag keeps the snake_case key used by existing seed data.
type ChildModel struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Country     string             `bson:"country"`
	Age         int                `bson:"age"`
	PhotoURL    string             `bson:"photoUrl"`
	Story       string             `bson:"story"`
	IsSponsored bool               `bson:"is_sponsored"`
}
