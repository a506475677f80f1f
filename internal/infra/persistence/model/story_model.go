package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// StoryCollection is the collection holding impact stories.
const StoryCollection = "stories"

// StoryModel is the BSON document stored in the 'stories' collection.
type StoryModel struct {
	ID       primitive.ObjectID `bson:"_id"`
	Title    string             `bson:"title"`
	Content  string             `bson:"content"`
	ImageURL string             `bson:"imageUrl"`
}
