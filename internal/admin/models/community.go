package models

import (
	"slices"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Community is a document of the communities collection. Moderators and
// Members hold user ids and are kept duplicate-free with $addToSet.
type Community struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	Name       string               `bson:"name"`
	Moderators []primitive.ObjectID `bson:"moderators"`
	Members    []primitive.ObjectID `bson:"members"`
}

func (c *Community) HasModerator(id primitive.ObjectID) bool {
	return slices.Contains(c.Moderators, id)
}

func (c *Community) HasMember(id primitive.ObjectID) bool {
	return slices.Contains(c.Members, id)
}
