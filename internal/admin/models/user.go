package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a document of the users collection. Only the fields the promotion
// tool reads are mapped.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
	Role  string             `bson:"role"`
}
