package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an immutable record of a completed package purchase.
// Inserting one derives the user's badge from PackageName.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	PackageName   string             `bson:"packageName,omitempty" json:"packageName,omitempty"`
	Amount        float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
}
