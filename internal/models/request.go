package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request statuses. Only admins move a request out of pending.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
)

// MealRequest is a user's request to be served a meal.
type MealRequest struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MealID string             `bson:"mealId,omitempty" json:"mealId,omitempty"`
	Title  string             `bson:"title,omitempty" json:"title,omitempty"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Status string             `bson:"status,omitempty" json:"status,omitempty"`
}
