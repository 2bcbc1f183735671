package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a user's free-text review of a meal.
type Review struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MealID string             `bson:"mealId,omitempty" json:"mealId,omitempty"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Review string             `bson:"review" json:"review"`
	Rating float64            `bson:"rating,omitempty" json:"rating,omitempty"`
}
