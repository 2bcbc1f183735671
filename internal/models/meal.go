package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meal is a published meal listing created by an admin.
type Meal struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title        string             `bson:"title,omitempty" json:"title,omitempty"`
	Category     string             `bson:"category,omitempty" json:"category,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Ingredients  []string           `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64            `bson:"price,omitempty" json:"price,omitempty"`
	Rating       float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	PostTime     string             `bson:"post_time,omitempty" json:"post_time,omitempty"`
	Likes        int                `bson:"likes" json:"likes"`
	ReviewsCount int                `bson:"reviews_count" json:"reviews_count"`
	AdminEmail   string             `bson:"admin_email,omitempty" json:"admin_email,omitempty"`
	AdminName    string             `bson:"admin_name,omitempty" json:"admin_name,omitempty"`
}

// UpcomingMeal is a proposed meal collecting likes before publication.
// LikedBy holds the emails of users who liked it; the client sends the
// whole list back on every update.
type UpcomingMeal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Ingredients []string           `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	PostTime    string             `bson:"post_time,omitempty" json:"post_time,omitempty"`
	Likes       int                `bson:"likes" json:"likes"`
	LikedBy     []string           `bson:"likedBy" json:"likedBy"`
	AdminEmail  string             `bson:"admin_email,omitempty" json:"admin_email,omitempty"`
	AdminName   string             `bson:"admin_name,omitempty" json:"admin_name,omitempty"`
}
