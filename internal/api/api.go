package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hosteleats/backend/internal/store"
)

// writeStoreError maps store failures: a malformed ObjectID in the path
// is a client error, anything else surfaces as a generic 500.
func writeStoreError(c *gin.Context, err error, msg string) {
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	log.Printf("%s: %v", msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func insertResponse(res *mongo.InsertOneResult) gin.H {
	return gin.H{"insertedId": res.InsertedID}
}

func updateResponse(res *mongo.UpdateResult) gin.H {
	return gin.H{"matchedCount": res.MatchedCount, "modifiedCount": res.ModifiedCount}
}

func deleteResponse(res *mongo.DeleteResult) gin.H {
	return gin.H{"deletedCount": res.DeletedCount}
}
