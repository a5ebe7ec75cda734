package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxResults caps every list query. Callers asking for more simply get this
// many documents; there is no pagination beyond the cap.
const MaxResults = 1000

// FindOpts returns list-query options: the driver-managed _id field is
// projected out (only the entity's own id is exposed) and results are capped.
func FindOpts() *options.FindOptions {
	return options.Find().SetProjection(bson.M{"_id": 0}).SetLimit(MaxResults)
}

// FindOneOpts returns single-document query options with the _id projection.
func FindOneOpts() *options.FindOneOptions {
	return options.FindOne().SetProjection(bson.M{"_id": 0})
}
