package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionCounters = "counters"

// nextID allocates the next value of a named sequence using an atomic
// findOneAndUpdate on the counters collection. Ids start at 1.
func nextID(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	res := db.Collection(collectionCounters).FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&counter); err != nil {
		return 0, fmt.Errorf("next id for %s: %w", name, err)
	}
	return counter.Seq, nil
}
