package mongodb

import (
	"context"

	"hostelbites/config"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	CollectionUsers        = "users"
	CollectionMeals        = "meals"
	CollectionPackages     = "packages"
	CollectionPayments     = "payments"
	CollectionMealRequests = "mealRequests"
)

// Names of the unique indexes backing each meal request dedupe scope.
const (
	dedupeIndexMeal     = "uniq_meal"
	dedupeIndexMealUser = "uniq_meal_user"
)

// MongoDB server error codes for a missing index or collection.
const (
	codeNamespaceNotFound = 26
	codeIndexNotFound     = 27
)

// staleIndexes lists the indexes dropped on start, keyed by collection. Only the dedupe index of
// the scope not in use is stale, so switching scope never leaves the old constraint behind.
func staleIndexes(dedupeScope string) map[string][]string {
	stale := dedupeIndexMealUser
	if dedupeScope == config.DedupeScopeMealUser {
		stale = dedupeIndexMeal
	}

	return map[string][]string{CollectionMealRequests: {stale}}
}

// indexModels lists the indexes ensured on start, keyed by collection.
func indexModels(dedupeScope string) map[string][]mongo.IndexModel {
	requestKey := bson.D{{Key: "mealId", Value: 1}}
	requestIndex := dedupeIndexMeal
	if dedupeScope == config.DedupeScopeMealUser {
		requestKey = bson.D{{Key: "mealId", Value: 1}, {Key: "userEmail", Value: 1}}
		requestIndex = dedupeIndexMealUser
	}

	return map[string][]mongo.IndexModel{
		CollectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
		},
		CollectionPackages: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_name")},
		},
		CollectionPayments: {
			{Keys: bson.D{{Key: "userEmail", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_user_email")},
		},
		CollectionMeals: {
			{Keys: bson.D{{Key: "category", Value: 1}}, Options: options.Index().SetName("category")},
			{Keys: bson.D{{Key: "reviews.authorEmail", Value: 1}}, Options: options.Index().SetName("review_author")},
		},
		CollectionMealRequests: {
			{Keys: requestKey, Options: options.Index().SetUnique(true).SetName(requestIndex)},
			{Keys: bson.D{{Key: "userEmail", Value: 1}, {Key: "requestedAt", Value: -1}}, Options: options.Index().SetName("user_requested_at")},
		},
	}
}

// EnsureIndexes drops stale indexes, then creates the unique and lookup indexes. Existing indexes
// with the same definition are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database, dedupeScope string) error {
	for collection, names := range staleIndexes(dedupeScope) {
		for _, name := range names {
			if _, err := db.Collection(collection).Indexes().DropOne(ctx, name); err != nil && !isMissingIndex(err) {
				return errors.Wrapf(err, "failed to drop index %s on %s", name, collection)
			}
		}
	}

	for collection, models := range indexModels(dedupeScope) {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to ensure indexes on %s", collection)
		}
	}

	return nil
}

func isMissingIndex(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == codeIndexNotFound || cmdErr.Code == codeNamespaceNotFound
	}

	return false
}
