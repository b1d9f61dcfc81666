package mongodb

import (
	"context"
	"regexp"

	"hostelbites/internal/domain/entity"
	"hostelbites/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type mealRepository struct {
	store Store
}

// NewMealRepository creates a meal repository on store.
func NewMealRepository(store Store) repository.MealRepository {
	return &mealRepository{store: store}
}

func (repo *mealRepository) FindByID(ctx context.Context, id string) (*entity.Meal, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repository.ErrMealNotFound
	}

	var doc mealDocument
	if err := repo.store.FindOne(ctx, CollectionMeals, bson.M{"_id": oid}, &doc); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrMealNotFound
		}

		return nil, storeError(err, "find meal by id")
	}

	return doc.toDomain(), nil
}

func mealQuery(filter entity.MealFilter) bson.M {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		query["title"] = bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
	}

	price := bson.M{}
	if filter.MinPrice > 0 {
		price["$gte"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		price["$lte"] = filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	return query
}

func (repo *mealRepository) List(ctx context.Context, filter entity.MealFilter) ([]*entity.Meal, int64, error) {
	query := mealQuery(filter)

	total, err := repo.store.CountDocuments(ctx, CollectionMeals, query)
	if err != nil {
		return nil, 0, storeError(err, "count meals")
	}

	var docs []mealDocument
	opts := FindOptions{
		Skip:  filter.Page.Skip,
		Limit: filter.Page.Limit,
		Sort:  bson.D{{Key: "postedAt", Value: -1}},
	}
	if err := repo.store.Find(ctx, CollectionMeals, query, opts, &docs); err != nil {
		return nil, 0, storeError(err, "find meals")
	}

	meals := make([]*entity.Meal, 0, len(docs))
	for i := range docs {
		meals = append(meals, docs[i].toDomain())
	}

	return meals, total, nil
}

func (repo *mealRepository) Create(ctx context.Context, meal *entity.Meal) error {
	id, err := repo.store.InsertOne(ctx, CollectionMeals, toMealDocument(meal))
	if err != nil {
		return storeError(err, "insert meal")
	}
	meal.ID = id

	return nil
}

func (repo *mealRepository) AddLike(ctx context.Context, mealID, email string) (bool, error) {
	return repo.updateLikes(ctx, mealID, bson.M{"$addToSet": bson.M{"likes": email}})
}

func (repo *mealRepository) RemoveLike(ctx context.Context, mealID, email string) (bool, error) {
	return repo.updateLikes(ctx, mealID, bson.M{"$pull": bson.M{"likes": email}})
}

// updateLikes reports whether the like set changed. A zero match means the meal does not exist.
func (repo *mealRepository) updateLikes(ctx context.Context, mealID string, update bson.M) (bool, error) {
	oid, ok := objectID(mealID)
	if !ok {
		return false, repository.ErrMealNotFound
	}

	res, err := repo.store.UpdateOne(ctx, CollectionMeals, bson.M{"_id": oid}, update, false)
	if err != nil {
		return false, storeError(err, "update meal likes")
	}
	if res.MatchedCount == 0 {
		return false, repository.ErrMealNotFound
	}

	return res.ModifiedCount > 0, nil
}

func (repo *mealRepository) AppendReview(ctx context.Context, mealID string, review entity.Review) error {
	oid, ok := objectID(mealID)
	if !ok {
		return repository.ErrMealNotFound
	}

	update := bson.M{"$push": bson.M{"reviews": toReviewDocument(review)}}
	res, err := repo.store.UpdateOne(ctx, CollectionMeals, bson.M{"_id": oid}, update, false)
	if err != nil {
		return storeError(err, "append meal review")
	}
	if res.MatchedCount == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// reviewsByAuthorPipeline unwinds embedded reviews and keeps those written by email.
// The leading match only narrows the meal scan through the reviews.authorEmail index.
func reviewsByAuthorPipeline(email string) bson.A {
	return bson.A{
		bson.M{"$match": bson.M{"reviews.authorEmail": email}},
		bson.M{"$unwind": "$reviews"},
		bson.M{"$match": bson.M{"reviews.authorEmail": email}},
		bson.M{"$project": bson.M{
			"_id":       0,
			"mealId":    "$_id",
			"mealTitle": "$title",
			"likeCount": bson.M{"$size": bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}},
			"review":    "$reviews",
		}},
	}
}

func (repo *mealRepository) FindReviewsByAuthor(ctx context.Context, email string) ([]*entity.UserReview, error) {
	var docs []userReviewDocument
	if err := repo.store.Aggregate(ctx, CollectionMeals, reviewsByAuthorPipeline(email), &docs); err != nil {
		return nil, storeError(err, "aggregate reviews by author")
	}

	reviews := make([]*entity.UserReview, 0, len(docs))
	for i := range docs {
		reviews = append(reviews, docs[i].toDomain())
	}

	return reviews, nil
}
