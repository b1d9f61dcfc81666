package mongodb

import (
	"context"
	"regexp"

	"hostelbites/internal/domain/entity"
	"hostelbites/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type mealRequestRepository struct {
	store Store
}

// NewMealRequestRepository creates a meal request repository on store.
func NewMealRequestRepository(store Store) repository.MealRequestRepository {
	return &mealRequestRepository{store: store}
}

func (repo *mealRequestRepository) Exists(ctx context.Context, key entity.MealRequestKey) (bool, error) {
	oid, ok := objectID(key.MealID)
	if !ok {
		return false, nil
	}

	filter := bson.M{"mealId": oid}
	if key.UserEmail != "" {
		filter["userEmail"] = key.UserEmail
	}

	count, err := repo.store.CountDocuments(ctx, CollectionMealRequests, filter)
	if err != nil {
		return false, storeError(err, "count meal requests")
	}

	return count > 0, nil
}

func (repo *mealRequestRepository) Create(ctx context.Context, req *entity.MealRequest) error {
	mealOID, ok := objectID(req.MealID)
	if !ok {
		return repository.ErrMealNotFound
	}

	doc := &mealRequestDocument{
		MealID:      mealOID,
		UserEmail:   req.UserEmail,
		UserName:    req.UserName,
		Status:      string(req.Status),
		RequestedAt: req.RequestedAt,
	}

	id, err := repo.store.InsertOne(ctx, CollectionMealRequests, doc)
	if err != nil {
		if isDuplicateKey(err) {
			return repository.ErrDuplicateMealRequest
		}

		return storeError(err, "insert meal request")
	}
	req.ID = id

	return nil
}

func (repo *mealRequestRepository) FindByID(ctx context.Context, id string) (*entity.MealRequest, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repository.ErrMealRequestNotFound
	}

	var doc mealRequestDocument
	if err := repo.store.FindOne(ctx, CollectionMealRequests, bson.M{"_id": oid}, &doc); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrMealRequestNotFound
		}

		return nil, storeError(err, "find meal request by id")
	}

	return doc.toDomain(), nil
}

func (repo *mealRequestRepository) UpdateStatus(ctx context.Context, id string, status entity.MealRequestStatus) error {
	oid, ok := objectID(id)
	if !ok {
		return repository.ErrMealRequestNotFound
	}

	update := bson.M{"$set": bson.M{"status": string(status)}}
	res, err := repo.store.UpdateOne(ctx, CollectionMealRequests, bson.M{"_id": oid}, update, false)
	if err != nil {
		return storeError(err, "update meal request status")
	}
	if res.MatchedCount == 0 {
		return repository.ErrMealRequestNotFound
	}

	return nil
}

func (repo *mealRequestRepository) TransitionStatus(ctx context.Context, id string, from, to entity.MealRequestStatus) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}

	filter := bson.M{"_id": oid, "status": string(from)}
	res, err := repo.store.UpdateOne(ctx, CollectionMealRequests, filter, bson.M{"$set": bson.M{"status": string(to)}}, false)
	if err != nil {
		return false, storeError(err, "transition meal request status")
	}

	return res.MatchedCount > 0, nil
}

func (repo *mealRequestRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return repository.ErrMealRequestNotFound
	}

	deleted, err := repo.store.DeleteOne(ctx, CollectionMealRequests, bson.M{"_id": oid})
	if err != nil {
		return storeError(err, "delete meal request")
	}
	if deleted == 0 {
		return repository.ErrMealRequestNotFound
	}

	return nil
}

// requestViewStages joins each request with its meal. Requests whose meal was removed are kept with
// an empty title and zero counts.
func requestViewStages() bson.A {
	return bson.A{
		bson.M{"$lookup": bson.M{
			"from":         CollectionMeals,
			"localField":   "mealId",
			"foreignField": "_id",
			"as":           "meal",
		}},
		bson.M{"$unwind": bson.M{"path": "$meal", "preserveNullAndEmptyArrays": true}},
		bson.M{"$project": bson.M{
			"_id":         0,
			"requestId":   "$_id",
			"mealId":      1,
			"userEmail":   1,
			"userName":    1,
			"status":      1,
			"requestedAt": 1,
			"title":       bson.M{"$ifNull": bson.A{"$meal.title", ""}},
			"likeCount":   bson.M{"$size": bson.M{"$ifNull": bson.A{"$meal.likes", bson.A{}}}},
			"reviewCount": bson.M{"$size": bson.M{"$ifNull": bson.A{"$meal.reviews", bson.A{}}}},
		}},
	}
}

func requestViewPipeline(match bson.M, page entity.Page) bson.A {
	pipeline := bson.A{
		bson.M{"$match": match},
		bson.M{"$sort": bson.D{{Key: "requestedAt", Value: -1}}},
	}
	if page.Skip > 0 {
		pipeline = append(pipeline, bson.M{"$skip": page.Skip})
	}
	if page.Limit > 0 {
		pipeline = append(pipeline, bson.M{"$limit": page.Limit})
	}

	return append(pipeline, requestViewStages()...)
}

func (repo *mealRequestRepository) ListViewsByUser(ctx context.Context, email string) ([]*entity.MealRequestView, error) {
	return repo.aggregateViews(ctx, requestViewPipeline(bson.M{"userEmail": email}, entity.Page{}))
}

func (repo *mealRequestRepository) ListViews(ctx context.Context, filter entity.MealRequestFilter) ([]*entity.MealRequestView, int64, error) {
	match := bson.M{}
	if filter.Status != "" {
		match["status"] = string(filter.Status)
	}
	if filter.Search != "" {
		pattern := bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
		match["$or"] = bson.A{bson.M{"userEmail": pattern}, bson.M{"userName": pattern}}
	}

	total, err := repo.store.CountDocuments(ctx, CollectionMealRequests, match)
	if err != nil {
		return nil, 0, storeError(err, "count meal requests")
	}

	views, err := repo.aggregateViews(ctx, requestViewPipeline(match, filter.Page))
	if err != nil {
		return nil, 0, err
	}

	return views, total, nil
}

func (repo *mealRequestRepository) aggregateViews(ctx context.Context, pipeline bson.A) ([]*entity.MealRequestView, error) {
	var docs []mealRequestViewDocument
	if err := repo.store.Aggregate(ctx, CollectionMealRequests, pipeline, &docs); err != nil {
		return nil, storeError(err, "aggregate meal request views")
	}

	views := make([]*entity.MealRequestView, 0, len(docs))
	for i := range docs {
		views = append(views, docs[i].toDomain())
	}

	return views, nil
}
