package mongodb

import (
	"context"
	"regexp"

	"hostelbites/internal/domain/entity"
	"hostelbites/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type userRepository struct {
	store Store
}

// NewUserRepository creates a user repository on store.
func NewUserRepository(store Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDocument
	if err := repo.store.FindOne(ctx, CollectionUsers, bson.M{"email": email}, &doc); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, storeError(err, "find user by email")
	}

	return doc.toDomain(), nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	id, err := repo.store.InsertOne(ctx, CollectionUsers, toUserDocument(user))
	if err != nil {
		if isDuplicateKey(err) {
			return repository.ErrUserExists
		}

		return storeError(err, "insert user")
	}
	user.ID = id

	return nil
}

// SetBadge relies on the matched count so re-applying the current badge still succeeds.
func (repo *userRepository) SetBadge(ctx context.Context, email string, badge *string) error {
	update := bson.M{"$unset": bson.M{"badge": ""}}
	if badge != nil {
		update = bson.M{"$set": bson.M{"badge": *badge}}
	}

	res, err := repo.store.UpdateOne(ctx, CollectionUsers, bson.M{"email": email}, update, false)
	if err != nil {
		return storeError(err, "update user badge")
	}
	if res.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) RestoreBadge(ctx context.Context, email, current string, badge *string) (bool, error) {
	update := bson.M{"$unset": bson.M{"badge": ""}}
	if badge != nil {
		update = bson.M{"$set": bson.M{"badge": *badge}}
	}

	res, err := repo.store.UpdateOne(ctx, CollectionUsers, bson.M{"email": email, "badge": current}, update, false)
	if err != nil {
		return false, storeError(err, "restore user badge")
	}

	return res.MatchedCount > 0, nil
}

func (repo *userRepository) List(ctx context.Context, filter entity.UserFilter) ([]*entity.User, int64, error) {
	query := bson.M{}
	if filter.Search != "" {
		pattern := bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
		query["$or"] = bson.A{bson.M{"email": pattern}, bson.M{"name": pattern}}
	}

	total, err := repo.store.CountDocuments(ctx, CollectionUsers, query)
	if err != nil {
		return nil, 0, storeError(err, "count users")
	}

	var docs []userDocument
	opts := FindOptions{
		Skip:  filter.Page.Skip,
		Limit: filter.Page.Limit,
		Sort:  bson.D{{Key: "createdAt", Value: -1}},
	}
	if err := repo.store.Find(ctx, CollectionUsers, query, opts, &docs); err != nil {
		return nil, 0, storeError(err, "find users")
	}

	users := make([]*entity.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].toDomain())
	}

	return users, total, nil
}
