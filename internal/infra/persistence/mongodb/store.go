package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoDocuments is returned by FindOne when nothing matches.
var ErrNoDocuments = mongo.ErrNoDocuments

// FindOptions controls paging and ordering of Find.
type FindOptions struct {
	Skip  int64
	Limit int64
	Sort  bson.D
}

// UpdateResult reports the outcome of UpdateOne. UpsertedID is empty unless a document was inserted.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
	UpsertedID    string
}

// Store is the collection-level capability the repositories are built on.
type Store interface {
	FindOne(ctx context.Context, collection string, filter, out any) error
	Find(ctx context.Context, collection string, filter any, opts FindOptions, out any) error
	CountDocuments(ctx context.Context, collection string, filter any) (int64, error)
	InsertOne(ctx context.Context, collection string, document any) (string, error)
	UpdateOne(ctx context.Context, collection string, filter, update any, upsert bool) (*UpdateResult, error)
	// FindOneAndUpdate applies update atomically and decodes the document as it was before the write into out.
	// It returns ErrNoDocuments when nothing matched, which with upsert means the document was inserted.
	FindOneAndUpdate(ctx context.Context, collection string, filter, update any, upsert bool, out any) error
	DeleteOne(ctx context.Context, collection string, filter any) (int64, error)
	Aggregate(ctx context.Context, collection string, pipeline, out any) error
}

type store struct {
	db *mongo.Database
}

// NewStore creates a Store over db.
func NewStore(db *mongo.Database) Store {
	return &store{db: db}
}

func (s *store) FindOne(ctx context.Context, collection string, filter, out any) error {
	return s.db.Collection(collection).FindOne(ctx, filter).Decode(out)
}

func (s *store) Find(ctx context.Context, collection string, filter any, opts FindOptions, out any) error {
	findOpts := options.Find()
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if len(opts.Sort) > 0 {
		findOpts.SetSort(opts.Sort)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, findOpts)
	if err != nil {
		return err
	}

	return cursor.All(ctx, out)
}

func (s *store) CountDocuments(ctx context.Context, collection string, filter any) (int64, error) {
	return s.db.Collection(collection).CountDocuments(ctx, filter)
}

func (s *store) InsertOne(ctx context.Context, collection string, document any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, document)
	if err != nil {
		return "", err
	}

	return idString(res.InsertedID), nil
}

func (s *store) UpdateOne(ctx context.Context, collection string, filter, update any, upsert bool) (*UpdateResult, error) {
	res, err := s.db.Collection(collection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(upsert))
	if err != nil {
		return nil, err
	}

	result := &UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
	if res.UpsertedID != nil {
		result.UpsertedID = idString(res.UpsertedID)
	}

	return result, nil
}

func (s *store) FindOneAndUpdate(ctx context.Context, collection string, filter, update any, upsert bool, out any) error {
	opts := options.FindOneAndUpdate().
		SetUpsert(upsert).
		SetReturnDocument(options.Before)

	return s.db.Collection(collection).FindOneAndUpdate(ctx, filter, update, opts).Decode(out)
}

func (s *store) DeleteOne(ctx context.Context, collection string, filter any) (int64, error) {
	res, err := s.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}

	return res.DeletedCount, nil
}

func (s *store) Aggregate(ctx context.Context, collection string, pipeline, out any) error {
	cursor, err := s.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}

	return cursor.All(ctx, out)
}

// sessionStore binds every call to a session so it joins the session's transaction.
type sessionStore struct {
	base    Store
	session mongo.Session
}

func (s *sessionStore) bind(ctx context.Context) context.Context {
	return mongo.NewSessionContext(ctx, s.session)
}

func (s *sessionStore) FindOne(ctx context.Context, collection string, filter, out any) error {
	return s.base.FindOne(s.bind(ctx), collection, filter, out)
}

func (s *sessionStore) Find(ctx context.Context, collection string, filter any, opts FindOptions, out any) error {
	return s.base.Find(s.bind(ctx), collection, filter, opts, out)
}

func (s *sessionStore) CountDocuments(ctx context.Context, collection string, filter any) (int64, error) {
	return s.base.CountDocuments(s.bind(ctx), collection, filter)
}

func (s *sessionStore) InsertOne(ctx context.Context, collection string, document any) (string, error) {
	return s.base.InsertOne(s.bind(ctx), collection, document)
}

func (s *sessionStore) UpdateOne(ctx context.Context, collection string, filter, update any, upsert bool) (*UpdateResult, error) {
	return s.base.UpdateOne(s.bind(ctx), collection, filter, update, upsert)
}

func (s *sessionStore) FindOneAndUpdate(ctx context.Context, collection string, filter, update any, upsert bool, out any) error {
	return s.base.FindOneAndUpdate(s.bind(ctx), collection, filter, update, upsert, out)
}

func (s *sessionStore) DeleteOne(ctx context.Context, collection string, filter any) (int64, error) {
	return s.base.DeleteOne(s.bind(ctx), collection, filter)
}

func (s *sessionStore) Aggregate(ctx context.Context, collection string, pipeline, out any) error {
	return s.base.Aggregate(s.bind(ctx), collection, pipeline, out)
}

func idString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return ""
	}
}

// objectID parses a hex id. Malformed ids never match a stored document.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}

	return oid, true
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
