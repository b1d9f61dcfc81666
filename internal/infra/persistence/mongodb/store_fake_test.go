package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

type storeCall struct {
	method     string
	collection string
	filter     any
	update     any
	upsert     bool
	opts       FindOptions
	pipeline   any
	document   any
}

// fakeStore records every call and answers from the configured hooks.
type fakeStore struct {
	calls []storeCall

	findOne          func(collection string, filter, out any) error
	find             func(collection string, filter any, out any) error
	count            func(collection string, filter any) (int64, error)
	insertOne        func(collection string, document any) (string, error)
	updateOne        func(collection string, filter, update any, upsert bool) (*UpdateResult, error)
	findOneAndUpdate func(collection string, filter, update any, upsert bool, out any) error
	deleteOne        func(collection string, filter any) (int64, error)
	aggregate        func(collection string, pipeline, out any) error
}

func (f *fakeStore) FindOne(_ context.Context, collection string, filter, out any) error {
	f.calls = append(f.calls, storeCall{method: "FindOne", collection: collection, filter: filter})
	if f.findOne == nil {
		return mongo.ErrNoDocuments
	}

	return f.findOne(collection, filter, out)
}

func (f *fakeStore) Find(_ context.Context, collection string, filter any, opts FindOptions, out any) error {
	f.calls = append(f.calls, storeCall{method: "Find", collection: collection, filter: filter, opts: opts})
	if f.find == nil {
		return nil
	}

	return f.find(collection, filter, out)
}

func (f *fakeStore) CountDocuments(_ context.Context, collection string, filter any) (int64, error) {
	f.calls = append(f.calls, storeCall{method: "CountDocuments", collection: collection, filter: filter})
	if f.count == nil {
		return 0, nil
	}

	return f.count(collection, filter)
}

func (f *fakeStore) InsertOne(_ context.Context, collection string, document any) (string, error) {
	f.calls = append(f.calls, storeCall{method: "InsertOne", collection: collection, document: document})
	if f.insertOne == nil {
		return "65f000000000000000000001", nil
	}

	return f.insertOne(collection, document)
}

func (f *fakeStore) UpdateOne(_ context.Context, collection string, filter, update any, upsert bool) (*UpdateResult, error) {
	f.calls = append(f.calls, storeCall{method: "UpdateOne", collection: collection, filter: filter, update: update, upsert: upsert})
	if f.updateOne == nil {
		return &UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	return f.updateOne(collection, filter, update, upsert)
}

func (f *fakeStore) FindOneAndUpdate(_ context.Context, collection string, filter, update any, upsert bool, out any) error {
	f.calls = append(f.calls, storeCall{method: "FindOneAndUpdate", collection: collection, filter: filter, update: update, upsert: upsert})
	if f.findOneAndUpdate == nil {
		return mongo.ErrNoDocuments
	}

	return f.findOneAndUpdate(collection, filter, update, upsert, out)
}

func (f *fakeStore) DeleteOne(_ context.Context, collection string, filter any) (int64, error) {
	f.calls = append(f.calls, storeCall{method: "DeleteOne", collection: collection, filter: filter})
	if f.deleteOne == nil {
		return 1, nil
	}

	return f.deleteOne(collection, filter)
}

func (f *fakeStore) Aggregate(_ context.Context, collection string, pipeline, out any) error {
	f.calls = append(f.calls, storeCall{method: "Aggregate", collection: collection, pipeline: pipeline})
	if f.aggregate == nil {
		return nil
	}

	return f.aggregate(collection, pipeline, out)
}

func (f *fakeStore) methods() []string {
	methods := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		methods = append(methods, c.method)
	}

	return methods
}

func duplicateKeyError() error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
}
