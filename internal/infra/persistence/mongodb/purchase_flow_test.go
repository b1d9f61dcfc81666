package mongodb

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hostelbites/config"
	"hostelbites/internal/usecase"
	"hostelbites/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// newPurchaseStore answers the package and user lookups of a Gold purchase by a Silver member.
func newPurchaseStore() *fakeStore {
	silver := "Silver"

	return &fakeStore{
		findOne: func(collection string, _ any, out any) error {
			switch collection {
			case CollectionPackages:
				*out.(*packageDocument) = packageDocument{ID: primitive.NewObjectID(), Name: "Gold", Price: 500}
			case CollectionUsers:
				*out.(*userDocument) = userDocument{ID: primitive.NewObjectID(), Email: "alice@example.com", Badge: &silver}
			default:
				return ErrNoDocuments
			}

			return nil
		},
	}
}

func newMongoSubscriptionService(store Store) usecase.SubscriptionUsecase {
	return impl.NewSubscriptionService(impl.SubscriptionServiceParams{
		TxManager:   NewTransactionManager(nil, store, &config.Config{Mongo: &config.MongoConfig{}}),
		UserRepo:    NewUserRepository(store),
		PackageRepo: NewPackageRepository(store),
		PaymentRepo: NewPaymentRepository(store),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func purchaseInput() *usecase.ApplyPurchaseInput {
	return &usecase.ApplyPurchaseInput{
		PackageName:   "Gold",
		UserEmail:     "alice@example.com",
		Amount:        500,
		PaymentMethod: "card",
		TransactionID: "tx2",
	}
}

func TestApplyPurchase_LedgerWrittenOnceWithoutReadBack(t *testing.T) {
	store := newPurchaseStore()
	previousID := primitive.NewObjectID()
	store.findOneAndUpdate = func(_ string, _ any, _ any, _ bool, out any) error {
		*out.(*paymentDocument) = paymentDocument{ID: previousID, UserEmail: "alice@example.com", PackageName: "Silver", TransactionID: "tx1"}

		return nil
	}

	record, err := newMongoSubscriptionService(store).ApplyPurchase(context.Background(), purchaseInput())
	require.NoError(t, err)
	assert.False(t, record.Created)
	assert.Equal(t, previousID.Hex(), record.Payment.ID)
	assert.Equal(t, "tx2", record.Payment.TransactionID)

	var writes []string
	for _, c := range store.calls {
		if c.method == "UpdateOne" || c.method == "FindOneAndUpdate" {
			writes = append(writes, c.method+" "+c.collection)
		}
	}
	assert.Equal(t, []string{"UpdateOne users", "FindOneAndUpdate payments"}, writes)
}

func TestApplyPurchase_LedgerFailureRestoresOnlyAppliedBadge(t *testing.T) {
	store := newPurchaseStore()
	store.findOneAndUpdate = func(string, any, any, bool, any) error {
		return errors.New("socket closed")
	}

	_, err := newMongoSubscriptionService(store).ApplyPurchase(context.Background(), purchaseInput())
	require.Error(t, err)

	var userWrites []storeCall
	for _, c := range store.calls {
		if c.method == "UpdateOne" && c.collection == CollectionUsers {
			userWrites = append(userWrites, c)
		}
	}
	require.Len(t, userWrites, 2)
	assert.Equal(t, bson.M{"$set": bson.M{"badge": "Gold"}}, userWrites[0].update)
	assert.Equal(t, bson.M{"email": "alice@example.com", "badge": "Gold"}, userWrites[1].filter)
	assert.Equal(t, bson.M{"$set": bson.M{"badge": "Silver"}}, userWrites[1].update)
}
