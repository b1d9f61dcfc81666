package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"hostelbites/config"
	"hostelbites/internal/domain/entity"
	"hostelbites/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newIntegrationDatabase connects to MONGO_TEST_URI and returns a throwaway database.
func newIntegrationDatabase(t *testing.T, scope string) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	db := client.Database("hostelbites_test_" + uuid.NewString()[:8])
	require.NoError(t, EnsureIndexes(ctx, db, scope))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

func TestIntegration_PurchaseKeepsOnePaymentPerUser(t *testing.T) {
	db := newIntegrationDatabase(t, config.DedupeScopeMeal)
	store := NewStore(db)
	ctx := context.Background()

	users := NewUserRepository(store)
	payments := NewPaymentRepository(store)

	require.NoError(t, users.Create(ctx, &entity.User{Email: "a@x.com", Role: entity.RoleUser, CreatedAt: time.Now().UTC()}))

	for i, txID := range []string{"tx1", "tx2"} {
		badge := "Gold"
		require.NoError(t, users.SetBadge(ctx, "a@x.com", &badge))

		record, err := payments.UpsertByEmail(ctx, &entity.Payment{
			UserEmail:     "a@x.com",
			PackageName:   "Gold",
			Amount:        500,
			PaymentMethod: "card",
			TransactionID: txID,
			PaidAt:        time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.Equal(t, i == 0, record.Created)
	}

	count, err := store.CountDocuments(ctx, CollectionPayments, map[string]any{"userEmail": "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	payment, err := payments.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "tx2", payment.TransactionID)

	user, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, user.Badge)
	assert.Equal(t, "Gold", *user.Badge)

	badge := "Gold"
	err = users.SetBadge(ctx, "nobody@x.com", &badge)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestIntegration_MealRequestViewsAndDedupe(t *testing.T) {
	db := newIntegrationDatabase(t, config.DedupeScopeMeal)
	store := NewStore(db)
	ctx := context.Background()

	meals := NewMealRepository(store)
	requests := NewMealRequestRepository(store)

	meal := &entity.Meal{Title: "Biryani", Category: "Lunch", PostedAt: time.Now().UTC()}
	require.NoError(t, meals.Create(ctx, meal))

	liked, err := meals.AddLike(ctx, meal.ID, "a@x.com")
	require.NoError(t, err)
	assert.True(t, liked)
	liked, err = meals.AddLike(ctx, meal.ID, "a@x.com")
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, meals.AppendReview(ctx, meal.ID, entity.Review{AuthorEmail: "a@x.com", Text: "good", Rating: 4}))
	require.NoError(t, meals.AppendReview(ctx, meal.ID, entity.Review{AuthorEmail: "b@x.com", Text: "fine", Rating: 3}))

	require.NoError(t, requests.Create(ctx, &entity.MealRequest{
		MealID:      meal.ID,
		UserEmail:   "a@x.com",
		Status:      entity.MealRequestPending,
		RequestedAt: time.Now().UTC(),
	}))

	err = requests.Create(ctx, &entity.MealRequest{MealID: meal.ID, UserEmail: "b@x.com", Status: entity.MealRequestPending})
	assert.ErrorIs(t, err, repository.ErrDuplicateMealRequest)

	views, err := requests.ListViewsByUser(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Biryani", views[0].Title)
	assert.Equal(t, 1, views[0].LikeCount)
	assert.Equal(t, 2, views[0].ReviewCount)

	reviews, err := meals.FindReviewsByAuthor(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "good", reviews[0].Review.Text)
	assert.Equal(t, 1, reviews[0].LikeCount)
}

func TestIntegration_SwitchingDedupeScopeReplacesIndex(t *testing.T) {
	db := newIntegrationDatabase(t, config.DedupeScopeMeal)
	ctx := context.Background()

	require.NoError(t, EnsureIndexes(ctx, db, config.DedupeScopeMealUser))

	specs, err := db.Collection(CollectionMealRequests).Indexes().ListSpecifications(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.Name)
	}
	assert.Contains(t, names, "uniq_meal_user")
	assert.NotContains(t, names, "uniq_meal")

	requests := NewMealRequestRepository(NewStore(db))
	for _, email := range []string{"a@x.com", "b@x.com"} {
		require.NoError(t, requests.Create(ctx, &entity.MealRequest{
			MealID:      testMealID,
			UserEmail:   email,
			Status:      entity.MealRequestPending,
			RequestedAt: time.Now().UTC(),
		}))
	}
}
