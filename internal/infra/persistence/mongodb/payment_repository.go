package mongodb

import (
	"context"

	"hostelbites/internal/domain/entity"
	"hostelbites/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type paymentRepository struct {
	store Store
}

// NewPaymentRepository creates a payment ledger repository on store.
func NewPaymentRepository(store Store) repository.PaymentRepository {
	return &paymentRepository{store: store}
}

// UpsertByEmail writes the entry keyed by userEmail in one atomic find-and-modify. Every stored
// field except _id comes from payment, so the post-upsert record is rebuilt from the pre-image id
// without a second read. An inserted entry gets the id set on insert.
func (repo *paymentRepository) UpsertByEmail(ctx context.Context, payment *entity.Payment) (*entity.PaymentRecord, error) {
	insertID := primitive.NewObjectID()
	filter := bson.M{"userEmail": payment.UserEmail}
	update := bson.M{
		"$set": bson.M{
			"packageName":   payment.PackageName,
			"amount":        payment.Amount,
			"paymentMethod": payment.PaymentMethod,
			"transactionId": payment.TransactionID,
			"paidAt":        payment.PaidAt,
		},
		"$setOnInsert": bson.M{"_id": insertID},
	}

	var previous paymentDocument
	created := false
	if err := repo.store.FindOneAndUpdate(ctx, CollectionPayments, filter, update, true, &previous); err != nil {
		if !isNoDocuments(err) {
			return nil, storeError(err, "upsert payment")
		}
		created = true
	}

	doc := paymentDocument{
		ID:            previous.ID,
		UserEmail:     payment.UserEmail,
		PackageName:   payment.PackageName,
		Amount:        payment.Amount,
		PaymentMethod: payment.PaymentMethod,
		TransactionID: payment.TransactionID,
		PaidAt:        payment.PaidAt,
	}
	if created {
		doc.ID = insertID
	}

	return &entity.PaymentRecord{
		Payment: doc.toDomain(),
		Created: created,
	}, nil
}

func (repo *paymentRepository) FindByEmail(ctx context.Context, email string) (*entity.Payment, error) {
	var doc paymentDocument
	if err := repo.store.FindOne(ctx, CollectionPayments, bson.M{"userEmail": email}, &doc); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, storeError(err, "find payment by email")
	}

	return doc.toDomain(), nil
}

func (repo *paymentRepository) List(ctx context.Context, page entity.Page) ([]*entity.Payment, int64, error) {
	total, err := repo.store.CountDocuments(ctx, CollectionPayments, bson.M{})
	if err != nil {
		return nil, 0, storeError(err, "count payments")
	}

	var docs []paymentDocument
	opts := FindOptions{
		Skip:  page.Skip,
		Limit: page.Limit,
		Sort:  bson.D{{Key: "paidAt", Value: -1}},
	}
	if err := repo.store.Find(ctx, CollectionPayments, bson.M{}, opts, &docs); err != nil {
		return nil, 0, storeError(err, "find payments")
	}

	payments := make([]*entity.Payment, 0, len(docs))
	for i := range docs {
		payments = append(payments, docs[i].toDomain())
	}

	return payments, total, nil
}
