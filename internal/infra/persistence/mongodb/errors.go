package mongodb

import (
	domainerrors "hostelbites/internal/domain/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// storeError wraps a driver failure for the usecase layer.
func storeError(err error, operation string) error {
	return domainerrors.NewStoreError(err, operation)
}

func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
