package mongo

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// insertError returns onDuplicate when a unique index rejected the insert.
func insertError(err, onDuplicate error, op string) error {
	if mongo.IsDuplicateKeyError(err) {
		return onDuplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}

// findError returns notFound for an empty result. A nil notFound keeps the
// driver error wrapped, for lookups where a missing document is a fault.
func findError(err, notFound error, op string) error {
	if notFound != nil && errors.Is(err, mongo.ErrNoDocuments) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
