package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/TGiulio/nightlog/internal/domain"
)

// MapError converts driver errors to domain errors.
// mongo.ErrNoDocuments becomes domain.ErrNotFound; every other failure,
// including cancelled or timed-out contexts, is a domain.ErrStore that still
// wraps the original error.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrStore, err)
}

// ParseID converts a hex string into an ObjectID.
// Malformed input is reported as domain.ErrInvalidID, never as ErrNotFound.
func ParseID(entity, id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%s %q: %w", entity, id, domain.ErrInvalidID)
	}
	return oid, nil
}
