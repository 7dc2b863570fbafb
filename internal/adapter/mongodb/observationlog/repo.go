// Package observationlog implements the observation log repository using
// MongoDB. Every method performs exactly one store operation.
package observationlog

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/TGiulio/nightlog/internal/adapter/mongodb"
	"github.com/TGiulio/nightlog/internal/domain"
)

const entity = "log"

// Repo provides observation log persistence backed by a MongoDB collection.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new observation log repository.
func New(coll *mongo.Collection) *Repo {
	return &Repo{coll: coll}
}

// EnsureIndexes creates the (user_id, date) index used by ListByUser.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetName("user_id_date"),
	})
	if err != nil {
		return fmt.Errorf("create index user_id_date: %w: %w", domain.ErrStore, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a log by its identifier. When ownerID is not empty the
// lookup is restricted to that user, and a log owned by someone else is
// reported as domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id, ownerID string) (*domain.Log, error) {
	filter, err := idFilter(id, ownerID)
	if err != nil {
		return nil, err
	}

	var doc logDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, entity, id)
	}

	return toDomainLog(doc), nil
}

// ListByUser returns every log of a user ordered by date ascending. Ties keep
// the store's natural order. Returns an empty slice if the user has no logs.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]*domain.Log, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.D{{Key: "user_id", Value: strings.TrimSpace(userID)}}, opts)
	if err != nil {
		return nil, mongodb.MapError(err, "logs of user", userID)
	}

	var docs []logDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, mongodb.MapError(err, "logs of user", userID)
	}

	logs := make([]*domain.Log, len(docs))
	for i, doc := range docs {
		logs[i] = toDomainLog(doc)
	}

	return logs, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create validates and inserts a new log. The store assigns the ID; any ID
// already set on the input is ignored.
func (r *Repo) Create(ctx context.Context, l *domain.Log) (*domain.Log, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	fresh := *l
	fresh.ID = ""

	doc, err := toDocument(&fresh)
	if err != nil {
		return nil, fmt.Errorf("encode log: %w", err)
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, mongodb.MapError(err, entity, "(new)")
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert log: unexpected id type %T: %w", res.InsertedID, domain.ErrStore)
	}

	doc.ID = oid
	return toDomainLog(doc), nil
}

// Update replaces the date and observation of an existing log and returns
// the updated log. user_id and id are never written. It does not upsert: a
// missing log is domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, id, ownerID string, l *domain.Log) (*domain.Log, error) {
	filter, err := idFilter(id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := l.ValidateMutable(); err != nil {
		return nil, err
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "date", Value: domain.NormalizeDate(l.Date)},
		{Key: "observation", Value: toObservationDocument(l.Observation)},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc logDocument
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, entity, id)
	}

	return toDomainLog(doc), nil
}

// Delete permanently removes a log. Returns domain.ErrNotFound if nothing
// matched, so deleting the same ID twice fails the second time.
func (r *Repo) Delete(ctx context.Context, id, ownerID string) error {
	filter, err := idFilter(id, ownerID)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return mongodb.MapError(err, entity, id)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Filters
// ---------------------------------------------------------------------------

func idFilter(id, ownerID string) (bson.D, error) {
	oid, err := mongodb.ParseID(entity, id)
	if err != nil {
		return nil, err
	}

	filter := bson.D{{Key: "_id", Value: oid}}
	if ownerID = strings.TrimSpace(ownerID); ownerID != "" {
		filter = append(filter, bson.E{Key: "user_id", Value: ownerID})
	}
	return filter, nil
}
