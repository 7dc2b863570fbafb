package observationlog

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/TGiulio/nightlog/internal/domain"
)

// logDocument is the persisted shape of a domain.Log.
type logDocument struct {
	ID          bson.ObjectID       `bson:"_id,omitempty"`
	UserID      string              `bson:"user_id"`
	Date        time.Time           `bson:"date"`
	Observation observationDocument `bson:"observation"`
}

type observationDocument struct {
	ObjectName     string `bson:"object_name"`
	ObjectLocation string `bson:"object_location"`
	Equipment      string `bson:"equipment"`
	Eyepiece       string `bson:"eyepiece"`
	Notes          string `bson:"notes"`
}

// toDocument converts a domain.Log; an empty ID is left for the store to assign.
// user_id is stored trimmed so owner filters match it exactly.
func toDocument(l *domain.Log) (logDocument, error) {
	doc := logDocument{
		UserID:      strings.TrimSpace(l.UserID),
		Date:        domain.NormalizeDate(l.Date),
		Observation: toObservationDocument(l.Observation),
	}

	if l.ID != "" {
		oid, err := bson.ObjectIDFromHex(l.ID)
		if err != nil {
			return logDocument{}, err
		}
		doc.ID = oid
	}

	return doc, nil
}

func toObservationDocument(o domain.Observation) observationDocument {
	return observationDocument{
		ObjectName:     o.ObjectName,
		ObjectLocation: o.ObjectLocation,
		Equipment:      o.Equipment,
		Eyepiece:       o.Eyepiece,
		Notes:          o.Notes,
	}
}

// toDomainLog converts a decoded document into a domain.Log.
func toDomainLog(doc logDocument) *domain.Log {
	return &domain.Log{
		ID:     doc.ID.Hex(),
		UserID: doc.UserID,
		Date:   domain.NormalizeDate(doc.Date),
		Observation: domain.Observation{
			ObjectName:     doc.Observation.ObjectName,
			ObjectLocation: doc.Observation.ObjectLocation,
			Equipment:      doc.Observation.Equipment,
			Eyepiece:       doc.Observation.Eyepiece,
			Notes:          doc.Observation.Notes,
		},
	}
}
