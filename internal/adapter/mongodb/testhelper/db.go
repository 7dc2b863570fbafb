package testhelper

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/TGiulio/nightlog/internal/config"
)

const testDatabase = "nightlog_test"

var (
	once      sync.Once
	sharedURI string
	initErr   error
)

// SetupTestCollection starts a shared MongoDB container (once for the entire
// test run) and returns a fresh, uniquely named collection in it. The
// collection is dropped and the client disconnected via t.Cleanup; the
// container lives until the process exits. Skipped under -short.
func SetupTestCollection(t *testing.T) *mongo.Collection {
	t.Helper()

	cfg := DatabaseConfig(t)

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URL))
	if err != nil {
		t.Fatalf("testhelper: failed to create mongo client: %v", err)
	}

	coll := client.Database(cfg.Name).Collection(cfg.Collection)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = coll.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return coll
}

// DatabaseConfig returns a config pointing at the shared container with a
// unique collection name, for tests that go through mongodb.Connect.
func DatabaseConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: skipping MongoDB container test in -short mode")
	}

	once.Do(func() {
		sharedURI, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	return config.DatabaseConfig{
		URL:            sharedURI,
		Name:           testDatabase,
		Collection:     "logs_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		ConnectTimeout: 10 * time.Second,
		StableAPI:      true,
	}
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := tcmongo.Run(ctx, "mongo:7")
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return "", fmt.Errorf("get connection string: %w", err)
	}

	return uri, nil
}
