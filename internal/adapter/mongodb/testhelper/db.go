// Package testhelper starts a shared MongoDB container for repository and
// end-to-end tests.
package testhelper

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const image = "mongo:7.0"

var (
	once      sync.Once
	sharedURI string
	initErr   error
)

// URI starts the shared MongoDB container (once for the entire test run)
// and returns its connection string.
func URI(t *testing.T) string {
	t.Helper()

	once.Do(func() {
		sharedURI, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to start mongo: %v", initErr)
	}
	return sharedURI
}

// SetupTestDB returns a fresh, uniquely named database on the shared
// container. The database is dropped and the client disconnected via
// t.Cleanup; the container lives until the process exits.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := URI(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("testhelper: connect: %v", err)
	}

	db := client.Database(DatabaseName())

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

// DatabaseName returns a unique database name for one test.
func DatabaseName() string {
	return "test_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := tcmongo.Run(ctx, image)
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		return "", fmt.Errorf("connection string: %w", err)
	}

	return uri, nil
}
