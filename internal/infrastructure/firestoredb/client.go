package firestoredb

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"gamecatalog/pkg/logger"
)

// CredentialOptions resolves service-account credentials the same way for
// every Google client: inline JSON first, then a key file, then ambient
// application-default credentials.
func CredentialOptions() []option.ClientOption {
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		logger.Info("Using service account from environment variable")
		return []option.ClientOption{option.WithCredentialsJSON([]byte(serviceAccountJSON))}
	}

	if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		logger.Info("Using service account from file: %s", serviceAccountPath)
		return []option.ClientOption{option.WithCredentialsFile(serviceAccountPath)}
	}

	logger.Info("Using application default credentials")
	return nil
}

// NewClient opens a Firestore client for the project. When
// FIRESTORE_EMULATOR_HOST is set the library talks to the emulator.
func NewClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	client, err := firestore.NewClient(ctx, projectID, CredentialOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return client, nil
}

// Pinger checks reachability by listing the first root collection.
type Pinger struct {
	Client *firestore.Client
}

func (p Pinger) Ping(ctx context.Context) error {
	_, err := p.Client.Collections(ctx).Next()
	if err != nil && err != iterator.Done {
		return err
	}
	return nil
}
