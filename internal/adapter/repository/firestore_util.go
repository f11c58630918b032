package repository

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore auto-generated document ids.
var firestoreIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{20}$`)

func validFirestoreID(id string) bool {
	return firestoreIDPattern.MatchString(id)
}

// emailKey derives a stable document id from a normalized email, so the
// document id itself enforces one record per address.
func emailKey(email string) string {
	sum := sha256.Sum256([]byte(email))
	return hex.EncodeToString(sum[:])[:20]
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

// collectDocuments drains an iterator, stopping at the first error.
func collectDocuments(iter *firestore.DocumentIterator) ([]*firestore.DocumentSnapshot, error) {
	defer iter.Stop()

	var docs []*firestore.DocumentSnapshot
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
}

func fieldUpdates(fields map[string]interface{}) []firestore.Update {
	updates := make([]firestore.Update, 0, len(fields))
	for key, value := range fields {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{key}, Value: value})
	}
	return updates
}
