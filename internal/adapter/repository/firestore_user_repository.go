package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) users() *firestore.CollectionRef {
	return r.client.Collection("users")
}

func (r *firestoreUserRepository) Count(ctx context.Context) (int64, error) {
	docs, err := r.users().Select().Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count users", err)
	}
	return int64(len(docs)), nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	doc, err := r.users().Doc(emailKey(email)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

// Create fails with CONFLICT when a document for the email already exists.
func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	ref := r.users().Doc(emailKey(user.Email))
	if _, err := ref.Create(ctx, user); err != nil {
		if isAlreadyExists(err) {
			return errors.Conflict("User with this email already exists", err)
		}
		return errors.Internal("Failed to create user", err)
	}

	user.ID = ref.ID
	return nil
}
