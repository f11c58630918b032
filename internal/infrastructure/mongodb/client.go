package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	GamesCollection       = "games"
	UsersCollection       = "users"
	AdsCollection         = "ads"
	SubscribersCollection = "subscribers"
)

// Client holds the process-wide connection and the catalog database.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB and verifies the primary is reachable.
func New(ctx context.Context, uri, database string) (*Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Client{
		client: client,
		db:     client.Database(database),
	}, nil
}

func (c *Client) Games() *mongo.Collection {
	return c.db.Collection(GamesCollection)
}

func (c *Client) Users() *mongo.Collection {
	return c.db.Collection(UsersCollection)
}

func (c *Client) Ads() *mongo.Collection {
	return c.db.Collection(AdsCollection)
}

func (c *Client) Subscribers() *mongo.Collection {
	return c.db.Collection(SubscribersCollection)
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// CreateIndexes installs the unique email constraints for users and
// subscribers, which make duplicate inserts fail instead of racing, plus
// the sort and filter indexes used by listings.
func (c *Client) CreateIndexes(ctx context.Context) error {
	unique := []struct {
		coll *mongo.Collection
		name string
	}{
		{c.Users(), UsersCollection},
		{c.Subscribers(), SubscribersCollection},
	}
	for _, u := range unique {
		_, err := u.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("failed to create %s email index: %w", u.name, err)
		}
	}

	_, err := c.Games().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create games indexes: %w", err)
	}

	_, err = c.Ads().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create ads index: %w", err)
	}

	return nil
}
