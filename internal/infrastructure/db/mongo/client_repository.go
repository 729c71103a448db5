package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bilemo/catalog-api/internal/core/domain"
)

const collectionClients = "clients"

type ClientRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{db: db, col: db.Collection(collectionClients)}
}

type clientDoc struct {
	ID           int64     `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Active       bool      `bson:"active"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (d clientDoc) toDomain() *domain.Client {
	return &domain.Client{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Active:       d.Active,
		CreatedAt:    d.CreatedAt,
	}
}

// Create inserts a new client with a freshly allocated id.
func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionClients)
	if err != nil {
		return nil, err
	}

	doc := clientDoc{
		ID:           id,
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrClientExists
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByEmail retrieves a client regardless of its active flag.
func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindActiveByEmail retrieves an active client. Inactive and unknown clients
// are indistinguishable to the caller.
func (r *ClientRepository) FindActiveByEmail(ctx context.Context, email string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"email": email, "active": true})
}

func (r *ClientRepository) findOne(ctx context.Context, filter bson.M) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc clientDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the unique email index on the clients collection.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_client_email"),
	})
	return err
}
