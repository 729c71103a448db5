package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bilemo/catalog-api/internal/core/domain"
	"github.com/bilemo/catalog-api/internal/core/ports"
)

const collectionProducts = "products"

type ProductRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{db: db, col: db.Collection(collectionProducts)}
}

// containsFilter builds a case-insensitive substring match for term. The
// term is escaped first so regex metacharacters in user input match
// literally.
func containsFilter(term string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"}
}

// List returns one page of products and the total count over the filtered
// set. Results are ordered newest first with id as explicit tie-break.
func (r *ProductRepository) List(ctx context.Context, f ports.ListProductsFilter) ([]domain.Product, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Brand != "" {
		filter["brand"] = containsFilter(f.Brand)
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(f.Offset)).
		SetLimit(int64(f.Limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	products := []domain.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("decode products: %w", err)
	}
	return products, total, nil
}

// FindByID retrieves a product by numeric id.
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Product
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

// refreshFields is the $set document applied when a (brand, model) entry
// already exists. created_at is not part of it and survives re-saves;
// updated_at is re-stamped on every save.
func refreshFields(p *domain.Product, now time.Time) bson.M {
	return bson.M{
		"name":           p.Name,
		"price":          p.Price,
		"description":    p.Description,
		"specifications": p.Specifications,
		"updated_at":     now,
	}
}

// newProductDoc prepares a first-time entry: assigned id, both timestamps
// stamped to now.
func newProductDoc(p *domain.Product, id int64, now time.Time) domain.Product {
	doc := *p
	doc.ID = id
	doc.CreatedAt = now
	doc.UpdatedAt = now
	return doc
}

// Save inserts the product or refreshes the existing entry with the same
// (brand, model).
func (r *ProductRepository) Save(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	key := bson.M{"brand": p.Brand, "model": p.Model}

	var existing domain.Product
	err := r.col.FindOne(ctx, key).Decode(&existing)
	switch {
	case err == nil:
		update := bson.M{"$set": refreshFields(p, now)}
		if _, err := r.col.UpdateByID(ctx, existing.ID, update); err != nil {
			return nil, fmt.Errorf("update product: %w", err)
		}
		return r.FindByID(ctx, existing.ID)

	case errors.Is(err, mongo.ErrNoDocuments):
		id, err := nextID(ctx, r.db, collectionProducts)
		if err != nil {
			return nil, err
		}
		doc := newProductDoc(p, id, now)
		if _, err := r.col.InsertOne(ctx, doc); err != nil {
			return nil, fmt.Errorf("insert product: %w", err)
		}
		return &doc, nil

	default:
		return nil, fmt.Errorf("find product by brand/model: %w", err)
	}
}

// EnsureIndexes creates the brand and name indexes used by catalog queries.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "brand", Value: 1}}, Options: options.Index().SetName("idx_product_brand")},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetName("idx_product_name")},
		{Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}, Options: options.Index().SetName("idx_product_created_at")},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
