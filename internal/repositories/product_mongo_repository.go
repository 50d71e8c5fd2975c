package repositories

import (
	"context"
	"errors"
	"fmt"

	"partsstore/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductCollection is the document collection backing the catalog.
const ProductCollection = "products"

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository creates a new instance of MongoProductRepository.
func NewMongoProductRepository(coll *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{
		coll: coll,
	}
}

// GetAll returns every product document, oldest first.
func (r *MongoProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product document.
func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product document.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := bsonNow()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update sets the patched fields and returns the document after the update.
func (r *MongoProductRepository) Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	set := patchDocument(patch)
	set["updatedAt"] = bsonNow()

	var product models.Product
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

// Delete removes a product document by its ID.
func (r *MongoProductRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

func patchDocument(p models.ProductPatch) bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.Stock != nil {
		set["stock"] = *p.Stock
	}
	if p.ImageURL != nil {
		set["imageUrl"] = *p.ImageURL
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	return set
}
