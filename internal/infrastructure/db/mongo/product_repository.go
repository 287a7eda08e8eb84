package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/delispi/storefront-api/internal/core/domain"
	"github.com/delispi/storefront-api/internal/core/ports"
)

const productsCollection = "products"

type ProductRepository struct {
	coll       *mongo.Collection
	categories *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		coll:       db.Collection(productsCollection),
		categories: db.Collection(categoriesCollection),
	}
}

type productDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Description   string             `bson:"description"`
	Price         float64            `bson:"price"`
	OriginalPrice float64            `bson:"original_price,omitempty"`
	CategoryID    string             `bson:"category_id"`
	StockQuantity int                `bson:"stock_quantity"`
	SKU           string             `bson:"sku"`
	Image         string             `bson:"image,omitempty"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (d *productDoc) toDomain() *domain.Product {
	return &domain.Product{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Description:   d.Description,
		Price:         d.Price,
		OriginalPrice: d.OriginalPrice,
		CategoryID:    d.CategoryID,
		StockQuantity: d.StockQuantity,
		SKU:           d.SKU,
		Image:         d.Image,
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func docFromProduct(p *domain.Product) productDoc {
	return productDoc{
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		CategoryID:    p.CategoryID,
		StockQuantity: p.StockQuantity,
		SKU:           p.SKU,
		Image:         p.Image,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, docFromProduct(p))
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}

// FindActiveByID scopes the lookup to active products. Deactivating a product
// removes it from the storefront immediately; the admin console keeps using
// FindByID and still sees it.
func (r *ProductRepository) FindActiveByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "status": domain.ProductActive}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find active product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, p *domain.Product) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productDoc
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"name":           p.Name,
			"description":    p.Description,
			"price":          p.Price,
			"original_price": p.OriginalPrice,
			"category_id":    p.CategoryID,
			"stock_quantity": p.StockQuantity,
			"sku":            p.SKU,
			"image":          p.Image,
			"status":         p.Status,
			"updated_at":     p.UpdatedAt,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// ListActive returns storefront-visible products. Search matches name or
// description with a case-insensitive regex, the way the storefront search
// box has always behaved.
func (r *ProductRepository) ListActive(ctx context.Context, f ports.ProductFilter) ([]domain.Product, error) {
	filter := bson.M{"status": domain.ProductActive}
	if f.CategoryID != "" {
		filter["category_id"] = f.CategoryID
	}
	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(f.Offset).
		SetLimit(f.Limit)

	return r.list(ctx, filter, opts)
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.list(ctx, bson.M{}, opts)
}

func (r *ProductRepository) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{
		"created_at": bson.M{"$gte": start, "$lte": end},
	})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountByCategory groups products by category and returns the top entries by
// count. Category names are resolved per group; the group count is small
// (chart shows at most four slices).
func (r *ProductRepository) CountByCategory(ctx context.Context, limit int64) ([]ports.CategoryCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$category_id", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	defer cursor.Close(ctx)

	var grouped []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &grouped); err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}

	counts := make([]ports.CategoryCount, 0, len(grouped))
	for _, g := range grouped {
		cc := ports.CategoryCount{CategoryID: g.ID, Name: g.ID, Count: g.Count}
		if oid, err := primitive.ObjectIDFromHex(g.ID); err == nil {
			var cat categoryDoc
			if err := r.categories.FindOne(ctx, bson.M{"_id": oid}).Decode(&cat); err == nil {
				cc.Name = cat.Name
			}
		}
		counts = append(counts, cc)
	}
	return counts, nil
}

func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sku", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
