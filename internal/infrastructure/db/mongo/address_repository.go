package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/delispi/storefront-api/internal/core/domain"
)

const addressesCollection = "addresses"

type AddressRepository struct {
	coll *mongo.Collection
}

func NewAddressRepository(db *mongo.Database) *AddressRepository {
	return &AddressRepository{coll: db.Collection(addressesCollection)}
}

type addressDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Label     string             `bson:"label,omitempty"`
	FirstName string             `bson:"first_name"`
	LastName  string             `bson:"last_name"`
	Street    string             `bson:"street"`
	City      string             `bson:"city"`
	State     string             `bson:"state,omitempty"`
	ZipCode   string             `bson:"zip_code"`
	Country   string             `bson:"country,omitempty"`
	Phone     string             `bson:"phone,omitempty"`
}

func (d *addressDoc) toDomain() *domain.PostalAddress {
	return &domain.PostalAddress{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Label:     d.Label,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Street:    d.Street,
		City:      d.City,
		State:     d.State,
		ZipCode:   d.ZipCode,
		Country:   d.Country,
		Phone:     d.Phone,
	}
}

func docFromAddress(a *domain.PostalAddress) addressDoc {
	return addressDoc{
		UserID:    a.UserID,
		Label:     a.Label,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		ZipCode:   a.ZipCode,
		Country:   a.Country,
		Phone:     a.Phone,
	}
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID string) ([]domain.PostalAddress, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer cursor.Close(ctx)

	var addresses []domain.PostalAddress
	for cursor.Next(ctx) {
		var doc addressDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode address: %w", err)
		}
		addresses = append(addresses, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return addresses, nil
}

func (r *AddressRepository) Create(ctx context.Context, a *domain.PostalAddress) (*domain.PostalAddress, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, docFromAddress(a))
	if err != nil {
		return nil, fmt.Errorf("insert address: %w", err)
	}

	created := *a
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// Update rewrites an address only when it belongs to userID; anything else
// reads as not-found.
func (r *AddressRepository) Update(ctx context.Context, id, userID string, a *domain.PostalAddress) (*domain.PostalAddress, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAddressNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc addressDoc
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": bson.M{
			"label":      a.Label,
			"first_name": a.FirstName,
			"last_name":  a.LastName,
			"street":     a.Street,
			"city":       a.City,
			"state":      a.State,
			"zip_code":   a.ZipCode,
			"country":    a.Country,
			"phone":      a.Phone,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, fmt.Errorf("update address: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AddressRepository) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAddressNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

func (r *AddressRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
