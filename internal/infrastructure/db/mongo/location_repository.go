package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ecocollect/collection-system/internal/core/domain"
)

const locationsCollection = "locations"

type LocationRepository struct {
	coll *mongo.Collection
}

func NewLocationRepository(db *mongo.Database) *LocationRepository {
	return &LocationRepository{coll: db.Collection(locationsCollection)}
}

type mongoGeolocation struct {
	Latitude  string `bson:"latitude"`
	Longitude string `bson:"longitude"`
}

type mongoLocation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Address     string             `bson:"address"`
	City        string             `bson:"city"`
	Pincode     string             `bson:"pincode"`
	Geolocation mongoGeolocation   `bson:"geolocation"`
}

func toDoc(loc *domain.Location) mongoLocation {
	return mongoLocation{
		Address: loc.Address,
		City:    loc.City,
		Pincode: loc.Pincode,
		Geolocation: mongoGeolocation{
			Latitude:  loc.Geolocation.Latitude,
			Longitude: loc.Geolocation.Longitude,
		},
	}
}

func toDomain(doc mongoLocation) domain.Location {
	return domain.Location{
		ID:      doc.ID.Hex(),
		Address: doc.Address,
		City:    doc.City,
		Pincode: doc.Pincode,
		Geolocation: domain.Geolocation{
			Latitude:  doc.Geolocation.Latitude,
			Longitude: doc.Geolocation.Longitude,
		},
	}
}

// Insert stores a new location document and returns its generated id.
func (r *LocationRepository) Insert(ctx context.Context, loc *domain.Location) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toDoc(loc))
	if err != nil {
		return "", fmt.Errorf("insert location: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert location: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindAll returns every location in natural (insertion) order.
func (r *LocationRepository) FindAll(ctx context.Context) ([]domain.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find locations: %w", err)
	}
	defer cur.Close(ctx)

	locations := []domain.Location{}
	for cur.Next(ctx) {
		var doc mongoLocation
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode location: %w", err)
		}
		locations = append(locations, toDomain(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate locations: %w", err)
	}

	return locations, nil
}

// Replace swaps all mutable fields of the document matching loc.ID in a single
// atomic operation and returns the updated record.
func (r *LocationRepository) Replace(ctx context.Context, loc *domain.Location) (*domain.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(loc.ID)
	if err != nil {
		// A malformed id cannot match any stored document.
		return nil, domain.ErrLocationNotFound
	}

	var doc mongoLocation
	err = r.coll.FindOneAndReplace(
		ctx,
		bson.M{"_id": oid},
		toDoc(loc),
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("replace location: %w", err)
	}

	updated := toDomain(doc)
	return &updated, nil
}

// Delete removes the document with the given id. A zero match count is not an
// error.
func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Nothing stored can carry a malformed id; treat as a no-op delete.
		return nil
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}
