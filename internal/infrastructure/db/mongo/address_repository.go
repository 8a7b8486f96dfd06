package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velostore/commerce-api/internal/core/domain"
)

const addressCollection = "addresses"

// MongoAddressRepository persists delivery addresses.
type MongoAddressRepository struct {
	coll *mongo.Collection
}

func NewAddressRepository(db *mongo.Database) *MongoAddressRepository {
	return &MongoAddressRepository{coll: db.Collection(addressCollection)}
}

type mongoAddress struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Street       string             `bson:"street"`
	BuildingName string             `bson:"building_name"`
	City         string             `bson:"city"`
	State        string             `bson:"state"`
	Country      string             `bson:"country"`
	Pincode      string             `bson:"pincode"`
	Owner        string             `bson:"owner"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (r *MongoAddressRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("ensure address indexes: %w", err)
	}
	return nil
}

func (r *MongoAddressRepository) FindByID(ctx context.Context, id string) (*domain.Address, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAddressNotFound
	}
	var ma mongoAddress
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAddressNotFound
		}
		return nil, fmt.Errorf("find address: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoAddressRepository) ListAll(ctx context.Context) ([]domain.Address, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoAddressRepository) ListByOwner(ctx context.Context, owner string) ([]domain.Address, error) {
	return r.list(ctx, bson.M{"owner": owner})
}

func (r *MongoAddressRepository) list(ctx context.Context, query bson.M) ([]domain.Address, error) {
	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Address
	for cursor.Next(ctx) {
		var ma mongoAddress
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode address: %w", err)
		}
		out = append(out, *ma.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate addresses: %w", err)
	}
	return out, nil
}

func (r *MongoAddressRepository) Create(ctx context.Context, a *domain.Address) (*domain.Address, error) {
	doc := mongoAddress{
		Street:       a.Street,
		BuildingName: a.BuildingName,
		City:         a.City,
		State:        a.State,
		Country:      a.Country,
		Pincode:      a.Pincode,
		Owner:        a.Owner,
		CreatedAt:    a.CreatedAt.Unix(),
		UpdatedAt:    a.UpdatedAt.Unix(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert address: %w", err)
	}
	return r.FindByID(ctx, res.InsertedID.(primitive.ObjectID).Hex())
}

func (r *MongoAddressRepository) Update(ctx context.Context, a *domain.Address) error {
	oid, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return domain.ErrAddressNotFound
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"street":        a.Street,
		"building_name": a.BuildingName,
		"city":          a.City,
		"state":         a.State,
		"country":       a.Country,
		"pincode":       a.Pincode,
		"updated_at":    a.UpdatedAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

func (r *MongoAddressRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAddressNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

func (ma *mongoAddress) toDomain() *domain.Address {
	return &domain.Address{
		ID:           ma.ID.Hex(),
		Street:       ma.Street,
		BuildingName: ma.BuildingName,
		City:         ma.City,
		State:        ma.State,
		Country:      ma.Country,
		Pincode:      ma.Pincode,
		Owner:        ma.Owner,
		CreatedAt:    unixToTime(ma.CreatedAt),
		UpdatedAt:    unixToTime(ma.UpdatedAt),
	}
}
