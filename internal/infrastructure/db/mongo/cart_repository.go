package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velostore/commerce-api/internal/core/domain"
)

const cartCollection = "carts"

// MongoCartRepository persists carts, one document per username.
type MongoCartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{coll: db.Collection(cartCollection)}
}

type mongoCartItem struct {
	ProductID    string  `bson:"product_id"`
	ProductName  string  `bson:"product_name"`
	Quantity     int     `bson:"quantity"`
	Discount     float64 `bson:"discount"`
	ProductPrice float64 `bson:"product_price"`
}

type mongoCart struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Owner      string             `bson:"owner"`
	Items      []mongoCartItem    `bson:"items"`
	TotalPrice float64            `bson:"total_price"`
	CreatedAt  int64              `bson:"created_at"`
	UpdatedAt  int64              `bson:"updated_at"`
}

func (r *MongoCartRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure cart indexes: %w", err)
	}
	return nil
}

func (r *MongoCartRepository) FindByOwner(ctx context.Context, owner string) (*domain.Cart, error) {
	var mc mongoCart
	if err := r.coll.FindOne(ctx, bson.M{"owner": owner}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}
	return mc.toDomain(), nil
}

// Save upserts the owner's cart document.
func (r *MongoCartRepository) Save(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	items := make([]mongoCartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, mongoCartItem(item))
	}

	createdAt := cart.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"owner": cart.Owner},
		bson.M{
			"$set": bson.M{
				"items":       items,
				"total_price": cart.TotalPrice,
				"updated_at":  cart.UpdatedAt.Unix(),
			},
			"$setOnInsert": bson.M{
				"owner":      cart.Owner,
				"created_at": createdAt.Unix(),
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return r.FindByOwner(ctx, cart.Owner)
}

func (mc *mongoCart) toDomain() *domain.Cart {
	items := make([]domain.CartItem, 0, len(mc.Items))
	for _, item := range mc.Items {
		items = append(items, domain.CartItem(item))
	}
	return &domain.Cart{
		ID:         mc.ID.Hex(),
		Owner:      mc.Owner,
		Items:      items,
		TotalPrice: mc.TotalPrice,
		CreatedAt:  unixToTime(mc.CreatedAt),
		UpdatedAt:  unixToTime(mc.UpdatedAt),
	}
}
