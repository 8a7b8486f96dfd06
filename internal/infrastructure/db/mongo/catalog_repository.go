package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/core/ports"
)

const (
	categoryCollection = "categories"
	productCollection  = "products"
)

// MongoCategoryRepository persists categories with a unique name index.
type MongoCategoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *MongoCategoryRepository {
	return &MongoCategoryRepository{coll: db.Collection(categoryCollection)}
}

type mongoCategory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *MongoCategoryRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure category indexes: %w", err)
	}
	return nil
}

func (r *MongoCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}
	var mc mongoCategory
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *MongoCategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	var mc mongoCategory
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *MongoCategoryRepository) List(ctx context.Context, page ports.PageRequest) (*ports.CategoryPage, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, findOptions(page))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cursor.Close(ctx)

	content := make([]domain.Category, 0, page.PageSize)
	for cursor.Next(ctx) {
		var mc mongoCategory
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		content = append(content, *mc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return &ports.CategoryPage{Content: content, TotalElements: total}, nil
}

func (r *MongoCategoryRepository) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	doc := mongoCategory{
		Name:      c.Name,
		CreatedAt: c.CreatedAt.Unix(),
		UpdatedAt: c.UpdatedAt.Unix(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCategoryExists
		}
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return r.FindByID(ctx, res.InsertedID.(primitive.ObjectID).Hex())
}

func (r *MongoCategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return domain.ErrCategoryNotFound
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":       c.Name,
		"updated_at": c.UpdatedAt.Unix(),
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrCategoryExists
		}
		return fmt.Errorf("update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *MongoCategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCategoryNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (mc *mongoCategory) toDomain() *domain.Category {
	return &domain.Category{
		ID:        mc.ID.Hex(),
		Name:      mc.Name,
		CreatedAt: unixToTime(mc.CreatedAt),
		UpdatedAt: unixToTime(mc.UpdatedAt),
	}
}

// MongoProductRepository persists products.
type MongoProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection(productCollection)}
}

type mongoProduct struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description"`
	CategoryID   string             `bson:"category_id"`
	Seller       string             `bson:"seller"`
	Quantity     int                `bson:"quantity"`
	Price        float64            `bson:"price"`
	Discount     float64            `bson:"discount"`
	SpecialPrice float64            `bson:"special_price"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (r *MongoProductRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category_id", Value: 1}, {Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "seller", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("ensure product indexes: %w", err)
	}
	return nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}
	var mp mongoProduct
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoProductRepository) FindByName(ctx context.Context, categoryID, name string) (*domain.Product, error) {
	var mp mongoProduct
	err := r.coll.FindOne(ctx, bson.M{"category_id": categoryID, "name": name}).Decode(&mp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product by name: %w", err)
	}
	return mp.toDomain(), nil
}

// productQuery builds the Mongo filter document. The keyword arrives
// straight from the URL on a public endpoint, so it is quoted into a literal
// substring match; regex metacharacters in it must never reach the server.
func productQuery(filter ports.ProductFilter) bson.M {
	query := bson.M{}
	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	}
	if filter.Seller != "" {
		query["seller"] = filter.Seller
	}
	if filter.Keyword != "" {
		query["name"] = bson.M{"$regex": regexp.QuoteMeta(filter.Keyword), "$options": "i"}
	}
	return query
}

func (r *MongoProductRepository) List(ctx context.Context, filter ports.ProductFilter, page ports.PageRequest) (*ports.ProductPage, error) {
	query := productQuery(filter)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	cursor, err := r.coll.Find(ctx, query, findOptions(page))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	content := make([]domain.Product, 0, page.PageSize)
	for cursor.Next(ctx) {
		var mp mongoProduct
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		content = append(content, *mp.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return &ports.ProductPage{Content: content, TotalElements: total}, nil
}

func (r *MongoProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	doc := mongoProduct{
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		Seller:       p.Seller,
		Quantity:     p.Quantity,
		Price:        p.Price,
		Discount:     p.Discount,
		SpecialPrice: p.SpecialPrice,
		CreatedAt:    p.CreatedAt.Unix(),
		UpdatedAt:    p.UpdatedAt.Unix(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrProductExists
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return r.FindByID(ctx, res.InsertedID.(primitive.ObjectID).Hex())
}

func (r *MongoProductRepository) Update(ctx context.Context, p *domain.Product) error {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return domain.ErrProductNotFound
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":          p.Name,
		"description":   p.Description,
		"quantity":      p.Quantity,
		"price":         p.Price,
		"discount":      p.Discount,
		"special_price": p.SpecialPrice,
		"updated_at":    p.UpdatedAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (mp *mongoProduct) toDomain() *domain.Product {
	return &domain.Product{
		ID:           mp.ID.Hex(),
		Name:         mp.Name,
		Description:  mp.Description,
		CategoryID:   mp.CategoryID,
		Seller:       mp.Seller,
		Quantity:     mp.Quantity,
		Price:        mp.Price,
		Discount:     mp.Discount,
		SpecialPrice: mp.SpecialPrice,
		CreatedAt:    unixToTime(mp.CreatedAt),
		UpdatedAt:    unixToTime(mp.UpdatedAt),
	}
}

// findOptions translates a PageRequest into mongo find options.
func findOptions(page ports.PageRequest) *options.FindOptions {
	order := 1
	if page.SortOrder == "desc" {
		order = -1
	}
	sortBy := page.SortBy
	if sortBy == "" {
		sortBy = "name"
	}
	return options.Find().
		SetSort(bson.D{{Key: sortBy, Value: order}}).
		SetSkip(int64(page.PageNumber * page.PageSize)).
		SetLimit(int64(page.PageSize))
}
