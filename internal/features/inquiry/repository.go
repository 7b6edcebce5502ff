package inquiry

import (
	"context"
	"errors"
	"time"

	"edu-crm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *Inquiry) error
	Get(ctx context.Context, id string) (*Inquiry, error)
	Find(ctx context.Context, filter bson.M, page, limit int64) ([]Inquiry, int64, error)
	Update(ctx context.Context, id string, updates bson.M) error
	UpdateStage(ctx context.Context, id string, stage string) error
	Delete(ctx context.Context, id string) error
	FindByPhone(ctx context.Context, phone string) (*Inquiry, error)

	// Aggregation capabilities consumed by the report core
	CountWithFilter(ctx context.Context, filter bson.M) (int64, error)
	GroupByField(ctx context.Context, field string, filter bson.M) ([]GroupCount, error)
	ConvertedCountByField(ctx context.Context, field string, filter bson.M) (map[string]int64, error)
	FindCreatedSince(ctx context.Context, since time.Time, filter bson.M) ([]TrendRecord, error)
}

type InquiryRepositoryImpl struct {
	collection *mongo.Collection
}

func NewInquiryRepository(db *database.MongodbDB) InquiryRepository {
	return &InquiryRepositoryImpl{
		collection: db.DB.Collection("inquiries"),
	}
}

func (r *InquiryRepositoryImpl) Create(ctx context.Context, inquiry *Inquiry) error {
	if inquiry.ID.IsZero() {
		inquiry.ID = primitive.NewObjectID()
	}
	if inquiry.Stage == "" {
		inquiry.Stage = StageNew
	}
	inquiry.CreatedAt = time.Now()
	inquiry.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, inquiry)
	return err
}

func (r *InquiryRepositoryImpl) Get(ctx context.Context, id string) (*Inquiry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var inquiry Inquiry
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&inquiry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("inquiry not found")
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *InquiryRepositoryImpl) Find(ctx context.Context, filter bson.M, page, limit int64) ([]Inquiry, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var inquiries []Inquiry
	if err = cursor.All(ctx, &inquiries); err != nil {
		return nil, 0, err
	}
	return inquiries, total, nil
}

func (r *InquiryRepositoryImpl) Update(ctx context.Context, id string, updates bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("inquiry not found")
	}
	return nil
}

func (r *InquiryRepositoryImpl) UpdateStage(ctx context.Context, id string, stage string) error {
	return r.Update(ctx, id, bson.M{"stage": stage})
}

func (r *InquiryRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("inquiry not found")
	}
	return nil
}

func (r *InquiryRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*Inquiry, error) {
	var inquiry Inquiry
	err := r.collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&inquiry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *InquiryRepositoryImpl) CountWithFilter(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}

// GroupByField groups matching documents by a field and counts them,
// sorted descending by count. The key order returned by the pipeline is
// the tie-break for equal counts.
func (r *InquiryRepositoryImpl) GroupByField(ctx context.Context, field string, filter bson.M) ([]GroupCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []GroupCount
	if err = cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// ConvertedCountByField counts converted-stage documents per field value
// in a single grouped query instead of one count query per group.
func (r *InquiryRepositoryImpl) ConvertedCountByField(ctx context.Context, field string, filter bson.M) (map[string]int64, error) {
	match := bson.M{"stage": bson.M{"$in": ConvertedStages}}
	for k, v := range filter {
		match[k] = v
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []GroupCount
	if err = cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(groups))
	for _, g := range groups {
		counts[g.Key] = g.Count
	}
	return counts, nil
}

// FindCreatedSince fetches the minimal projection needed for trend
// bucketing, bounded once at the query level.
func (r *InquiryRepositoryImpl) FindCreatedSince(ctx context.Context, since time.Time, filter bson.M) ([]TrendRecord, error) {
	query := bson.M{"created_at": bson.M{"$gte": since}}
	for k, v := range filter {
		query[k] = v
	}

	opts := options.Find().SetProjection(bson.M{"stage": 1, "created_at": 1})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []TrendRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
