package interaction

import (
	"context"
	"time"

	"edu-crm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InteractionRepository interface {
	Create(ctx context.Context, interaction *Interaction) error
	ListByInquiry(ctx context.Context, inquiryID string) ([]Interaction, error)

	// Aggregation capabilities consumed by the report core
	CountWithFilter(ctx context.Context, filter bson.M) (int64, error)
	GroupByOutcome(ctx context.Context, filter bson.M) ([]GroupCount, error)
	CountByOwner(ctx context.Context) (map[string]int64, error)
}

type InteractionRepositoryImpl struct {
	collection *mongo.Collection
}

func NewInteractionRepository(db *database.MongodbDB) InteractionRepository {
	return &InteractionRepositoryImpl{
		collection: db.DB.Collection("interactions"),
	}
}

func (r *InteractionRepositoryImpl) Create(ctx context.Context, interaction *Interaction) error {
	if interaction.ID.IsZero() {
		interaction.ID = primitive.NewObjectID()
	}
	interaction.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, interaction)
	return err
}

func (r *InteractionRepositoryImpl) ListByInquiry(ctx context.Context, inquiryID string) ([]Interaction, error) {
	oid, err := primitive.ObjectIDFromHex(inquiryID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"inquiry_id": oid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var interactions []Interaction
	if err = cursor.All(ctx, &interactions); err != nil {
		return nil, err
	}
	return interactions, nil
}

func (r *InteractionRepositoryImpl) CountWithFilter(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}

func (r *InteractionRepositoryImpl) GroupByOutcome(ctx context.Context, filter bson.M) ([]GroupCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$outcome"},
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

func (r *InteractionRepositoryImpl) CountByOwner(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$toString", Value: "$user_id"}}},
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
