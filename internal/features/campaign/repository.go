package campaign

import (
	"context"
	"time"

	"edu-crm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CampaignRepo interface {
	Create(ctx context.Context, c *Campaign) (*Campaign, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Campaign, error)
	List(ctx context.Context) ([]Campaign, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
	FinishSend(ctx context.Context, id primitive.ObjectID, status string, sent, failed int) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CampaignRepoImpl struct {
	collection *mongo.Collection
}

func NewCampaignRepo(db *database.MongodbDB) CampaignRepo {
	return &CampaignRepoImpl{
		collection: db.DB.Collection("campaigns"),
	}
}

func (r *CampaignRepoImpl) Create(ctx context.Context, c *Campaign) (*Campaign, error) {
	c.ID = primitive.NewObjectID()
	c.Status = StatusDraft
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CampaignRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*Campaign, error) {
	var c Campaign
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepoImpl) List(ctx context.Context) ([]Campaign, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	campaigns := make([]Campaign, 0)
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *CampaignRepoImpl) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now()},
	})
	return err
}

func (r *CampaignRepoImpl) FinishSend(ctx context.Context, id primitive.ObjectID, status string, sent, failed int) error {
	now := time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status":       status,
			"sent_count":   sent,
			"failed_count": failed,
			"sent_at":      now,
			"updated_at":   now,
		},
	})
	return err
}

func (r *CampaignRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
