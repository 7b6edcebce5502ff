package meeting

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

type MeetingRepository interface {
	Create(ctx context.Context, meeting *Meeting) error
	Get(ctx context.Context, id string) (*Meeting, error)
	Find(ctx context.Context, filter bson.M) ([]Meeting, error)
	Update(ctx context.Context, id string, updates bson.M) error
	Delete(ctx context.Context, id string) error
	FindDueForReminder(ctx context.Context, from, to time.Time) ([]Meeting, error)
	MarkReminderSent(ctx context.Context, id primitive.ObjectID) error
}

type MeetingRepositoryImpl struct {
	collection *mongo.Collection
}

func NewMeetingRepository(db *database.MongodbDB) MeetingRepository {
	return &MeetingRepositoryImpl{
		collection: db.DB.Collection("meetings"),
	}
}

func (r *MeetingRepositoryImpl) Create(ctx context.Context, meeting *Meeting) error {
	if meeting.ID.IsZero() {
		meeting.ID = primitive.NewObjectID()
	}
	if meeting.Status == "" {
		meeting.Status = StatusScheduled
	}
	meeting.CreatedAt = time.Now()
	meeting.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, meeting)
	return err
}

func (r *MeetingRepositoryImpl) Get(ctx context.Context, id string) (*Meeting, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var meeting Meeting
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&meeting)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("meeting not found")
		}
		return nil, err
	}
	return &meeting, nil
}

func (r *MeetingRepositoryImpl) Find(ctx context.Context, filter bson.M) ([]Meeting, error) {
	opts := options.Find().SetSort(bson.M{"scheduled_at": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var meetings []Meeting
	if err = cursor.All(ctx, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *MeetingRepositoryImpl) Update(ctx context.Context, id string, updates bson.M) error {
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
		return errors.New("meeting not found")
	}
	return nil
}

func (r *MeetingRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("meeting not found")
	}
	return nil
}

func (r *MeetingRepositoryImpl) FindDueForReminder(ctx context.Context, from, to time.Time) ([]Meeting, error) {
	filter := bson.M{
		"status":        StatusScheduled,
		"reminder_sent": false,
		"scheduled_at":  bson.M{"$gte": from, "$lte": to},
	}
	return r.Find(ctx, filter)
}

func (r *MeetingRepositoryImpl) MarkReminderSent(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"reminder_sent": true, "updated_at": time.Now()}},
	)
	return err
}
