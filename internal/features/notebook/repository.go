package notebook

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

type NotebookRepository interface {
	Create(ctx context.Context, notebook *Notebook) error
	Get(ctx context.Context, id string) (*Notebook, error)
	FindByOwner(ctx context.Context, ownerID string) ([]Notebook, error)
	Update(ctx context.Context, id string, updates bson.M) error
	Delete(ctx context.Context, id string) error
	AddNote(ctx context.Context, id string, note Note) error
	UpdateNote(ctx context.Context, id string, noteID string, updates bson.M) error
	RemoveNote(ctx context.Context, id string, noteID string) error
}

type NotebookRepositoryImpl struct {
	collection *mongo.Collection
}

func NewNotebookRepository(db *database.MongodbDB) NotebookRepository {
	return &NotebookRepositoryImpl{
		collection: db.DB.Collection("notebooks"),
	}
}

func (r *NotebookRepositoryImpl) Create(ctx context.Context, notebook *Notebook) error {
	if notebook.ID.IsZero() {
		notebook.ID = primitive.NewObjectID()
	}
	if notebook.Notes == nil {
		notebook.Notes = []Note{}
	}
	notebook.CreatedAt = time.Now()
	notebook.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, notebook)
	return err
}

func (r *NotebookRepositoryImpl) Get(ctx context.Context, id string) (*Notebook, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var notebook Notebook
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&notebook)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("notebook not found")
		}
		return nil, err
	}
	return &notebook, nil
}

func (r *NotebookRepositoryImpl) FindByOwner(ctx context.Context, ownerID string) ([]Notebook, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.M{"updated_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": oid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notebooks []Notebook
	if err = cursor.All(ctx, &notebooks); err != nil {
		return nil, err
	}
	return notebooks, nil
}

func (r *NotebookRepositoryImpl) Update(ctx context.Context, id string, updates bson.M) error {
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
		return errors.New("notebook not found")
	}
	return nil
}

func (r *NotebookRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("notebook not found")
	}
	return nil
}

func (r *NotebookRepositoryImpl) AddNote(ctx context.Context, id string, note Note) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$push": bson.M{"notes": note},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("notebook not found")
	}
	return nil
}

func (r *NotebookRepositoryImpl) UpdateNote(ctx context.Context, id string, noteID string, updates bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	noteOID, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return err
	}

	set := bson.M{"updated_at": time.Now(), "notes.$.updated_at": time.Now()}
	for k, v := range updates {
		set["notes.$."+k] = v
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid, "notes._id": noteOID},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("note not found")
	}
	return nil
}

func (r *NotebookRepositoryImpl) RemoveNote(ctx context.Context, id string, noteID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	noteOID, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$pull": bson.M{"notes": bson.M{"_id": noteOID}},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("notebook not found")
	}
	return nil
}
