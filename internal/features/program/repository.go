package program

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

type ProgramRepository interface {
	Create(ctx context.Context, program *Program) error
	Get(ctx context.Context, id string) (*Program, error)
	FindBySlug(ctx context.Context, slug string) (*Program, error)
	List(ctx context.Context, activeOnly bool) ([]Program, error)
	Update(ctx context.Context, id string, program *Program) error
	Delete(ctx context.Context, id string) error
}

type ProgramRepositoryImpl struct {
	collection *mongo.Collection
}

func NewProgramRepository(db *database.MongodbDB) ProgramRepository {
	return &ProgramRepositoryImpl{
		collection: db.DB.Collection("programs"),
	}
}

func (r *ProgramRepositoryImpl) Create(ctx context.Context, program *Program) error {
	if program.ID.IsZero() {
		program.ID = primitive.NewObjectID()
	}
	program.CreatedAt = time.Now()
	program.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, program)
	return err
}

func (r *ProgramRepositoryImpl) Get(ctx context.Context, id string) (*Program, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var program Program
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&program)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("program not found")
		}
		return nil, err
	}
	return &program, nil
}

func (r *ProgramRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*Program, error) {
	var program Program
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&program)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &program, nil
}

func (r *ProgramRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]Program, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var programs []Program
	if err = cursor.All(ctx, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *ProgramRepositoryImpl) Update(ctx context.Context, id string, program *Program) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	program.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":        program.Name,
			"slug":        program.Slug,
			"description": program.Description,
			"active":      program.Active,
			"levels":      program.Levels,
			"updated_at":  program.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("program not found")
	}
	return nil
}

func (r *ProgramRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("program not found")
	}
	return nil
}
