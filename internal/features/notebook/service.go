package notebook

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotebookService interface {
	CreateNotebook(ctx context.Context, ownerID string, notebook *Notebook) error
	ListNotebooks(ctx context.Context, ownerID string) ([]Notebook, error)
	GetNotebook(ctx context.Context, ownerID string, id string) (*Notebook, error)
	RenameNotebook(ctx context.Context, ownerID string, id string, name string) error
	DeleteNotebook(ctx context.Context, ownerID string, id string) error
	AddNote(ctx context.Context, ownerID string, id string, note *Note) error
	UpdateNote(ctx context.Context, ownerID string, id string, noteID string, updates map[string]interface{}) error
	RemoveNote(ctx context.Context, ownerID string, id string, noteID string) error
}

type NotebookServiceImpl struct {
	NotebookRepo NotebookRepository
}

func NewNotebookService(notebookRepo NotebookRepository) NotebookService {
	return &NotebookServiceImpl{
		NotebookRepo: notebookRepo,
	}
}

func (s *NotebookServiceImpl) CreateNotebook(ctx context.Context, ownerID string, notebook *Notebook) error {
	if notebook.Name == "" {
		return errors.New("notebook name is required")
	}
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return err
	}
	notebook.OwnerID = oid
	return s.NotebookRepo.Create(ctx, notebook)
}

func (s *NotebookServiceImpl) ListNotebooks(ctx context.Context, ownerID string) ([]Notebook, error) {
	return s.NotebookRepo.FindByOwner(ctx, ownerID)
}

// GetNotebook enforces ownership: notebooks are private to their owner.
func (s *NotebookServiceImpl) GetNotebook(ctx context.Context, ownerID string, id string) (*Notebook, error) {
	notebook, err := s.NotebookRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if notebook.OwnerID.Hex() != ownerID {
		return nil, errors.New("notebook not found")
	}
	return notebook, nil
}

func (s *NotebookServiceImpl) RenameNotebook(ctx context.Context, ownerID string, id string, name string) error {
	if name == "" {
		return errors.New("notebook name is required")
	}
	if _, err := s.GetNotebook(ctx, ownerID, id); err != nil {
		return err
	}
	return s.NotebookRepo.Update(ctx, id, bson.M{"name": name})
}

func (s *NotebookServiceImpl) DeleteNotebook(ctx context.Context, ownerID string, id string) error {
	if _, err := s.GetNotebook(ctx, ownerID, id); err != nil {
		return err
	}
	return s.NotebookRepo.Delete(ctx, id)
}

func (s *NotebookServiceImpl) AddNote(ctx context.Context, ownerID string, id string, note *Note) error {
	if note.Title == "" && note.Body == "" {
		return errors.New("note is empty")
	}
	if _, err := s.GetNotebook(ctx, ownerID, id); err != nil {
		return err
	}

	note.ID = primitive.NewObjectID()
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt

	return s.NotebookRepo.AddNote(ctx, id, *note)
}

func (s *NotebookServiceImpl) UpdateNote(ctx context.Context, ownerID string, id string, noteID string, updates map[string]interface{}) error {
	if _, err := s.GetNotebook(ctx, ownerID, id); err != nil {
		return err
	}

	set := bson.M{}
	for k, v := range updates {
		switch k {
		case "title", "body", "pinned":
			set[k] = v
		}
	}
	if len(set) == 0 {
		return errors.New("no updatable fields provided")
	}
	return s.NotebookRepo.UpdateNote(ctx, id, noteID, set)
}

func (s *NotebookServiceImpl) RemoveNote(ctx context.Context, ownerID string, id string, noteID string) error {
	if _, err := s.GetNotebook(ctx, ownerID, id); err != nil {
		return err
	}
	return s.NotebookRepo.RemoveNote(ctx, id, noteID)
}
