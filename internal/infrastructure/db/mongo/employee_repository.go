package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
)

const collectionEmployees = "employees"

type EmployeeRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewEmployeeRepository(db *mongo.Database, counters *Counters) *EmployeeRepository {
	return &EmployeeRepository{col: db.Collection(collectionEmployees), counters: counters}
}

// Insert assigns the next employee ID and persists the document.
func (r *EmployeeRepository) Insert(ctx context.Context, e *domain.Employee) error {
	id, err := r.counters.NextID(ctx, "employee")
	if err != nil {
		return err
	}
	e.ID = id

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.col.InsertOne(ctx, e)
	return err
}

// FindByID retrieves an employee by its integer ID.
func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Employee
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

// List returns employees ordered by full name.
func (r *EmployeeRepository) List(ctx context.Context, onlyActive bool) ([]domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if onlyActive {
		filter["is_active"] = true
	}

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "full_name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	employees := []domain.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// FindByIDs returns the matching employees keyed by ID. Missing IDs are
// absent from the map, not an error.
func (r *EmployeeRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.Employee, error) {
	if len(ids) == 0 {
		return map[int64]domain.Employee{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	byID := make(map[int64]domain.Employee, len(ids))
	for cursor.Next(ctx) {
		var e domain.Employee
		if err := cursor.Decode(&e); err != nil {
			return nil, err
		}
		byID[e.ID] = e
	}
	return byID, cursor.Err()
}

// EnsureIndexes creates the indexes the list queries rely on.
func (r *EmployeeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "full_name", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
