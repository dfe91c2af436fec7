package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
	"github.com/coffeelounge/shiftboard/internal/core/ports"
)

const collectionShifts = "shifts"

type ShiftRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewShiftRepository(db *mongo.Database, counters *Counters) *ShiftRepository {
	return &ShiftRepository{col: db.Collection(collectionShifts), counters: counters}
}

// Insert assigns the next shift ID and persists the document.
func (r *ShiftRepository) Insert(ctx context.Context, s *domain.Shift) error {
	id, err := r.counters.NextID(ctx, "shift")
	if err != nil {
		return err
	}
	s.ID = id

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.col.InsertOne(ctx, s)
	return err
}

// List returns shifts matching the filter, ordered by date then start time.
// Dates are stored as "YYYY-MM-DD" strings, so the range bounds compare
// lexicographically.
func (r *ShiftRepository) List(ctx context.Context, filter ports.ShiftFilter) ([]domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	dateRange := bson.M{}
	if filter.StartDate != "" {
		dateRange["$gte"] = filter.StartDate
	}
	if filter.EndDate != "" {
		dateRange["$lte"] = filter.EndDate
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}
	if filter.EmployeeID != nil {
		query["employee_id"] = *filter.EmployeeID
	}

	sort := bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}}
	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	shifts := []domain.Shift{}
	if err := cursor.All(ctx, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

// EnsureIndexes creates the indexes the week-range and per-employee queries
// rely on.
func (r *ShiftRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}}},
		{Keys: bson.D{{Key: "employee_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
