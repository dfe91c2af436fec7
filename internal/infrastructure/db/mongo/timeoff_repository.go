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

const collectionTimeOff = "timeoff_requests"

type TimeOffRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewTimeOffRepository(db *mongo.Database, counters *Counters) *TimeOffRepository {
	return &TimeOffRepository{col: db.Collection(collectionTimeOff), counters: counters}
}

// Insert assigns the next request ID and persists the document.
func (r *TimeOffRepository) Insert(ctx context.Context, req *domain.TimeOffRequest) error {
	id, err := r.counters.NextID(ctx, "timeoff")
	if err != nil {
		return err
	}
	req.ID = id

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.col.InsertOne(ctx, req)
	return err
}

// FindByID retrieves a time-off request by its integer ID.
func (r *TimeOffRepository) FindByID(ctx context.Context, id int64) (*domain.TimeOffRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var req domain.TimeOffRequest
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTimeOffNotFound
		}
		return nil, err
	}
	return &req, nil
}

// List returns requests ordered by date. An empty status means all.
func (r *TimeOffRepository) List(ctx context.Context, status domain.TimeOffStatus) ([]domain.TimeOffRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []domain.TimeOffRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatus sets the request's review state.
func (r *TimeOffRepository) UpdateStatus(ctx context.Context, id int64, status domain.TimeOffStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrTimeOffNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the status and date queries rely on.
func (r *TimeOffRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
