package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adityab94/FitForge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection         = "users"
	profilesCollection      = "profiles"
	weightLogsCollection    = "weight_logs"
	workoutsCollection      = "workouts"
	measurementsCollection  = "measurements"
	bodyCompCollection      = "body_comp"
	photosCollection        = "progress_photos"
	stepsCollection         = "steps"
	waterCollection         = "water"
	nutritionCollection     = "nutrition"
	subscriptionsCollection = "push_subs"
)

// NewMongoStore builds the collection repositories on db and makes sure the
// lookup and uniqueness indexes exist.
func NewMongoStore(ctx context.Context, db *mongo.Database, timeout time.Duration) (*Store, error) {
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}
	return &Store{
		Users:           &mongoUsers{coll: db.Collection(usersCollection), timeout: timeout},
		Profiles:        &mongoProfiles{coll: db.Collection(profilesCollection), timeout: timeout},
		WeightLogs:      newMongoRecords[models.WeightLog](db.Collection(weightLogsCollection), timeout, bson.D{{Key: "date", Value: -1}, {Key: "timestamp", Value: -1}}),
		Workouts:        newMongoRecords[models.Workout](db.Collection(workoutsCollection), timeout, bson.D{{Key: "timestamp", Value: -1}}),
		Measurements:    newMongoRecords[models.Measurement](db.Collection(measurementsCollection), timeout, bson.D{{Key: "date", Value: -1}}),
		BodyComposition: newMongoRecords[models.BodyComposition](db.Collection(bodyCompCollection), timeout, bson.D{{Key: "date", Value: -1}}),
		Photos:          newMongoRecords[models.ProgressPhoto](db.Collection(photosCollection), timeout, bson.D{{Key: "timestamp", Value: -1}}),
		Steps:           newMongoDaily[models.StepsEntry](db.Collection(stepsCollection), timeout),
		Water:           newMongoDaily[models.WaterEntry](db.Collection(waterCollection), timeout),
		Nutrition:       newMongoDaily[models.NutritionEntry](db.Collection(nutritionCollection), timeout),
		Subscriptions:   &mongoSubscriptions{coll: db.Collection(subscriptionsCollection), timeout: timeout},
		ping: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return db.Client().Ping(ctx, nil)
		},
	}, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	byUserDate := mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}}
	uniqueUserDate := mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}, Options: unique}

	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
		},
		profilesCollection:      {{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique}},
		subscriptionsCollection: {{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique}},
		weightLogsCollection:    {byUserDate},
		workoutsCollection:      {byUserDate, {Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "id", Value: 1}}}},
		measurementsCollection:  {byUserDate},
		bodyCompCollection:      {byUserDate},
		photosCollection:        {{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: 1}}}},
		stepsCollection:         {uniqueUserDate},
		waterCollection:         {uniqueUserDate},
		nutritionCollection:     {uniqueUserDate},
	}
	for name, idx := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

// -------- append-only records --------

type mongoRecords[T Record] struct {
	coll    *mongo.Collection
	timeout time.Duration
	sort    bson.D
}

func newMongoRecords[T Record](coll *mongo.Collection, timeout time.Duration, sort bson.D) *mongoRecords[T] {
	return &mongoRecords[T]{coll: coll, timeout: timeout, sort: sort}
}

func (r *mongoRecords[T]) Insert(ctx context.Context, rec T) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, rec)
	return err
}

func (r *mongoRecords[T]) List(ctx context.Context, userID string, q Query) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"user_id": userID}
	if q.Date != "" {
		filter["date"] = q.Date
	} else if q.From != "" || q.To != "" {
		between := bson.M{}
		if q.From != "" {
			between["$gte"] = q.From
		}
		if q.To != "" {
			between["$lte"] = q.To
		}
		filter["date"] = between
	}
	opts := options.Find().SetSort(r.sort)
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	out := make([]T, 0)
	err = cursor.All(ctx, &out)
	return out, err
}

func (r *mongoRecords[T]) Get(ctx context.Context, userID, id string) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	var rec T
	err := r.coll.FindOne(ctx, bson.M{"id": id, "user_id": userID}).Decode(&rec)
	return rec, notFound(err)
}

func (r *mongoRecords[T]) Delete(ctx context.Context, userID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// -------- daily (user, date) records --------

type mongoDaily[T DailyRecord[T]] struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func newMongoDaily[T DailyRecord[T]](coll *mongo.Collection, timeout time.Duration) *mongoDaily[T] {
	return &mongoDaily[T]{coll: coll, timeout: timeout}
}

func (d *mongoDaily[T]) Put(ctx context.Context, rec T) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	filter := bson.M{"user_id": rec.Owner(), "date": rec.Day()}
	var existing T
	err := d.coll.FindOne(ctx, filter).Decode(&existing)
	switch {
	case err == nil:
		rec = rec.WithRecordID(existing.RecordID())
	case !errors.Is(err, mongo.ErrNoDocuments):
		return rec, err
	}

	opts := options.Update().SetUpsert(true)
	if _, err := d.coll.UpdateOne(ctx, filter, bson.M{"$set": rec}, opts); err != nil {
		return rec, err
	}
	return rec, nil
}

func (d *mongoDaily[T]) Get(ctx context.Context, key DayKey) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	var rec T
	err := d.coll.FindOne(ctx, bson.M{"user_id": key.UserID, "date": key.Date}).Decode(&rec)
	return rec, notFound(err)
}

func (d *mongoDaily[T]) List(ctx context.Context, userID string, limit int64) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := d.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	out := make([]T, 0)
	err = cursor.All(ctx, &out)
	return out, err
}

// -------- users --------

type mongoUsers struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func (u *mongoUsers) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	if _, err := u.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (u *mongoUsers) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	var user models.User
	if err := u.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (u *mongoUsers) ByID(ctx context.Context, id string) (*models.User, error) {
	return u.findOne(ctx, bson.M{"id": id})
}

func (u *mongoUsers) ByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.findOne(ctx, bson.M{"email": email})
}

func (u *mongoUsers) ByResetToken(ctx context.Context, token string) (*models.User, error) {
	return u.findOne(ctx, bson.M{"reset_token": token})
}

func (u *mongoUsers) set(ctx context.Context, id string, update bson.D) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	result, err := u.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (u *mongoUsers) SetAvatar(ctx context.Context, id, url string) error {
	return u.set(ctx, id, bson.D{{Key: "$set", Value: bson.D{
		{Key: "avatarUrl", Value: url},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}})
}

func (u *mongoUsers) SetResetToken(ctx context.Context, id, token string, expires time.Time) error {
	return u.set(ctx, id, bson.D{{Key: "$set", Value: bson.D{
		{Key: "reset_token", Value: token},
		{Key: "reset_expires", Value: expires},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}})
}

func (u *mongoUsers) SetPassword(ctx context.Context, id, hash string) error {
	return u.set(ctx, id, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "password", Value: hash},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}},
		{Key: "$unset", Value: bson.D{
			{Key: "reset_token", Value: ""},
			{Key: "reset_expires", Value: ""},
		}},
	})
}

// -------- profiles --------

type mongoProfiles struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func (p *mongoProfiles) Create(ctx context.Context, profile *models.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if _, err := p.coll.InsertOne(ctx, profile); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (p *mongoProfiles) Get(ctx context.Context, userID string) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	var profile models.Profile
	if err := p.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile); err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}

func (p *mongoProfiles) Update(ctx context.Context, userID string, u models.ProfileUpdate) (*models.Profile, error) {
	fields := u.Fields()
	if len(fields) == 0 {
		return p.Get(ctx, userID)
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var profile models.Profile
	err := p.coll.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, bson.M{"$set": bson.M(fields)}, opts).Decode(&profile)
	if err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}

// -------- push subscriptions --------

type mongoSubscriptions struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func (s *mongoSubscriptions) Put(ctx context.Context, sub models.PushSubscription) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	opts := options.Update().SetUpsert(true)
	_, err := s.coll.UpdateOne(ctx, bson.M{"user_id": sub.UserID}, bson.M{"$set": sub}, opts)
	return err
}

func (s *mongoSubscriptions) Get(ctx context.Context, userID string) (*models.PushSubscription, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	var sub models.PushSubscription
	if err := s.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&sub); err != nil {
		return nil, notFound(err)
	}
	return &sub, nil
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
