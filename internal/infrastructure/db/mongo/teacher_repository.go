package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yogaflow/studio-api/internal/core/domain"
)

const teachersCollection = "teachers"

// TeacherRepository reads the teacher roster from MongoDB.
type TeacherRepository struct {
	coll *mongo.Collection
}

func NewTeacherRepository(db *mongo.Database) *TeacherRepository {
	return &TeacherRepository{coll: db.Collection(teachersCollection)}
}

type mongoTeacher struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"first_name"`
	LastName  string             `bson:"last_name"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (mt mongoTeacher) toDomain() *domain.Teacher {
	return &domain.Teacher{
		ID:        mt.ID.Hex(),
		FirstName: mt.FirstName,
		LastName:  mt.LastName,
		CreatedAt: mt.CreatedAt.UTC(),
		UpdatedAt: mt.UpdatedAt.UTC(),
	}
}

func (r *TeacherRepository) FindAll(ctx context.Context) ([]*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	defer cur.Close(ctx)

	teachers := []*domain.Teacher{}
	for cur.Next(ctx) {
		var mt mongoTeacher
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode teacher: %w", err)
		}
		teachers = append(teachers, mt.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

func (r *TeacherRepository) FindByID(ctx context.Context, id string) (*domain.Teacher, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mt mongoTeacher
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("find teacher: %w", err)
	}
	return mt.toDomain(), nil
}
