package dao

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/darshanrk18/kambaz-server-go/models"
)

type mongoEnrollmentDAO struct {
	enrollments *mongo.Collection
}

// EnrollUserInCourse returns the existing enrollment for the pair or inserts
// a new one. The conditional upsert and the unique (user, course) index keep
// concurrent enrolls from producing duplicates; the losing writer reads back
// the winner's document.
func (d *mongoEnrollmentDAO) EnrollUserInCourse(ctx context.Context, userID, courseID string) (models.Enrollment, error) {
	filter := bson.M{"user": userID, "course": courseID}
	update := bson.M{"$setOnInsert": bson.M{
		"_id":    uuid.NewString(),
		"user":   userID,
		"course": courseID,
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var enrollment models.Enrollment
	if err := d.enrollments.FindOneAndUpdate(ctx, filter, update, opts).Decode(&enrollment); err != nil {
		return models.Enrollment{}, err
	}
	return enrollment, nil
}

// UnenrollUserFromCourse removes every matching enrollment; absence is not
// an error.
func (d *mongoEnrollmentDAO) UnenrollUserFromCourse(ctx context.Context, userID, courseID string) error {
	_, err := d.enrollments.DeleteMany(ctx, bson.M{"user": userID, "course": courseID})
	return err
}

func (d *mongoEnrollmentDAO) FindEnrollmentsForUser(ctx context.Context, userID string) ([]models.Enrollment, error) {
	return d.findEnrollments(ctx, bson.M{"user": userID})
}

func (d *mongoEnrollmentDAO) FindEnrollmentsForCourse(ctx context.Context, courseID string) ([]models.Enrollment, error) {
	return d.findEnrollments(ctx, bson.M{"course": courseID})
}

func (d *mongoEnrollmentDAO) findEnrollments(ctx context.Context, filter bson.M) ([]models.Enrollment, error) {
	cursor, err := d.enrollments.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	enrollments := []models.Enrollment{}
	if err := cursor.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}
