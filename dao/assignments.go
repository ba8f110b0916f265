package dao

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/darshanrk18/kambaz-server-go/models"
)

type mongoAssignmentDAO struct {
	assignments *mongo.Collection
}

func (d *mongoAssignmentDAO) CreateAssignment(ctx context.Context, courseID string, assignment models.Assignment) (models.Assignment, error) {
	assignment.ID = uuid.NewString()
	assignment.Course = courseID
	if _, err := d.assignments.InsertOne(ctx, assignment); err != nil {
		return models.Assignment{}, err
	}
	return assignment, nil
}

func (d *mongoAssignmentDAO) FindAssignmentsForCourse(ctx context.Context, courseID string) ([]models.Assignment, error) {
	cursor, err := d.assignments.Find(ctx, bson.M{"course": courseID})
	if err != nil {
		return nil, err
	}
	assignments := []models.Assignment{}
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (d *mongoAssignmentDAO) FindAssignmentByID(ctx context.Context, courseID, assignmentID string) (models.Assignment, error) {
	var assignment models.Assignment
	err := d.assignments.FindOne(ctx, bson.M{"_id": assignmentID, "course": courseID}).Decode(&assignment)
	if err == mongo.ErrNoDocuments {
		return models.Assignment{}, ErrNotFound
	} else if err != nil {
		return models.Assignment{}, err
	}
	return assignment, nil
}

func (d *mongoAssignmentDAO) UpdateAssignment(ctx context.Context, courseID, assignmentID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		_, err := d.FindAssignmentByID(ctx, courseID, assignmentID)
		return err
	}
	result, err := d.assignments.UpdateOne(ctx,
		bson.M{"_id": assignmentID, "course": courseID},
		bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *mongoAssignmentDAO) DeleteAssignment(ctx context.Context, courseID, assignmentID string) error {
	result, err := d.assignments.DeleteOne(ctx, bson.M{"_id": assignmentID, "course": courseID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
