package dao

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/darshanrk18/kambaz-server-go/models"
)

type mongoGradeDAO struct {
	grades *mongo.Collection
}

func (d *mongoGradeDAO) CreateGrade(ctx context.Context, grade models.Grade) (models.Grade, error) {
	grade.ID = uuid.NewString()
	if _, err := d.grades.InsertOne(ctx, grade); err != nil {
		return models.Grade{}, err
	}
	return grade, nil
}

func (d *mongoGradeDAO) FindGradesForAssignment(ctx context.Context, assignmentID string) ([]models.Grade, error) {
	return d.findGrades(ctx, bson.M{"assignment": assignmentID})
}

func (d *mongoGradeDAO) FindGradesForStudent(ctx context.Context, studentID string) ([]models.Grade, error) {
	return d.findGrades(ctx, bson.M{"student": studentID})
}

func (d *mongoGradeDAO) findGrades(ctx context.Context, filter bson.M) ([]models.Grade, error) {
	cursor, err := d.grades.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	grades := []models.Grade{}
	if err := cursor.All(ctx, &grades); err != nil {
		return nil, err
	}
	return grades, nil
}

func (d *mongoGradeDAO) UpdateGrade(ctx context.Context, gradeID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		err := d.grades.FindOne(ctx, bson.M{"_id": gradeID}).Err()
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return err
	}
	result, err := d.grades.UpdateOne(ctx, bson.M{"_id": gradeID}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *mongoGradeDAO) DeleteGrade(ctx context.Context, gradeID string) error {
	result, err := d.grades.DeleteOne(ctx, bson.M{"_id": gradeID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
