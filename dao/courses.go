package dao

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/darshanrk18/kambaz-server-go/models"
)

type mongoCourseDAO struct {
	courses *mongo.Collection
}

func (d *mongoCourseDAO) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	course.ID = uuid.NewString()
	if course.Modules == nil {
		course.Modules = []models.Module{}
	}
	if _, err := d.courses.InsertOne(ctx, course); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (d *mongoCourseDAO) FindAllCourses(ctx context.Context) ([]models.Course, error) {
	return d.findCourses(ctx, bson.M{})
}

func (d *mongoCourseDAO) FindCoursesByIDs(ctx context.Context, ids []string) ([]models.Course, error) {
	if len(ids) == 0 {
		return []models.Course{}, nil
	}
	return d.findCourses(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (d *mongoCourseDAO) findCourses(ctx context.Context, filter bson.M) ([]models.Course, error) {
	cursor, err := d.courses.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	courses := []models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (d *mongoCourseDAO) FindCourseByID(ctx context.Context, courseID string) (models.Course, error) {
	var course models.Course
	err := d.courses.FindOne(ctx, bson.M{"_id": courseID}).Decode(&course)
	if err == mongo.ErrNoDocuments {
		return models.Course{}, ErrNotFound
	} else if err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (d *mongoCourseDAO) UpdateCourse(ctx context.Context, courseID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return d.exists(ctx, bson.M{"_id": courseID})
	}
	result, err := d.courses.UpdateOne(ctx, bson.M{"_id": courseID}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *mongoCourseDAO) DeleteCourse(ctx context.Context, courseID string) error {
	result, err := d.courses.DeleteOne(ctx, bson.M{"_id": courseID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *mongoCourseDAO) FindModulesForCourse(ctx context.Context, courseID string) ([]models.Module, error) {
	course, err := d.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.Modules == nil {
		return []models.Module{}, nil
	}
	return course.Modules, nil
}

func (d *mongoCourseDAO) AddModuleToCourse(ctx context.Context, courseID string, module models.Module) (models.Module, error) {
	module.ID = uuid.NewString()
	if module.Lessons == nil {
		module.Lessons = []models.Lesson{}
	}
	result, err := d.courses.UpdateOne(ctx, bson.M{"_id": courseID}, bson.M{"$push": bson.M{"modules": module}})
	if err != nil {
		return models.Module{}, err
	}
	if result.MatchedCount == 0 {
		return models.Module{}, ErrNotFound
	}
	return module, nil
}

// UpdateModule merges the provided fields into the embedded module via the
// positional operator; fields absent from updates (lessons included) are
// left untouched.
func (d *mongoCourseDAO) UpdateModule(ctx context.Context, moduleID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return d.exists(ctx, bson.M{"modules._id": moduleID})
	}
	set := bson.M{}
	for field, value := range updates {
		set["modules.$."+field] = value
	}
	result, err := d.courses.UpdateOne(ctx, bson.M{"modules._id": moduleID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// exists reports ErrNotFound when no course matches the filter. Used for
// empty updates, which MongoDB would reject as an empty $set.
func (d *mongoCourseDAO) exists(ctx context.Context, filter bson.M) error {
	err := d.courses.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (d *mongoCourseDAO) DeleteModule(ctx context.Context, moduleID string) error {
	result, err := d.courses.UpdateOne(ctx,
		bson.M{"modules._id": moduleID},
		bson.M{"$pull": bson.M{"modules": bson.M{"_id": moduleID}}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
