package dao

import (
	"context"
	"regexp"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/darshanrk18/kambaz-server-go/models"
)

type mongoUserDAO struct {
	users *mongo.Collection
}

func (d *mongoUserDAO) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.ID = uuid.NewString()
	if _, err := d.users.InsertOne(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (d *mongoUserDAO) FindAllUsers(ctx context.Context) ([]models.User, error) {
	return d.findUsers(ctx, bson.M{})
}

func (d *mongoUserDAO) FindUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	return d.findUsers(ctx, bson.M{"role": role})
}

func (d *mongoUserDAO) FindUsersByPartialName(ctx context.Context, partialName string) ([]models.User, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(partialName), Options: "i"}
	return d.findUsers(ctx, bson.M{"$or": bson.A{
		bson.M{"firstName": pattern},
		bson.M{"lastName": pattern},
	}})
}

func (d *mongoUserDAO) FindUsersByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	return d.findUsers(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (d *mongoUserDAO) findUsers(ctx context.Context, filter bson.M) ([]models.User, error) {
	cursor, err := d.users.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (d *mongoUserDAO) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return d.findUser(ctx, bson.M{"_id": userID})
}

func (d *mongoUserDAO) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return d.findUser(ctx, bson.M{"username": username})
}

func (d *mongoUserDAO) findUser(ctx context.Context, filter bson.M) (models.User, error) {
	var user models.User
	err := d.users.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	} else if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (d *mongoUserDAO) UpdateUser(ctx context.Context, userID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		_, err := d.findUser(ctx, bson.M{"_id": userID})
		return err
	}
	result, err := d.users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *mongoUserDAO) DeleteUser(ctx context.Context, userID string) error {
	result, err := d.users.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
