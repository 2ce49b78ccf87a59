package repository

import (
	"context"
	"errors"

	"github.com/umalmyha/customers/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	customersCollection = "customers"
	countersCollection  = "counters"
)

type sequence struct {
	Seq int64 `bson:"seq"`
}

type mongoCustomerRepository struct {
	customers *mongo.Collection
	counters  *mongo.Collection
}

// NewMongoCustomerRepository builds mongo customer repository, ids are allocated from counters collection
func NewMongoCustomerRepository(db *mongo.Database) CustomerRepository {
	return &mongoCustomerRepository{
		customers: db.Collection(customersCollection),
		counters:  db.Collection(countersCollection),
	}
}

func (r *mongoCustomerRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	if err := r.customers.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *mongoCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	cursor, err := r.customers.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	customers := make([]*model.Customer, 0)
	for cursor.Next(ctx) {
		var c model.Customer
		if err := cursor.Decode(&c); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *mongoCustomerRepository) Create(ctx context.Context, c *model.Customer) (bool, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return false, err
	}

	doc := *c
	doc.ID = id
	if _, err := r.customers.InsertOne(ctx, &doc); err != nil {
		return false, err
	}

	c.ID = id
	return true, nil
}

// Update counts matched documents to behave the same way as sql stores do for unchanged values
func (r *mongoCustomerRepository) Update(ctx context.Context, c *model.Customer) (bool, error) {
	upd := bson.M{"$set": bson.M{
		"name":  c.Name,
		"email": c.Email,
		"phone": c.Phone,
	}}

	res, err := r.customers.UpdateOne(ctx, bson.M{"_id": c.ID}, upd)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoCustomerRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res, err := r.customers.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoCustomerRepository) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var seq sequence
	err := r.counters.FindOneAndUpdate(ctx, bson.M{"_id": customersCollection}, bson.M{"$inc": bson.M{"seq": 1}}, opts).Decode(&seq)
	if err != nil {
		return 0, err
	}
	return seq.Seq, nil
}
