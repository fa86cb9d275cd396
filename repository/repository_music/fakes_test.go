package repository_music

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soundhaven/soundhaven/mongo"
)

// Hand-built fakes over the mongo wrapper. Hook functions are set per
// test; anything a test does not hook fails loudly.

type fakeSingleResult struct {
	doc interface{}
	err error
}

func (r *fakeSingleResult) Decode(v interface{}) error {
	if r.err != nil {
		return r.err
	}
	raw, err := bson.Marshal(r.doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, v)
}

type fakeCursor struct {
	docs []interface{}
	idx  int
}

func (c *fakeCursor) Close(context.Context) error { return nil }

func (c *fakeCursor) Next(context.Context) bool {
	if c.idx >= len(c.docs) {
		return false
	}
	c.idx++
	return true
}

func (c *fakeCursor) Decode(v interface{}) error {
	raw, err := bson.Marshal(c.docs[c.idx-1])
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, v)
}

func (c *fakeCursor) All(_ context.Context, v interface{}) error {
	raw, err := bson.Marshal(bson.M{"docs": c.docs})
	if err != nil {
		return err
	}
	var wrapper struct {
		Docs bson.RawValue `bson:"docs"`
	}
	if err := bson.Unmarshal(raw, &wrapper); err != nil {
		return err
	}
	return wrapper.Docs.Unmarshal(v)
}

type fakeCollection struct {
	findOneFn    func(filter interface{}) mongo.SingleResult
	insertOneFn  func(document interface{}) (interface{}, error)
	findFn       func(filter interface{}, opts ...*options.FindOptions) (mongo.Cursor, error)
	deleteOneFn  func(filter interface{}) (int64, error)
	deleteManyFn func(filter interface{}) (int64, error)
	countFn      func(filter interface{}) (int64, error)
	updateOneFn  func(filter, update interface{}) (*driver.UpdateResult, error)
}

func (c *fakeCollection) FindOne(_ context.Context, filter interface{}) mongo.SingleResult {
	return c.findOneFn(filter)
}

func (c *fakeCollection) InsertOne(_ context.Context, document interface{}) (interface{}, error) {
	return c.insertOneFn(document)
}

func (c *fakeCollection) DeleteOne(_ context.Context, filter interface{}) (int64, error) {
	return c.deleteOneFn(filter)
}

func (c *fakeCollection) DeleteMany(_ context.Context, filter interface{}) (int64, error) {
	return c.deleteManyFn(filter)
}

func (c *fakeCollection) Find(_ context.Context, filter interface{}, opts ...*options.FindOptions) (mongo.Cursor, error) {
	return c.findFn(filter, opts...)
}

func (c *fakeCollection) CountDocuments(_ context.Context, filter interface{}, _ ...*options.CountOptions) (int64, error) {
	return c.countFn(filter)
}

func (c *fakeCollection) Aggregate(context.Context, interface{}) (mongo.Cursor, error) {
	panic("not hooked")
}

func (c *fakeCollection) UpdateOne(_ context.Context, filter, update interface{}, _ ...*options.UpdateOptions) (*driver.UpdateResult, error) {
	return c.updateOneFn(filter, update)
}

func (c *fakeCollection) Indexes() mongo.IndexView { panic("not hooked") }

type fakeDatabase struct {
	collections map[string]mongo.Collection
}

func (d *fakeDatabase) Collection(name string) mongo.Collection {
	coll, ok := d.collections[name]
	if !ok {
		panic("no fake collection registered for " + name)
	}
	return coll
}

func (d *fakeDatabase) Client() mongo.Client { return nil }

// passthroughTx stands in for mongo.WithTransaction: it hands fn the
// caller's context so the batched writes hit the fake collections
// directly.
func passthroughTx(ctx context.Context, _ mongo.Client, fn func(context.Context) error) error {
	return fn(ctx)
}

// duplicateKeyErr mimics the server's E11000 rejection.
func duplicateKeyErr() error {
	return driver.WriteException{
		WriteErrors: driver.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
}
