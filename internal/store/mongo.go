package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Alan-Biju/global-visa/internal/country"
)

const countriesCollection = "countries"

// Mongo is the remote Store backed by a MongoDB "countries" collection.
// The document key is the country slug.
type Mongo struct {
	client   *mongo.Client
	database string
}

// document is the stored shape: slug as _id, country fields inline.
type document struct {
	Slug                string `bson:"_id"`
	country.CountryData `bson:",inline"`
}

// ConnectMongo connects to MongoDB and verifies the connection with a
// ping before returning a store.
func ConnectMongo(uri, database string) (*Mongo, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo URI is required")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return &Mongo{client: client, database: database}, nil
}

// Close disconnects the underlying client.
func (s *Mongo) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting mongodb: %w", err)
	}
	return nil
}

func (s *Mongo) collection() *mongo.Collection {
	return s.client.Database(s.database).Collection(countriesCollection)
}

// LoadAll reads every document in the countries collection. One bulk
// read, no pagination; the dataset is tens of entries.
func (s *Mongo) LoadAll(ctx context.Context) (map[string]country.CountryData, error) {
	cursor, err := s.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing countries: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding countries: %w", err)
	}

	out := make(map[string]country.CountryData, len(docs))
	for _, doc := range docs {
		out[doc.Slug] = doc.CountryData
	}
	return out, nil
}

// Get reads one document by slug.
func (s *Mongo) Get(ctx context.Context, slug string) (country.CountryData, bool, error) {
	var doc document
	err := s.collection().FindOne(ctx, bson.M{"_id": slug}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return country.CountryData{}, false, nil
	}
	if err != nil {
		return country.CountryData{}, false, fmt.Errorf("reading country %q: %w", slug, err)
	}
	return doc.CountryData, true, nil
}

// Save replaces the full document for slug, inserting it if absent.
// No version check: last write wins, which is the accepted behavior for
// the single-operator admin console.
func (s *Mongo) Save(ctx context.Context, slug string, data country.CountryData) error {
	if err := ValidateSave(slug, data); err != nil {
		return err
	}

	doc := document{Slug: slug, CountryData: data}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection().ReplaceOne(ctx, bson.M{"_id": slug}, doc, opts); err != nil {
		return fmt.Errorf("saving country %q: %w", slug, err)
	}
	return nil
}

// Delete removes the document for slug.
func (s *Mongo) Delete(ctx context.Context, slug string) error {
	if err := ValidateDelete(slug); err != nil {
		return err
	}
	if _, err := s.collection().DeleteOne(ctx, bson.M{"_id": slug}); err != nil {
		return fmt.Errorf("deleting country %q: %w", slug, err)
	}
	return nil
}

// SeedAll uploads the whole table as one ordered bulk write of upserts.
func (s *Mongo) SeedAll(ctx context.Context, countries map[string]country.CountryData) error {
	models := make([]mongo.WriteModel, 0, len(countries))
	for slug, data := range countries {
		if err := ValidateSave(slug, data); err != nil {
			return err
		}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": slug}).
			SetReplacement(document{Slug: slug, CountryData: data}).
			SetUpsert(true))
	}
	if len(models) == 0 {
		return nil
	}

	if _, err := s.collection().BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true)); err != nil {
		return fmt.Errorf("seeding %d countries: %w", len(models), err)
	}
	return nil
}
