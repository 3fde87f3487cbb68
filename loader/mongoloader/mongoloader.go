/*
Package mongoloader loads datasets from MongoDB collections.

Documents have no column order, so metadata is always required: it names
the fields read from every document and the order they take on records.
Other fields on the documents are ignored.
*/
package mongoloader

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/loader"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

/*
Dial takes a MongoDB connection URL and returns a session to the server
or an error if it fails to connect to it.
*/
func Dial(url string) (*mgo.Session, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %v", err)
	}
	return session, nil
}

/*
Read takes a context, a MongoDB session, the name of a collection in the
session's default database, metadata and a dataset.Generator and returns
the dataset built with the generator from the documents in the collection,
along with the names of its features. It returns an error if the metadata
names a field that cannot be queried, if a document lacks one of the
fields, if the metadata does not accept a value, or if the collection has
no documents (wrapping dataset.ErrEmptyDataset).
*/
func Read(ctx context.Context, session *mgo.Session, collection string, md *feature.Metadata, g dataset.Generator) (dataset.Dataset, []string, error) {
	if md == nil {
		return nil, nil, fmt.Errorf("reading collection %s: metadata is required", collection)
	}
	columns := md.Columns()
	projection := bson.M{"_id": 0}
	for _, c := range columns {
		if err := validFieldName(c); err != nil {
			return nil, nil, err
		}
		projection[c] = 1
	}
	s, err := loader.NewSchema(columns, md)
	if err != nil {
		return nil, nil, err
	}
	iter := session.DB("").C(collection).Find(nil).Select(projection).Iter()
	defer iter.Close()
	return readDocuments(ctx, iter, collection, s, columns, g)
}

// documentIterator is the part of *mgo.Iter used to read a collection
type documentIterator interface {
	Next(result interface{}) bool
	Err() error
}

var _ documentIterator = (*mgo.Iter)(nil)

func readDocuments(ctx context.Context, iter documentIterator, collection string, s *loader.Schema, columns []string, g dataset.Generator) (dataset.Dataset, []string, error) {
	records := []dataset.Record{}
	var doc bson.M
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		row, err := documentRow(doc, columns)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing document %d of collection %s: %v", len(records)+1, collection, err)
		}
		record, err := s.Record(len(records), row)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing document %d of collection %s: %w", len(records)+1, collection, err)
		}
		records = append(records, record)
		doc = nil
	}
	if err := iter.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading collection %s: %v", collection, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("reading collection %s: %w", collection, dataset.ErrEmptyDataset)
	}
	return g(records), s.FeatureNames(), nil
}

// documentRow returns the values of the given fields of a document as strings
func documentRow(doc bson.M, columns []string) ([]string, error) {
	row := make([]string, len(columns))
	for i, c := range columns {
		v, ok := doc[c]
		if !ok || v == nil {
			return nil, fmt.Errorf("no value for %s", c)
		}
		switch v.(type) {
		case bson.M, []interface{}:
			return nil, fmt.Errorf("value for %s is a %T, expected a scalar", c, v)
		}
		row[i] = fmt.Sprintf("%v", v)
	}
	return row, nil
}

func validFieldName(name string) error {
	if name == "_id" {
		return fmt.Errorf("invalid feature name %q: reserved collection field", "_id")
	}
	if strings.ContainsAny(name, ".$") {
		return fmt.Errorf("invalid feature name %q: contains reserved characters %q or %q", name, ".", "$")
	}
	return nil
}
