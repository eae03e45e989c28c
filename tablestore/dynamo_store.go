// Package tablestore adapts dynamodb to the scan and put capabilities the
// dispatcher drives.
package tablestore

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/pkg/errors"
)

// ErrInvalidRequest is the cause of every error produced because the caller's
// input was unusable rather than because dynamodb failed.
var ErrInvalidRequest = errors.New("invalid request")

// DynamoStore scans and writes dynamodb tables on behalf of the dispatcher.
//
// Table is the default table for puts that don't name one. Scans must always
// name their table.
type DynamoStore struct {
	Region   string
	Table    string
	Endpoint string

	svc dynamodbiface.DynamoDBAPI
}

// NewDynamoStore returns a store backed by a dynamodb client for region. A
// non empty endpoint overrides the service endpoint, e.g. for dynamodb local.
func NewDynamoStore(region string, table string, endpoint string) (*DynamoStore, error) {
	store := &DynamoStore{
		Region:   region,
		Table:    table,
		Endpoint: endpoint,
	}

	if err := store.connect(); err != nil {
		return nil, err
	}

	return store, nil
}

// NewDynamoStoreWithClient returns a store that issues its calls through svc.
func NewDynamoStoreWithClient(svc dynamodbiface.DynamoDBAPI, table string) *DynamoStore {
	return &DynamoStore{
		Table: table,
		svc:   svc,
	}
}

func (store *DynamoStore) connect() error {
	cfg := &aws.Config{
		Region: aws.String(store.Region),
	}

	if store.Endpoint != "" {
		cfg.Endpoint = aws.String(store.Endpoint)
	}

	s, err := session.NewSession(cfg)
	if err != nil {
		return errors.Wrap(err, "failed getting session")
	}

	store.svc = dynamodb.New(s)
	return nil
}

var errNoTable = errors.Wrap(ErrInvalidRequest, "table name is required")

// putTable picks the table a put request names, falling back to the store
// default.
func (store *DynamoStore) putTable(requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}

	if store.Table != "" {
		return store.Table, nil
	}

	return "", errNoTable
}

// Scan reads every item of the table named by input. Pagination is not
// followed; the result holds the first page dynamodb returns. Numbers are
// returned as json.Number.
func (store *DynamoStore) Scan(ctx context.Context, input ScanInput) (interface{}, error) {
	table := input.TableName
	if table == "" {
		return nil, errNoTable
	}

	output, err := store.svc.ScanWithContext(ctx, &dynamodb.ScanInput{
		TableName: aws.String(table),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed scanning table %s", table)
	}

	result := &ScanResult{
		Items:        []map[string]interface{}{},
		Count:        aws.Int64Value(output.Count),
		ScannedCount: aws.Int64Value(output.ScannedCount),
	}

	for _, av := range output.Items {
		item, err := decodeAttributes(av)
		if err != nil {
			return nil, errors.Wrapf(err, "failed decoding items of table %s", table)
		}

		result.Items = append(result.Items, item)
	}

	return result, nil
}

// PutItem writes a single item. item is a put request document as decoded
// from json, see PutRequest. Numbers given as json.Number are written without
// a float64 round trip.
func (store *DynamoStore) PutItem(ctx context.Context, item interface{}) (interface{}, error) {
	request, err := decodePutRequest(item)
	if err != nil {
		return nil, err
	}

	table, err := store.putTable(request.TableName)
	if err != nil {
		return nil, err
	}

	input, err := request.input(table)
	if err != nil {
		return nil, err
	}

	output, err := store.svc.PutItemWithContext(ctx, input)
	if err != nil {
		return nil, errors.Wrapf(err, "failed put to %s", table)
	}

	result := &PutResult{}

	if len(output.Attributes) > 0 {
		result.Attributes, err = decodeAttributes(output.Attributes)
		if err != nil {
			return nil, errors.Wrapf(err, "failed decoding attributes returned by %s", table)
		}
	}

	return result, nil
}
