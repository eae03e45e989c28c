package tablestore

import (
	"bytes"
	"encoding/json"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/pkg/errors"
)

// ScanInput names the table to scan.
type ScanInput struct {
	TableName string `json:"TableName"`
}

// ScanResult is the json shape returned for a scan.
type ScanResult struct {
	Items        []map[string]interface{} `json:"Items"`
	Count        int64                    `json:"Count"`
	ScannedCount int64                    `json:"ScannedCount"`
}

// PutResult is the json shape returned for a put. Attributes is only set
// when the request asked for ReturnValues ALL_OLD and an item was replaced.
type PutResult struct {
	Attributes map[string]interface{} `json:"Attributes,omitempty"`
}

// PutRequest is the document accepted by PutItem. Item and the expression
// attribute values are plain json values, marshalled to dynamodb attribute
// values on the way out.
type PutRequest struct {
	TableName                 string                 `json:"TableName"`
	Item                      map[string]interface{} `json:"Item"`
	ConditionExpression       string                 `json:"ConditionExpression"`
	ExpressionAttributeNames  map[string]string      `json:"ExpressionAttributeNames"`
	ExpressionAttributeValues map[string]interface{} `json:"ExpressionAttributeValues"`
	ReturnValues              string                 `json:"ReturnValues"`
}

// decodePutRequest converts an opaque json value into a PutRequest. Numbers
// inside Item and ExpressionAttributeValues come out as json.Number.
func decodePutRequest(item interface{}) (*PutRequest, error) {
	b, err := json.Marshal(item)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidRequest, "failed encoding put request: %v", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()

	request := new(PutRequest)
	if err := decoder.Decode(request); err != nil {
		return nil, errors.Wrap(ErrInvalidRequest, "put request must be a json object")
	}

	if len(request.Item) == 0 {
		return nil, errors.Wrap(ErrInvalidRequest, "item is required")
	}

	return request, nil
}

// input builds the dynamodb put for table.
func (request *PutRequest) input(table string) (*dynamodb.PutItemInput, error) {
	av, err := encodeAttributes(request.Item)
	if err != nil {
		return nil, errors.Wrap(err, "failed marshalling item")
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	}

	if request.ConditionExpression != "" {
		input.ConditionExpression = aws.String(request.ConditionExpression)
	}

	if len(request.ExpressionAttributeNames) > 0 {
		input.ExpressionAttributeNames = aws.StringMap(request.ExpressionAttributeNames)
	}

	if len(request.ExpressionAttributeValues) > 0 {
		values, err := encodeAttributes(request.ExpressionAttributeValues)
		if err != nil {
			return nil, errors.Wrap(err, "failed marshalling expression attribute values")
		}

		input.ExpressionAttributeValues = values
	}

	if request.ReturnValues != "" {
		input.ReturnValues = aws.String(request.ReturnValues)
	}

	return input, nil
}
