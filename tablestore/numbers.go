package tablestore

import (
	"encoding/json"

	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

// dynamodb numbers carry up to 38 digits, more than float64 holds exactly, so
// they travel as json.Number on the json side and dynamodbattribute.Number on
// the dynamodb side.

var attributeDecoder = dynamodbattribute.NewDecoder(func(d *dynamodbattribute.Decoder) {
	d.UseNumber = true
})

// encodeAttributes marshals a decoded json object into dynamodb attributes.
func encodeAttributes(values map[string]interface{}) (map[string]*dynamodb.AttributeValue, error) {
	return dynamodbattribute.MarshalMap(toAttributeNumbers(values))
}

// decodeAttributes unmarshals dynamodb attributes into a json ready object.
func decodeAttributes(av map[string]*dynamodb.AttributeValue) (map[string]interface{}, error) {
	var out interface{}
	if err := attributeDecoder.Decode(&dynamodb.AttributeValue{M: av}, &out); err != nil {
		return nil, err
	}

	values, _ := toJSONNumbers(out).(map[string]interface{})
	if values == nil {
		values = map[string]interface{}{}
	}

	return values, nil
}

func toAttributeNumbers(v interface{}) interface{} {
	switch t := v.(type) {
	case json.Number:
		return dynamodbattribute.Number(t)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = toAttributeNumbers(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = toAttributeNumbers(e)
		}
		return out
	default:
		return v
	}
}

func toJSONNumbers(v interface{}) interface{} {
	switch t := v.(type) {
	case dynamodbattribute.Number:
		return json.Number(t)
	case []dynamodbattribute.Number:
		out := make([]interface{}, len(t))
		for i, n := range t {
			out[i] = json.Number(n)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = toJSONNumbers(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = toJSONNumbers(e)
		}
		return out
	default:
		return v
	}
}
