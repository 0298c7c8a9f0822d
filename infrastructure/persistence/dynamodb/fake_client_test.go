package dynamodb

import (
	"context"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeClient is an in-memory stand-in for the DynamoDB API, just enough to
// exercise the store's access patterns: point reads and writes on PK/SK,
// conditional puts, attribute updates, and index queries with pagination.
type fakeClient struct {
	items map[string]map[string]types.AttributeValue

	// failAll makes every call return an error, for exercising the
	// fail-open read paths.
	failAll error
}

func newFakeClient() *fakeClient {
	return &fakeClient{items: map[string]map[string]types.AttributeValue{}}
}

func itemKey(item map[string]types.AttributeValue) string {
	return attrString(item, "PK") + "|" + attrString(item, "SK")
}

func attrString(item map[string]types.AttributeValue, name string) string {
	if s, ok := item[name].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeClient) GetItem(_ context.Context, input *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	item := f.items[itemKey(input.Key)]
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeClient) PutItem(_ context.Context, input *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	key := itemKey(input.Item)
	if input.ConditionExpression != nil &&
		strings.Contains(*input.ConditionExpression, "attribute_not_exists") {
		if _, exists := f.items[key]; exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	f.items[key] = input.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeClient) DeleteItem(_ context.Context, input *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	delete(f.items, itemKey(input.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeClient) UpdateItem(_ context.Context, input *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	key := itemKey(input.Key)
	item, exists := f.items[key]
	if !exists {
		if input.ConditionExpression != nil {
			return nil, &types.ConditionalCheckFailedException{}
		}
		item = map[string]types.AttributeValue{
			"PK": input.Key["PK"],
			"SK": input.Key["SK"],
		}
		f.items[key] = item
	}

	// Expression-builder updates look like "SET #0 = :0, #1 = :1" with the
	// attribute names and values carried alongside.
	expr := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(*input.UpdateExpression), "SET"))
	for _, clause := range strings.Split(expr, ",") {
		parts := strings.SplitN(clause, "=", 2)
		if len(parts) != 2 {
			continue
		}
		nameRef := strings.TrimSpace(parts[0])
		valueRef := strings.TrimSpace(parts[1])
		name, ok := input.ExpressionAttributeNames[nameRef]
		if !ok {
			name = nameRef
		}
		item[name] = input.ExpressionAttributeValues[valueRef]
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeClient) Query(_ context.Context, input *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}

	wantPK := ""
	if v, ok := input.ExpressionAttributeValues[":pk"].(*types.AttributeValueMemberS); ok {
		wantPK = v.Value
	}

	pkAttr, skAttr := "PK", "SK"
	if input.IndexName != nil {
		switch *input.IndexName {
		case testDateIndex:
			pkAttr, skAttr = "GSI1PK", "GSI1SK"
		case testSlugIndex:
			pkAttr, skAttr = "GSI2PK", "GSI2SK"
		}
	}

	var matched []map[string]types.AttributeValue
	for _, item := range f.items {
		if attrString(item, pkAttr) == wantPK {
			matched = append(matched, item)
		}
	}

	ascending := input.ScanIndexForward == nil || *input.ScanIndexForward
	sort.Slice(matched, func(i, j int) bool {
		si, sj := attrString(matched[i], skAttr), attrString(matched[j], skAttr)
		if ascending {
			return si < sj
		}
		return si > sj
	})

	if len(input.ExclusiveStartKey) > 0 {
		startSK := attrString(input.ExclusiveStartKey, skAttr)
		var after []map[string]types.AttributeValue
		for _, item := range matched {
			sk := attrString(item, skAttr)
			if (ascending && sk > startSK) || (!ascending && sk < startSK) {
				after = append(after, item)
			}
		}
		matched = after
	}

	var lastKey map[string]types.AttributeValue
	if input.Limit != nil && len(matched) > int(*input.Limit) {
		matched = matched[:int(*input.Limit)]
		last := matched[len(matched)-1]
		lastKey = map[string]types.AttributeValue{
			"PK":     last["PK"],
			"SK":     last["SK"],
			"GSI1PK": last["GSI1PK"],
			"GSI1SK": last["GSI1SK"],
		}
	}

	out := &dynamodb.QueryOutput{
		Count:            int32(len(matched)),
		LastEvaluatedKey: lastKey,
	}
	if input.Select != types.SelectCount {
		out.Items = matched
	}
	return out, nil
}
