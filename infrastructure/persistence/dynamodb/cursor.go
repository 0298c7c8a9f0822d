package dynamodb

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// listCursor is the serialized form of a date-index LastEvaluatedKey. The
// cursor is opaque to callers: they round-trip it verbatim to fetch the
// next page.
type listCursor struct {
	PK     string `json:"pk"`
	SK     string `json:"sk"`
	GSI1PK string `json:"gsi1pk"`
	GSI1SK string `json:"gsi1sk"`
}

func encodeCursor(lastKey map[string]types.AttributeValue) string {
	if len(lastKey) == 0 {
		return ""
	}

	cursor := listCursor{
		PK:     stringAttr(lastKey, "PK"),
		SK:     stringAttr(lastKey, "SK"),
		GSI1PK: stringAttr(lastKey, "GSI1PK"),
		GSI1SK: stringAttr(lastKey, "GSI1SK"),
	}

	raw, err := json.Marshal(cursor)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeCursor(token string) (map[string]types.AttributeValue, error) {
	if token == "" {
		return nil, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("malformed cursor: %w", err)
	}

	var cursor listCursor
	if err := json.Unmarshal(raw, &cursor); err != nil {
		return nil, fmt.Errorf("malformed cursor: %w", err)
	}
	if cursor.PK == "" || cursor.GSI1PK == "" {
		return nil, fmt.Errorf("malformed cursor: missing key fields")
	}

	return map[string]types.AttributeValue{
		"PK":     &types.AttributeValueMemberS{Value: cursor.PK},
		"SK":     &types.AttributeValueMemberS{Value: cursor.SK},
		"GSI1PK": &types.AttributeValueMemberS{Value: cursor.GSI1PK},
		"GSI1SK": &types.AttributeValueMemberS{Value: cursor.GSI1SK},
	}, nil
}

func stringAttr(attrs map[string]types.AttributeValue, name string) string {
	if s, ok := attrs[name].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}
