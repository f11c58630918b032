package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

// containsFold matches value anywhere in the field, ignoring case. The input
// is quoted so user text never acts as a pattern.
func containsFold(value string) bson.Regex {
	return bson.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}

// equalFold matches the whole field, ignoring case.
func equalFold(value string) bson.Regex {
	return bson.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}

// normalizeValue converts driver types into plain Go values so documents
// encode to JSON the same way regardless of backend.
func normalizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case bson.M:
		return normalizeMap(v)
	case map[string]interface{}:
		return normalizeMap(v)
	case bson.D:
		out := make(map[string]interface{}, len(v))
		for _, e := range v {
			out[e.Key] = normalizeValue(e.Value)
		}
		return out
	case bson.A:
		return normalizeSlice(v)
	case []interface{}:
		return normalizeSlice(v)
	case bson.DateTime:
		return v.Time().UTC()
	case bson.ObjectID:
		return v.Hex()
	default:
		return value
	}
}

func normalizeMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeSlice(s []interface{}) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = normalizeValue(v)
	}
	return out
}
