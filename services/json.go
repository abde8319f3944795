package services

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// JSONList marshals an ordered string list into a JSON column value.
// A nil or empty slice stores as an empty JSON array, not NULL.
func JSONList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

// JSONValue marshals any value (e.g. []models.ItineraryDay) into a JSON
// column value.
func JSONValue(v any) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}
