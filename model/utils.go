package model

import (
	"encoding/json"
	"math"
	"reflect"
)

func GetType(myvar interface{}) string {
	if t := reflect.TypeOf(myvar); t.Kind() == reflect.Ptr {
		return t.Elem().Name()
	} else {
		return t.Name()
	}
}

//GetIDFromPayload returns the entity identifier from the payload, nil when the payload has no identifier
func GetIDFromPayload(payload []byte) (*int, error) {
	var tempPayload map[string]interface{}
	err := json.Unmarshal(payload, &tempPayload)
	if err != nil {
		return nil, err
	}

	if tempPayload["id"] == nil {
		return nil, nil
	}

	number, ok := tempPayload["id"].(float64)
	if !ok || number != math.Trunc(number) {
		return nil, NewError("expected the identifier to be an integer", nil)
	}

	id := int(number)
	return &id, nil
}
