package model

import (
	"encoding/json"
	"fmt"

	"github.com/mosaicsoft/entitykit/utils"
)

var propertyTypes = []string{"string", "boolean", "numeric"}

const UI_SINGLE_LINE = "singleLine"
const UI_CHECKBOX = "checkbox"
const UI_MULTI_LINE = "multiLine"

//Property interface that all fields should implement
type Property interface {
	IsValid() bool
	GetType() string
	GetLabel() string
	GetErrors() []error
}

//BasicProperty is basic struct for a property
type BasicProperty struct {
	Type       string      `json:"type"`
	UI         string      `json:"ui"`
	Label      string      `json:"label"`
	Value      interface{} `json:"value"`
	IsRequired bool        `json:"is_required"`
	errors     []error
}

func (b *BasicProperty) GetType() string {
	return b.Type
}
func (b *BasicProperty) GetLabel() string {
	return b.Label
}
func (b *BasicProperty) GetErrors() []error {
	return b.errors
}

//StringProperty basic string property
type StringProperty struct {
	BasicProperty
	Value string `json:"value"`
}

//IsValid add rules for validating value
func (s *StringProperty) IsValid() bool {
	if s.IsRequired && s.Value == "" {
		s.errors = append(s.errors, fmt.Errorf("'%s' is required", s.Label))
		return false
	}
	return true
}

//FromLabelAndValue create property using label
func (s *StringProperty) FromLabelAndValue(label string, value string, isRequired bool) *StringProperty {
	s.BasicProperty.Type = "string"
	s.BasicProperty.Label = label
	s.Value = value
	s.BasicProperty.IsRequired = isRequired
	s.BasicProperty.UI = UI_SINGLE_LINE //Sets default
	return s
}

func (s *StringProperty) FromJSON(prop map[string]interface{}) *StringProperty {
	label, ok := prop["label"].(string)
	if !ok || label == "" {
		return nil
	}
	value, ok := prop["value"].(string)
	if !ok {
		return nil
	}

	s.BasicProperty.Type = "string"
	s.BasicProperty.Label = label
	s.Value = value
	s.BasicProperty.IsRequired, _ = prop["is_required"].(bool)

	if ui, ok := prop["ui"].(string); ok && ui != "" {
		s.BasicProperty.UI = ui
	} else {
		s.BasicProperty.UI = UI_SINGLE_LINE
	}
	return s
}

//BooleanProperty basic boolean property
type BooleanProperty struct {
	BasicProperty
	Value bool `json:"value"`
}

func (b *BooleanProperty) IsValid() bool {
	return true
}

//FromLabelAndValue create property using label
func (b *BooleanProperty) FromLabelAndValue(label string, value bool, isRequired bool) *BooleanProperty {
	b.BasicProperty.Type = "boolean"
	b.BasicProperty.Label = label
	b.Value = value
	b.BasicProperty.IsRequired = isRequired
	b.BasicProperty.UI = UI_CHECKBOX //Sets default
	return b
}

func (b *BooleanProperty) FromJSON(prop map[string]interface{}) *BooleanProperty {
	label, ok := prop["label"].(string)
	if !ok || label == "" {
		return nil
	}
	value, ok := prop["value"].(bool)
	if !ok {
		return nil
	}

	b.BasicProperty.Type = "boolean"
	b.BasicProperty.Label = label
	b.Value = value
	b.BasicProperty.IsRequired, _ = prop["is_required"].(bool)

	if ui, ok := prop["ui"].(string); ok && ui != "" {
		b.BasicProperty.UI = ui
	} else {
		b.BasicProperty.UI = UI_CHECKBOX
	}
	return b
}

//NumericProperty basic numeric property
type NumericProperty struct {
	BasicProperty
	Value float32 `json:"value"`
}

//IsValid add rules for validating value
func (n *NumericProperty) IsValid() bool {
	if n.IsRequired && n.Value == 0 {
		n.errors = append(n.errors, fmt.Errorf("'%s' is required", n.Label))
		return false
	}
	return true
}

//FromLabelAndValue create property using label
func (n *NumericProperty) FromLabelAndValue(label string, value float32, isRequired bool) *NumericProperty {
	n.BasicProperty.Type = "numeric"
	n.BasicProperty.Label = label
	n.Value = value
	n.BasicProperty.IsRequired = isRequired
	n.BasicProperty.UI = UI_SINGLE_LINE //Sets default
	return n
}

func (n *NumericProperty) FromJSON(prop map[string]interface{}) *NumericProperty {
	label, ok := prop["label"].(string)
	if !ok || label == "" {
		return nil
	}
	value, ok := prop["value"].(float64)
	if !ok {
		return nil
	}

	n.BasicProperty.Type = "numeric"
	n.BasicProperty.Label = label
	n.Value = float32(value)
	n.BasicProperty.IsRequired, _ = prop["is_required"].(bool)

	if ui, ok := prop["ui"].(string); ok && ui != "" {
		n.BasicProperty.UI = ui
	} else {
		n.BasicProperty.UI = UI_SINGLE_LINE
	}
	return n
}

//AmorphousEntity is an identified entity with a schema-less set of labelled properties
type AmorphousEntity struct {
	BasicEntity
	Properties map[string]Property `json:"properties"`
}

func (e *AmorphousEntity) Get(label string) Property {
	return e.Properties[label]
}

func (e *AmorphousEntity) Set(property Property) {
	if e.Properties == nil {
		e.Properties = make(map[string]Property)
	}
	e.Properties[property.GetLabel()] = property
}

func (e *AmorphousEntity) UnmarshalJSON(data []byte) error {
	var v map[string]interface{}
	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}

	if id, ok := v["id"].(float64); ok {
		tid := int(id)
		e.ID = &tid
	}

	properties, ok := v["properties"].(map[string]interface{})
	if !ok || len(properties) == 0 {
		return nil
	}

	for _, prop := range properties {
		currProp, ok := prop.(map[string]interface{})
		if !ok {
			continue
		}

		currPropType, _ := currProp["type"].(string)
		if !utils.Contains(propertyTypes, currPropType) {
			continue
		}

		switch currPropType {
		case "string":
			if stringProp := new(StringProperty).FromJSON(currProp); stringProp != nil {
				e.Set(stringProp)
			}
		case "boolean":
			if booleanProp := new(BooleanProperty).FromJSON(currProp); booleanProp != nil {
				e.Set(booleanProp)
			}
		case "numeric":
			if numericProp := new(NumericProperty).FromJSON(currProp); numericProp != nil {
				e.Set(numericProp)
			}
		}
	}

	return nil
}
