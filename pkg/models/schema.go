package models

// JSONSchema represents a JSON Schema used to validate raw definition
// documents before they are decoded.
type JSONSchema struct {
	Type        string               `json:"type"`
	Properties  map[string]*Property `json:"properties,omitempty"`
	Required    []string             `json:"required,omitempty"`
	Title       string               `json:"title,omitempty"`
	Description string               `json:"description,omitempty"`
}

// Property represents a JSON Schema property
type Property struct {
	Type        string               `json:"type"`
	Description string               `json:"description,omitempty"`
	MinLength   *int                 `json:"minLength,omitempty"`
	MinItems    *int                 `json:"minItems,omitempty"`
	Items       *Property            `json:"items,omitempty"`
	Properties  map[string]*Property `json:"properties,omitempty"`
	Required    []string             `json:"required,omitempty"`
}

func intPtr(v int) *int { return &v }

// DefinitionSchema returns the JSON Schema an imported workflow definition
// document must satisfy. The schema gates shape only; referential
// consistency is checked by the definition validator afterwards.
func DefinitionSchema() *JSONSchema {
	return &JSONSchema{
		Type:  "object",
		Title: "WorkflowDefinition",
		Properties: map[string]*Property{
			"id":           {Type: "string"},
			"name":         {Type: "string", MinLength: intPtr(1)},
			"description":  {Type: "string"},
			"contentTypes": {Type: "array", MinItems: intPtr(1), Items: &Property{Type: "string"}},
			"isDefault":    {Type: "boolean"},
			"isActive":     {Type: "boolean"},
			"initialState": {Type: "string", MinLength: intPtr(1)},
			"states": {
				Type: "array",
				Items: &Property{
					Type: "object",
					Properties: map[string]*Property{
						"key":         {Type: "string", MinLength: intPtr(1)},
						"name":        {Type: "string"},
						"sortOrder":   {Type: "integer"},
						"isInitial":   {Type: "boolean"},
						"isPublished": {Type: "boolean"},
						"isFinal":     {Type: "boolean"},
					},
					Required: []string{"key"},
				},
			},
			"transitions": {
				Type: "array",
				Items: &Property{
					Type: "object",
					Properties: map[string]*Property{
						"fromStateKey": {Type: "string", MinLength: intPtr(1)},
						"toStateKey":   {Type: "string", MinLength: intPtr(1)},
						"name":         {Type: "string"},
					},
					Required: []string{"fromStateKey", "toStateKey"},
				},
			},
			"roles": {
				Type: "array",
				Items: &Property{
					Type: "object",
					Properties: map[string]*Property{
						"roleKey":     {Type: "string", MinLength: intPtr(1)},
						"displayName": {Type: "string"},
						"priority":    {Type: "integer"},
					},
					Required: []string{"roleKey"},
				},
			},
		},
		Required: []string{"name", "contentTypes", "initialState", "states"},
	}
}
