package openapi

import (
	"sort"
	"strconv"
	"strings"
)

// OpenAPI Root Object
type OpenAPI struct {
	OpenAPI string              `json:"openapi"`
	Info    Info                `json:"info"`
	Paths   map[string]PathItem `json:"paths"`
}

type Info struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

type PathItem map[string]Operation // Key is method: "get", "post", etc.

type Operation struct {
	Summary     string              `json:"summary,omitempty"`
	OperationID string              `json:"operationId,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty"`
	RequestBody *RequestBody        `json:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses"`
}

type Parameter struct {
	Name        string `json:"name"`
	In          string `json:"in"` // "query", "path", "header"
	Required    bool   `json:"required,omitempty"`
	Schema      Schema `json:"schema"`
	Description string `json:"description,omitempty"`
}

type RequestBody struct {
	Content  map[string]MediaType `json:"content"`
	Required bool                 `json:"required,omitempty"`
}

type MediaType struct {
	Schema interface{} `json:"schema"` // Use interface{} for flexible schema
}

type Schema struct {
	Type string `json:"type"`
}

type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

// Field is one property of a request or response body.
// Depth 1 is a top-level property; deeper fields attach to the closest
// preceding field one level up, so a list reads like an indented outline.
type Field struct {
	Name        string
	Type        string // "string", "number", "integer", "boolean", "object", "array"
	Depth       int
	Description string
}

// Param is a path or query parameter
type Param struct {
	Name        string
	In          string
	Type        string
	Required    bool
	Description string
}

// Route describes one HTTP handler
type Route struct {
	Method      string
	Path        string // gin syntax, ":id" segments
	Name        string
	Summary     string
	Params      []Param
	BodyType    string // request content type; empty when there is no body
	Body        []Field
	Status      int
	ContentType string // response content type; defaults to application/json
	Response    []Field
}

// Build assembles the document for a route table
func Build(title, version string, routes []Route) *OpenAPI {
	spec := &OpenAPI{
		OpenAPI: "3.0.0",
		Info: Info{
			Title:   title,
			Version: version,
		},
		Paths: make(map[string]PathItem),
	}

	for _, r := range routes {
		processRoute(spec, r)
	}
	return spec
}

// SortedPaths returns the path keys in order
func (o *OpenAPI) SortedPaths() []string {
	keys := make([]string, 0, len(o.Paths))
	for k := range o.Paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func processRoute(spec *OpenAPI, r Route) {
	fullPath := ToOpenAPIPath(r.Path)
	if fullPath == "" {
		return
	}

	method := strings.ToLower(r.Method)
	if method == "" {
		method = "get"
	}

	// Initialize PathItem
	if _, ok := spec.Paths[fullPath]; !ok {
		spec.Paths[fullPath] = make(PathItem)
	}

	op := Operation{
		Summary:     r.Summary,
		OperationID: r.Name,
		Responses:   make(map[string]Response),
	}
	if op.Summary == "" {
		op.Summary = r.Name
	}

	// 1. Parameters
	for _, param := range r.Params {
		inType := "query"
		if strings.EqualFold(param.In, "path") {
			inType = "path"
		} else if strings.EqualFold(param.In, "header") {
			inType = "header"
		}

		op.Parameters = append(op.Parameters, Parameter{
			Name:        param.Name,
			In:          inType,
			Required:    param.Required || inType == "path",
			Schema:      Schema{Type: mapType(param.Type)},
			Description: param.Description,
		})
	}

	// 2. Request Body
	if r.BodyType != "" {
		op.RequestBody = &RequestBody{
			Content: map[string]MediaType{
				r.BodyType: {
					Schema: buildComplexSchema(r.Body),
				},
			},
			Required: true,
		}
	}

	// 3. Response
	respObj := Response{
		Description: "Successful response",
	}
	contentType := r.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	if len(r.Response) > 0 {
		respObj.Content = map[string]MediaType{
			contentType: {
				Schema: buildComplexSchema(r.Response),
			},
		}
	} else if r.ContentType != "" {
		respObj.Content = map[string]MediaType{
			contentType: {
				Schema: map[string]interface{}{"type": "string", "format": "binary"},
			},
		}
	}

	statusCode := "200"
	if r.Status != 0 {
		statusCode = strconv.Itoa(r.Status)
	}
	op.Responses[statusCode] = respObj

	spec.Paths[fullPath][method] = op
}

// ToOpenAPIPath turns "/sessions/:id" into "/sessions/{id}"
func ToOpenAPIPath(path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") || strings.HasPrefix(seg, "*") {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

// buildComplexSchema reconstructs the JSON schema from a flattened list of depth-aware fields
func buildComplexSchema(fields []Field) map[string]interface{} {
	rootProps := make(map[string]interface{})
	rootSchema := map[string]interface{}{
		"type":       "object",
		"properties": rootProps,
	}

	// pathMap tracks the Schema Object at each depth
	pathMap := make(map[int]map[string]interface{})
	pathMap[0] = rootSchema

	for _, field := range fields {
		if field.Depth < 1 {
			continue
		}

		parentSchema, ok := pathMap[field.Depth-1]
		if !ok {
			parentSchema = rootSchema
		}

		var targetProps map[string]interface{}

		parentType, _ := parentSchema["type"].(string)

		if parentType == "array" {
			// Parent is Array -> Properties belong to "items" (which must be an object)
			itemsSchema, _ := parentSchema["items"].(map[string]interface{})
			if itemsSchema == nil || itemsSchema["type"] != "object" {
				itemsSchema = map[string]interface{}{
					"type":       "object",
					"properties": make(map[string]interface{}),
				}
				parentSchema["items"] = itemsSchema
			}
			targetProps = itemsSchema["properties"].(map[string]interface{})
		} else {
			if _, hasProps := parentSchema["properties"]; !hasProps {
				parentSchema["properties"] = make(map[string]interface{})
			}
			targetProps = parentSchema["properties"].(map[string]interface{})
		}

		fieldType := mapType(field.Type)
		fieldSchema := map[string]interface{}{
			"type": fieldType,
		}
		if field.Description != "" {
			fieldSchema["description"] = field.Description
		}

		// Overwritten if children are added later
		if fieldType == "array" {
			fieldSchema["items"] = map[string]interface{}{
				"type": "string",
			}
		}

		targetProps[field.Name] = fieldSchema
		pathMap[field.Depth] = fieldSchema
	}

	return rootSchema
}

// mapType normalizes a type name to a JSON Schema type
func mapType(typeName string) string {
	switch lower := strings.ToLower(strings.TrimSpace(typeName)); lower {
	case "integer", "int":
		return "integer"
	case "number", "float", "float64":
		return "number"
	case "boolean", "bool":
		return "boolean"
	case "array", "list":
		return "array"
	case "object", "map":
		return "object"
	default:
		return "string"
	}
}
