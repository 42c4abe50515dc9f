package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"

	"github.com/dafibh/budget-tracker/budget-backend/docs"
)

const (
	swaggerDefinitionsRef = "#/definitions/"
	openAPISchemasRef     = "#/components/schemas/"
	jsonMediaType         = "application/json"
)

// apiTags describes the route groups registered in RegisterRoutes.
var apiTags = map[string]string{
	"budget":      "Computed totals, allocation and emergency fund status",
	"income":      "Income sources",
	"expenses":    "Monthly and annual-only expenses",
	"loans":       "Fixed-term loan repayments",
	"savings":     "Emergency fund and savings goals",
	"investments": "Investment and pension accounts",
	"backups":     "Snapshots copied to object storage",
}

// OpenAPIDocument is the OpenAPI 3 rendering of the generated Swagger 2 docs.
type OpenAPIDocument struct {
	OpenAPI    string                    `json:"openapi"`
	Info       map[string]any            `json:"info"`
	Servers    []OpenAPIServer           `json:"servers"`
	Tags       []OpenAPITag              `json:"tags,omitempty"`
	Paths      map[string]map[string]any `json:"paths"`
	Components map[string]any            `json:"components,omitempty"`
}

type OpenAPIServer struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

type OpenAPITag struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// swagger2Doc is the subset of a Swagger 2 document that gets converted.
type swagger2Doc struct {
	Info        map[string]any                       `json:"info"`
	BasePath    string                               `json:"basePath"`
	Paths       map[string]map[string]map[string]any `json:"paths"`
	Definitions map[string]any                       `json:"definitions"`
}

// ServeOpenAPI3Spec serves the budget API docs as OpenAPI 3, with the
// requesting host as the only server.
func ServeOpenAPI3Spec(c echo.Context) error {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return NewInternalError(c, "Failed to read API docs")
	}
	doc, err := ConvertSwagger2([]byte(raw), c.Scheme()+"://"+c.Request().Host)
	if err != nil {
		return NewInternalError(c, "Failed to convert API docs")
	}
	return c.JSON(http.StatusOK, doc)
}

// ConvertSwagger2 rewrites a Swagger 2 document as OpenAPI 3. Body
// parameters become request bodies, response schemas move under a JSON
// media type and definitions become component schemas.
func ConvertSwagger2(raw []byte, host string) (*OpenAPIDocument, error) {
	var src swagger2Doc
	if err := json.Unmarshal(raw, &src); err != nil {
		return nil, fmt.Errorf("parse swagger doc: %w", err)
	}

	doc := &OpenAPIDocument{
		OpenAPI: "3.0.3",
		Info:    src.Info,
		Servers: []OpenAPIServer{{URL: strings.TrimSuffix(host, "/") + src.BasePath, Description: "This server"}},
		Paths:   make(map[string]map[string]any, len(src.Paths)),
	}

	seen := map[string]bool{}
	for path, ops := range src.Paths {
		converted := make(map[string]any, len(ops))
		for method, op := range ops {
			converted[method] = convertOperation(op)
			for _, tag := range stringList(op["tags"]) {
				seen[tag] = true
			}
		}
		doc.Paths[path] = converted
	}

	for name := range seen {
		doc.Tags = append(doc.Tags, OpenAPITag{Name: name, Description: apiTags[name]})
	}
	sort.Slice(doc.Tags, func(i, j int) bool { return doc.Tags[i].Name < doc.Tags[j].Name })

	if len(src.Definitions) > 0 {
		doc.Components = map[string]any{"schemas": rewriteRefs(src.Definitions)}
	}
	return doc, nil
}

func convertOperation(op map[string]any) map[string]any {
	out := make(map[string]any, len(op))
	for key, value := range op {
		switch key {
		case "parameters", "responses", "consumes", "produces":
		default:
			out[key] = rewriteRefs(value)
		}
	}

	if params, ok := op["parameters"].([]any); ok {
		var converted []any
		for _, p := range params {
			param, ok := p.(map[string]any)
			if !ok {
				continue
			}
			if param["in"] == "body" {
				body := map[string]any{
					"content": jsonContent(param["schema"]),
				}
				if required, ok := param["required"]; ok {
					body["required"] = required
				}
				if desc, ok := param["description"]; ok {
					body["description"] = desc
				}
				out["requestBody"] = body
				continue
			}
			converted = append(converted, convertParameter(param))
		}
		if len(converted) > 0 {
			out["parameters"] = converted
		}
	}

	if responses, ok := op["responses"].(map[string]any); ok {
		converted := make(map[string]any, len(responses))
		for status, r := range responses {
			resp, ok := r.(map[string]any)
			if !ok {
				continue
			}
			entry := map[string]any{"description": resp["description"]}
			if schema, ok := resp["schema"]; ok {
				entry["content"] = jsonContent(schema)
			}
			converted[status] = entry
		}
		out["responses"] = converted
	}
	return out
}

// convertParameter moves the inline type fields of a path or query
// parameter into a schema object.
func convertParameter(param map[string]any) map[string]any {
	out := map[string]any{}
	schema := map[string]any{}
	for key, value := range param {
		switch key {
		case "name", "in", "description", "required":
			out[key] = value
		case "type", "format", "enum", "default", "minimum", "maximum", "items":
			schema[key] = rewriteRefs(value)
		}
	}
	if len(schema) > 0 {
		out["schema"] = schema
	}
	return out
}

func jsonContent(schema any) map[string]any {
	return map[string]any{jsonMediaType: map[string]any{"schema": rewriteRefs(schema)}}
}

// rewriteRefs points every $ref at components/schemas.
func rewriteRefs(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for key, value := range node {
			if ref, ok := value.(string); ok && key == "$ref" {
				out[key] = strings.Replace(ref, swaggerDefinitionsRef, openAPISchemasRef, 1)
				continue
			}
			out[key] = rewriteRefs(value)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, item := range node {
			out[i] = rewriteRefs(item)
		}
		return out
	}
	return v
}

func stringList(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
