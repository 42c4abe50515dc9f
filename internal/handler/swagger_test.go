package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSwagger = `{
  "swagger": "2.0",
  "info": {"title": "Budget Tracker API", "version": "1.0"},
  "basePath": "/api/v1",
  "paths": {
    "/loans/{id}": {
      "put": {
        "tags": ["loans"],
        "consumes": ["application/json"],
        "produces": ["application/json"],
        "summary": "Update a loan",
        "parameters": [
          {"type": "string", "description": "Loan ID", "name": "id", "in": "path", "required": true},
          {"description": "Request body", "name": "request", "in": "body", "required": true,
           "schema": {"$ref": "#/definitions/handler.UpdateLoanRequest"}}
        ],
        "responses": {
          "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Loan"}},
          "204": {"description": "No Content"}
        }
      }
    }
  },
  "definitions": {
    "domain.Loan": {"type": "object", "properties": {"id": {"type": "string"}}},
    "handler.LoanList": {"type": "array", "items": {"$ref": "#/definitions/domain.Loan"}}
  }
}`

func TestConvertSwagger2(t *testing.T) {
	doc, err := ConvertSwagger2([]byte(sampleSwagger), "https://budget.local/")
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, "Budget Tracker API", doc.Info["title"])
	assert.Equal(t, []OpenAPIServer{{URL: "https://budget.local/api/v1", Description: "This server"}}, doc.Servers)
	assert.Equal(t, []OpenAPITag{{Name: "loans", Description: apiTags["loans"]}}, doc.Tags)

	op, ok := doc.Paths["/loans/{id}"]["put"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Update a loan", op["summary"])
	assert.NotContains(t, op, "consumes")

	out, err := json.Marshal(op)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"tags": ["loans"],
		"summary": "Update a loan",
		"parameters": [
			{"name": "id", "in": "path", "description": "Loan ID", "required": true, "schema": {"type": "string"}}
		],
		"requestBody": {
			"description": "Request body",
			"required": true,
			"content": {"application/json": {"schema": {"$ref": "#/components/schemas/handler.UpdateLoanRequest"}}}
		},
		"responses": {
			"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.Loan"}}}},
			"204": {"description": "No Content"}
		}
	}`, string(out))

	schemas, err := json.Marshal(doc.Components["schemas"])
	require.NoError(t, err)
	assert.Contains(t, string(schemas), `"#/components/schemas/domain.Loan"`)
	assert.NotContains(t, string(schemas), "#/definitions/")
}

func TestConvertSwagger2_InvalidDocument(t *testing.T) {
	_, err := ConvertSwagger2([]byte(`not json`), "http://localhost")
	assert.Error(t, err)
}
