package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeOpenAPI3Spec(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/openapi.json", nil)
	req.Host = "localhost:8080"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ServeOpenAPI3Spec(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var spec OpenAPI3Spec
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))

	assert.Equal(t, "3.0.3", spec.OpenAPI)
	assert.Equal(t, "TripFund API", spec.Info["title"])
	require.Len(t, spec.Servers, 1)
	assert.Equal(t, "http://localhost:8080/api/v1", spec.Servers[0].URL)
	assert.Contains(t, spec.Paths, "/trip-fund/calculate")
	assert.Contains(t, spec.Paths, "/trip-fund/timeline")

	schemas, ok := spec.Components["schemas"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, schemas, "domain.TripFundSummary")
	assert.Contains(t, schemas, "handler.CalculateRequest")

	assert.NotContains(t, rec.Body.String(), "#/definitions/")
}

func TestTransformParameter_QueryParam(t *testing.T) {
	param := map[string]interface{}{
		"type":        "string",
		"description": "Base trip cost",
		"name":        "baseCost",
		"in":          "query",
	}

	result := transformParameter(param)
	assert.Equal(t, "baseCost", result["name"])
	assert.Equal(t, "query", result["in"])
	assert.NotContains(t, result, "type")
	assert.Equal(t, map[string]interface{}{"type": "string"}, result["schema"])
}

func TestTransformParameter_BodyRewritesSchemaRef(t *testing.T) {
	param := map[string]interface{}{
		"name":     "request",
		"in":       "body",
		"required": true,
		"schema":   map[string]interface{}{"$ref": "#/definitions/handler.CalculateRequest"},
	}

	result := transformParameter(param)
	assert.Equal(t, "request", result["name"])
	assert.Equal(t, true, result["required"])
	assert.Equal(t, map[string]interface{}{"$ref": "#/components/schemas/handler.CalculateRequest"}, result["schema"])
	// Input is not mutated
	assert.Equal(t, map[string]interface{}{"$ref": "#/definitions/handler.CalculateRequest"}, param["schema"])
}
