// Package docs holds the OpenAPI document served by swaggerkit.
// Keep it in step with the swagger annotations on the handlers.
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "openapi": "3.0.3",
  "info": {
    "title": "{{.Title}}",
    "description": "{{.Description}}",
    "version": "{{.Version}}"
  },
  "paths": {
    "/meta/health": {
      "get": {"tags": ["Meta"], "summary": "Liveness", "operationId": "metaHealth",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}}}
    },
    "/meta/ready": {
      "get": {"tags": ["Meta"], "summary": "Readiness of postgres, clickhouse and redis", "operationId": "metaReady",
        "responses": {
          "200": {"description": "ok or degraded", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}},
          "503": {"description": "a required dependency failed"}
        }}
    },
    "/meta/version": {
      "get": {"tags": ["Meta"], "summary": "Build and lexicon version", "operationId": "metaVersion",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/BuildInfo"}}}}}}
    },
    "/meta/service": {
      "get": {"tags": ["Meta"], "summary": "Service name and uptime", "operationId": "metaService",
        "responses": {"200": {"description": "ok"}}}
    },
    "/meta/lexicon": {
      "get": {"tags": ["Meta"], "summary": "Loaded dictionaries", "operationId": "metaLexicon",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Lexicon"}}}}}}
    },
    "/matching/features": {
      "post": {"tags": ["Matching"], "summary": "Extract features from text", "operationId": "matchingFeatures",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/FeaturesInput"}}}},
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/FeatureSummary"}}}}}}
    },
    "/matching/similarity": {
      "post": {"tags": ["Matching"], "summary": "Weighted text similarity of two texts", "operationId": "matchingSimilarity",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/SimilarityInput"}}}},
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/SimilarityResponse"}}}}}}
    },
    "/matching/score": {
      "post": {"tags": ["Matching"], "summary": "Match score of a found item against a lost request", "operationId": "matchingScore",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ScoreInput"}}}},
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ScoreResult"}}}}}}
    },
    "/lost-requests/check": {
      "post": {"tags": ["LostRequests"], "summary": "Possible matches for a draft lost request", "operationId": "lostRequestsCheck",
        "description": "Up to five available found items sharing a word of three or more letters with the draft, or its category. Newest first.",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/CheckInput"}}}},
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/FoundItem"}}}}}}}
    },
    "/lost-requests": {
      "post": {"tags": ["LostRequests"], "summary": "File a lost request", "operationId": "lostRequestsCreate",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/NewLostRequest"}}}},
        "responses": {"201": {"description": "created", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/LostRequest"}}}}}}
    },
    "/lost-requests/{id}": {
      "get": {"tags": ["LostRequests"], "summary": "Get a lost request", "operationId": "lostRequestsGet",
        "parameters": [{"$ref": "#/components/parameters/ID"}],
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/LostRequest"}}}},
          "404": {"description": "not found"}
        }}
    },
    "/lost-requests/{id}/candidates": {
      "get": {"tags": ["LostRequests"], "summary": "Available found items for a stored request", "operationId": "lostRequestsCandidates",
        "parameters": [{"$ref": "#/components/parameters/ID"}],
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/FoundItem"}}}}}}}
    },
    "/found-items": {
      "post": {"tags": ["FoundItems"], "summary": "Report a found item", "operationId": "foundItemsCreate",
        "description": "Stores the item then scores it against every active lost request and notifies owners at or above the threshold. The item is kept even when matching fails or times out.",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/NewFoundItem"}}}},
        "responses": {"201": {"description": "created", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/FoundItemCreated"}}}}}}
    },
    "/found-items/{id}": {
      "get": {"tags": ["FoundItems"], "summary": "Get a found item", "operationId": "foundItemsGet",
        "parameters": [{"$ref": "#/components/parameters/ID"}],
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/FoundItem"}}}},
          "404": {"description": "not found"}
        }}
    }
  },
  "components": {
    "parameters": {
      "ID": {"name": "id", "in": "path", "required": true, "schema": {"type": "string", "format": "uuid"}}
    },
    "schemas": {
      "Envelope": {"type": "object", "properties": {
        "status_code": {"type": "integer"}, "status": {"type": "string"}, "code": {"type": "integer"},
        "error": {"type": "string"}, "field": {"type": "string"}, "request_id": {"type": "string"}, "data": {}
      }},
      "BuildInfo": {"type": "object", "properties": {
        "service": {"type": "string"}, "version": {"type": "string"}, "commit": {"type": "string"},
        "date": {"type": "string"}, "lexicon": {"type": "integer"}
      }},
      "Lexicon": {"type": "object", "properties": {
        "version": {"type": "integer"},
        "colors": {"type": "array", "items": {"type": "string"}},
        "brands": {"type": "array", "items": {"type": "string"}},
        "item_types": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
        "stopwords": {"type": "array", "items": {"type": "string"}}
      }},
      "FeaturesInput": {"type": "object", "required": ["text"], "properties": {"text": {"type": "string", "example": "Blue Nike Backpack"}}},
      "FeatureSummary": {"type": "object", "properties": {
        "colors": {"type": "array", "items": {"type": "string"}},
        "brands": {"type": "array", "items": {"type": "string"}},
        "item_types": {"type": "array", "items": {"type": "object", "properties": {"category": {"type": "string"}, "keyword": {"type": "string"}}}},
        "keywords": {"type": "array", "items": {"type": "string"}}
      }},
      "SimilarityInput": {"type": "object", "properties": {"a": {"type": "string"}, "b": {"type": "string"}}},
      "SimilarityResponse": {"type": "object", "properties": {"similarity": {"type": "number", "minimum": 0, "maximum": 100}}},
      "Record": {"type": "object", "properties": {
        "name": {"type": "string"}, "description": {"type": "string"},
        "category_id": {"type": "integer"}, "location_id": {"type": "integer"}
      }},
      "ScoreInput": {"type": "object", "properties": {"found": {"$ref": "#/components/schemas/Record"}, "request": {"$ref": "#/components/schemas/Record"}}},
      "ScoreResult": {"type": "object", "properties": {
        "score": {"type": "integer", "minimum": 0, "maximum": 100},
        "reasons": {"type": "array", "items": {"type": "string"}}
      }},
      "CheckInput": {"type": "object", "properties": {
        "name": {"type": "string", "maxLength": 200, "example": "White AirPods Pro"},
        "description": {"type": "string", "maxLength": 2000},
        "category_id": {"type": "integer", "minimum": 1}
      }},
      "NewLostRequest": {"type": "object", "required": ["owner_id", "owner_address", "name"], "properties": {
        "owner_id": {"type": "string", "maxLength": 100, "example": "u_1842"},
        "owner_address": {"type": "string", "format": "email", "example": "sam@example.edu"},
        "name": {"type": "string", "maxLength": 200, "example": "Navy blue backpack"},
        "description": {"type": "string", "maxLength": 2000},
        "category_id": {"type": "integer", "minimum": 1},
        "location_id": {"type": "integer", "minimum": 1}
      }},
      "LostRequest": {"type": "object", "properties": {
        "id": {"type": "string", "format": "uuid"}, "owner_id": {"type": "string"}, "owner_address": {"type": "string"},
        "name": {"type": "string"}, "description": {"type": "string"},
        "category_id": {"type": "integer"}, "location_id": {"type": "integer"},
        "status": {"type": "string", "enum": ["active", "matched", "cancelled", "expired"]},
        "matched_item_id": {"type": "string", "format": "uuid"},
        "created_at": {"type": "string", "format": "date-time"}
      }},
      "NewFoundItem": {"type": "object", "required": ["name"], "properties": {
        "name": {"type": "string", "maxLength": 200, "example": "Blue Nike Backpack"},
        "description": {"type": "string", "maxLength": 2000},
        "category_id": {"type": "integer", "minimum": 1},
        "location_id": {"type": "integer", "minimum": 1},
        "location_label": {"type": "string", "maxLength": 200},
        "image_ref": {"type": "string", "maxLength": 500},
        "found_at": {"type": "string", "format": "date-time"}
      }},
      "FoundItem": {"type": "object", "properties": {
        "id": {"type": "string", "format": "uuid"}, "name": {"type": "string"}, "description": {"type": "string"},
        "category_id": {"type": "integer"}, "location_id": {"type": "integer"},
        "location_label": {"type": "string"}, "image_ref": {"type": "string"},
        "status": {"type": "string", "enum": ["available", "pending", "claimed"]},
        "found_at": {"type": "string", "format": "date-time"}
      }},
      "FoundItemCreated": {"type": "object", "properties": {
        "item": {"$ref": "#/components/schemas/FoundItem"},
        "matching": {"type": "object", "properties": {
          "scanned": {"type": "integer"}, "matched": {"type": "integer"}, "notified": {"type": "integer"},
          "failed": {"type": "integer"}, "threshold": {"type": "integer"}, "error": {"type": "string"},
          "results": {"type": "array", "items": {"type": "object", "properties": {
            "request_id": {"type": "string", "format": "uuid"}, "score": {"type": "integer"},
            "reasons": {"type": "array", "items": {"type": "string"}}, "notified": {"type": "boolean"}
          }}}
        }}
      }}
    }
  }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "lostfound API",
	Description:      "Lost and found matching engine",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
