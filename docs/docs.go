// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/media": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Media"],
                "summary": "List media records",
                "parameters": [
                    {"type": "string", "description": "Filter by entity type", "name": "entity_type", "in": "query"},
                    {"type": "integer", "description": "Filter by entity id", "name": "entity_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MediaListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Stages the file and runs it through the ingestion pipeline. Falls back to local storage when the provider is unavailable.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Media"],
                "summary": "Upload media",
                "parameters": [
                    {"type": "file", "description": "Photo or video", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "pet, breed, provider or general", "name": "entity_type", "in": "formData"},
                    {"type": "integer", "description": "Owning entity id", "name": "entity_id", "in": "formData"},
                    {"type": "string", "description": "image, video or auto", "name": "media_type", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/entities.MediaMetadata"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "507": {"description": "Local fallback failed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Best-effort delete at the provider; the record is removed only when the provider confirms",
                "produces": ["application/json"],
                "tags": ["Media"],
                "summary": "Delete media",
                "parameters": [
                    {"type": "string", "description": "Public id", "name": "public_id", "in": "query", "required": true},
                    {"type": "string", "description": "image or video", "name": "resource_type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DeleteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/media/async": {
            "post": {
                "description": "Stages the file and hands it to the background worker",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Media"],
                "summary": "Queue a media upload",
                "parameters": [
                    {"type": "file", "description": "Photo or video", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "pet, breed, provider or general", "name": "entity_type", "in": "formData"},
                    {"type": "integer", "description": "Owning entity id", "name": "entity_id", "in": "formData"},
                    {"type": "string", "description": "image, video or auto", "name": "media_type", "in": "formData"}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/dto.EnqueueResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "503": {"description": "Queue not configured", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/media/record": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Media"],
                "summary": "Get a media record",
                "parameters": [
                    {"type": "string", "description": "Public id", "name": "public_id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.MediaMetadata"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/media/url": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Media"],
                "summary": "Build a delivery URL",
                "parameters": [
                    {"type": "string", "description": "Public id or local /uploads path", "name": "public_id", "in": "query", "required": true},
                    {"type": "string", "description": "image or video", "name": "resource_type", "in": "query"},
                    {"type": "string", "description": "Transformation segment, e.g. w_300,h_200,c_fill", "name": "transformation", "in": "query"},
                    {"type": "string", "description": "Delivery format", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.URLResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/staging/cleanup": {
            "post": {
                "description": "Manual trigger for the scheduled removal of stale staged uploads",
                "produces": ["application/json"],
                "tags": ["Maintenance"],
                "summary": "Clean the staging directory",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.DeleteResponse": {
            "type": "object",
            "properties": {
                "deleted": {"type": "boolean"},
                "public_id": {"type": "string"}
            }
        },
        "dto.EnqueueResponse": {
            "type": "object",
            "properties": {
                "job_id": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "dto.MediaListResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/entities.MediaMetadata"}}
            }
        },
        "dto.URLResponse": {
            "type": "object",
            "properties": {
                "url": {"type": "string"}
            }
        },
        "entities.MediaMetadata": {
            "type": "object",
            "properties": {
                "bytes": {"type": "integer"},
                "created_at": {"type": "string"},
                "duration": {"type": "number"},
                "entity_id": {"type": "integer"},
                "entity_type": {"type": "string", "enum": ["pet", "breed", "provider", "general"]},
                "format": {"type": "string"},
                "height": {"type": "integer"},
                "original_filename": {"type": "string"},
                "public_id": {"type": "string"},
                "resource_type": {"type": "string", "enum": ["image", "video"]},
                "secure_url": {"type": "string"},
                "storage_backend": {"type": "string", "enum": ["remote", "local"]},
                "url": {"type": "string"},
                "width": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Pet Marketplace Media API",
	Description:      "Media ingestion with remote upload strategies and a local fallback store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
