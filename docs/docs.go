// Package docs registers the OpenAPI document served under /swagger. It is
// kept by hand alongside the handler annotations.
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
        "/api/contact": {
            "post": {
                "description": "Validates a contact submission and forwards it to the studio by email",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Submit the contact form",
                "parameters": [
                    {
                        "description": "Contact payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.ContactRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ContactResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Detailed health, including email provider configuration",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.HealthCheck"}}
                }
            }
        },
        "/health/liveness": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/readiness": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.HealthCheck"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.HealthCheck"}}
                }
            }
        }
    },
    "definitions": {
        "types.ContactRequest": {
            "type": "object",
            "required": ["name", "email", "message"],
            "properties": {
                "name": {"type": "string", "minLength": 2, "maxLength": 100, "example": "Jo"},
                "email": {"type": "string", "example": "jo@x.com"},
                "message": {"type": "string", "minLength": 10, "maxLength": 1000, "example": "Hello there!"}
            }
        },
        "types.ContactResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "id": {"type": "string"}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Invalid email address"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "types.HealthComponent": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["UP", "DOWN", "DEGRADED"]},
                "details": {"type": "string"}
            }
        },
        "types.HealthCheck": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["UP", "DOWN", "DEGRADED"]},
                "components": {"type": "object", "additionalProperties": {"$ref": "#/definitions/types.HealthComponent"}},
                "version": {"type": "string"},
                "timestamp": {"type": "string"},
                "uptime": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Rebirth Studio Portfolio API",
	Description:      "Contact form endpoint and health checks for the portfolio site.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
