// Package docs holds the hand-maintained swagger spec served on /swagger, keep it in sync with handler annotations
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
        "/api/customers": {
            "get": {
                "description": "Returns all customers",
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Get all customers",
                "parameters": [
                    {"type": "string", "description": "Customer id, single customer is returned if provided", "name": "id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/handlers.envelope"}, {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/model.Customer"}}}}]}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.envelope"}}
                }
            },
            "post": {
                "description": "Creates new customer, id of created customer is not returned",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "New Customer",
                "parameters": [
                    {"description": "Data for new customer", "name": "customer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CustomerInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.envelope"}}
                }
            }
        },
        "/api/customers/{id}": {
            "get": {
                "description": "Returns single customer with provided id",
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Get single customer by id",
                "parameters": [
                    {"type": "integer", "description": "Customer id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/handlers.envelope"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/model.Customer"}}}]}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.envelope"}}
                }
            },
            "put": {
                "description": "Replaces name, email and phone of existing customer",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Update Customer",
                "parameters": [
                    {"type": "integer", "description": "Customer id", "name": "id", "in": "path", "required": true},
                    {"description": "Customer data", "name": "customer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CustomerInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.envelope"}}
                }
            },
            "delete": {
                "description": "Deletes customer with provided id",
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Delete customer by id",
                "parameters": [
                    {"type": "integer", "description": "Customer id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.envelope"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Pings configured customers store",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.envelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.envelope"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.envelope": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {},
                "status": {"type": "integer"}
            }
        },
        "model.Customer": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "model.CustomerInput": {
            "type": "object",
            "required": ["email", "name", "phone"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"}
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
	Title:            "Customers API",
	Description:      "CRUD api for customer records",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
