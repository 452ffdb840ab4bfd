package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Neatify API",
        "description": "Crowd-sourced cleanliness reporting backend",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Reports", "description": "Report lifecycle"},
        {"name": "Auth", "description": "Admin directory probe"},
        {"name": "Locations", "description": "Campus and municipality listings"},
        {"name": "Uploads", "description": "Standalone image upload"}
    ],
    "paths": {
        "/reports": {
            "post": {
                "tags": ["Reports"],
                "summary": "Submit a cleanliness report",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "image", "in": "formData", "type": "file", "required": true},
                    {"name": "description", "in": "formData", "type": "string", "required": true},
                    {"name": "campus", "in": "formData", "type": "string", "required": true},
                    {"name": "category", "in": "formData", "type": "string"},
                    {"name": "latitude", "in": "formData", "type": "number"},
                    {"name": "longitude", "in": "formData", "type": "number"},
                    {"name": "area", "in": "formData", "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/SubmitReportResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/reports/fetch": {
            "post": {
                "tags": ["Reports"],
                "summary": "List reports for a location scope",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FetchReportsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Report"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/reports/user/reports": {
            "get": {
                "tags": ["Reports"],
                "summary": "List the caller's own reports",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Report"}}},
                    "404": {"description": "No reports", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/reports/{id}/status": {
            "patch": {
                "tags": ["Reports"],
                "summary": "Update a report's triage status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UpdateStatusResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/auth/check-admin": {
            "post": {
                "tags": ["Auth"],
                "summary": "Check whether an email belongs to an admin",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CheckAdminRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CheckAdminResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/campus/list": {
            "get": {
                "tags": ["Locations"],
                "summary": "List campus names with at least one admin",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/LocationName"}}}
                }
            }
        },
        "/municipality/list": {
            "get": {
                "tags": ["Locations"],
                "summary": "List municipality names with at least one admin",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/LocationName"}}}
                }
            }
        },
        "/upload/image": {
            "post": {
                "tags": ["Uploads"],
                "summary": "Upload an image and return its hosted URL",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "image", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UploadImageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "Report": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "campus": {"type": "string"},
                "imageUrl": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string", "enum": ["campus", "room", "helpdesk", "garbage"]},
                "status": {"type": "string", "enum": ["pending", "ongoing", "completed"]},
                "coordinates": {"type": "array", "items": {"type": "number"}},
                "area": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "FetchReportsRequest": {
            "type": "object",
            "properties": {
                "location": {"type": "string"},
                "category": {"type": "string"},
                "area": {"type": "string"},
                "coordinates": {"type": "array", "items": {"type": "number"}}
            },
            "required": ["location"]
        },
        "UpdateStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["pending", "ongoing", "completed"]}
            },
            "required": ["status"]
        },
        "SubmitReportResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "report": {"$ref": "#/definitions/Report"}
            }
        },
        "UpdateStatusResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "report": {"$ref": "#/definitions/Report"}
            }
        },
        "CheckAdminRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"}
            },
            "required": ["email"]
        },
        "CheckAdminResponse": {
            "type": "object",
            "properties": {
                "isAdmin": {"type": "boolean"},
                "location": {"type": "string"},
                "type": {"type": "string", "enum": ["campus", "municipality"]}
            }
        },
        "LocationName": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}
            }
        },
        "UploadImageResponse": {
            "type": "object",
            "properties": {
                "imageUrl": {"type": "string"}
            }
        },
        "MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
