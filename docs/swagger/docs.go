// Package swagger registers the OpenAPI document served under /swagger.
// Keep it in step with the godoc annotations on the handlers.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Holo Group",
            "email": "info@holo-group.com"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/contact": {
            "post": {
                "description": "Validates the form and queues it for the sales team",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Send a quick-contact request",
                "parameters": [
                    {"type": "string", "description": "Language override (vi or en)", "name": "lang", "in": "query"},
                    {"description": "Contact form", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SubmitRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.SubmitResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/content": {
            "get": {
                "produces": ["application/json"],
                "tags": ["language"],
                "summary": "Get the page text for the visitor's language",
                "parameters": [
                    {"type": "string", "description": "Language override (vi or en)", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/i18n.PageContent"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/server.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/server.HealthResponse"}}
                }
            }
        },
        "/language": {
            "get": {
                "produces": ["application/json"],
                "tags": ["language"],
                "summary": "Get the visitor's language",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.LanguageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["language"],
                "summary": "Set the visitor's language",
                "parameters": [
                    {"description": "Language code (vi or en)", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SetLanguageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.LanguageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/language/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["language"],
                "summary": "Switch between Vietnamese and English",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.LanguageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/routes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["routes"],
                "summary": "List served routes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.RoutesResponse"}}
                }
            }
        },
        "/routes/points": {
            "get": {
                "description": "Returns the departure and destination choices for the route finder",
                "produces": ["application/json"],
                "tags": ["routes"],
                "summary": "List route points",
                "parameters": [
                    {"type": "string", "description": "Language override (vi or en)", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/render.PointView"}}}
                }
            }
        },
        "/routes/search": {
            "get": {
                "description": "Looks up the schedule between two points. An unserved pair is a 200 with a not-found view.",
                "produces": ["application/json"],
                "tags": ["routes"],
                "summary": "Find a route",
                "parameters": [
                    {"type": "string", "description": "Origin point code", "name": "departure", "in": "query", "required": true},
                    {"type": "string", "description": "Destination point code", "name": "destination", "in": "query", "required": true},
                    {"type": "string", "description": "Travel date (YYYY-MM-DD)", "name": "departure-date", "in": "query", "required": true},
                    {"type": "string", "description": "Passenger count, defaults to 1", "name": "passengers", "in": "query"},
                    {"type": "string", "description": "Language override (vi or en)", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/render.RouteView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/tracking/{code}": {
            "get": {
                "description": "Looks up a tracking code. Codes are case-insensitive; an unknown code is a 200 with a not-found view.",
                "produces": ["application/json"],
                "tags": ["tracking"],
                "summary": "Track a shipment",
                "parameters": [
                    {"type": "string", "description": "Tracking code", "name": "code", "in": "path", "required": true},
                    {"type": "string", "description": "Language override (vi or en)", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/render.ShipmentView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "ray_id": {"type": "string"}
            }
        },
        "handler.LanguageResponse": {
            "type": "object",
            "properties": {
                "language": {"type": "string"},
                "message": {"type": "string"},
                "switch_label": {"type": "string"}
            }
        },
        "handler.RoutesResponse": {
            "type": "object",
            "properties": {
                "routes": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.SetLanguageRequest": {
            "type": "object",
            "properties": {
                "language": {"type": "string"}
            }
        },
        "handler.SubmitRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "message": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "service": {"type": "string"}
            }
        },
        "handler.SubmitResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "i18n.PageContent": {
            "type": "object",
            "properties": {
                "language": {"type": "string"},
                "switch_label": {"type": "string"},
                "texts": {"type": "object", "additionalProperties": {"type": "string"}},
                "title": {"type": "string"}
            }
        },
        "render.DepartureView": {
            "type": "object",
            "properties": {
                "action_label": {"type": "string"},
                "booking_url": {"type": "string"},
                "bus_type": {"type": "string"},
                "duration": {"type": "string"},
                "notice": {"type": "string"},
                "price": {"type": "string"},
                "time": {"type": "string"},
                "time_label": {"type": "string"}
            }
        },
        "render.PointView": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "label": {"type": "string"}
            }
        },
        "render.RouteView": {
            "type": "object",
            "properties": {
                "departures": {"type": "array", "items": {"$ref": "#/definitions/render.DepartureView"}},
                "frequency": {"type": "string"},
                "heading": {"type": "string"},
                "kind": {"type": "string"},
                "messages": {"type": "array", "items": {"type": "string"}},
                "summary": {"type": "string"}
            }
        },
        "render.ShipmentView": {
            "type": "object",
            "properties": {
                "delivery_label": {"type": "string"},
                "estimated_delivery": {"type": "string"},
                "heading": {"type": "string"},
                "kind": {"type": "string"},
                "location": {"type": "string"},
                "location_label": {"type": "string"},
                "messages": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string"},
                "status_class": {"type": "string"},
                "timeline": {"type": "array", "items": {"$ref": "#/definitions/render.TimelineItemView"}},
                "timeline_title": {"type": "string"}
            }
        },
        "render.TimelineItemView": {
            "type": "object",
            "properties": {
                "location": {"type": "string"},
                "state": {"type": "string"},
                "status": {"type": "string"},
                "time": {"type": "string"}
            }
        },
        "server.HealthResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Holo Lookup API",
	Description:      "Route finder, shipment tracking and language preferences for the Holo Group site.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
