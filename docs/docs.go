// Package docs registers the OpenAPI document served at /swagger. It is
// maintained by hand alongside the handler godoc annotations.
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
        "/events": {
            "get": {
                "description": "Returns the whole event log in sequence order.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List all events",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Event"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Appends an event organized by the caller to the event log.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Publish an event",
                "parameters": [
                    {"description": "Event fields", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateEventInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Event"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/events/count": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Count events",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CountResponse"}}
                }
            }
        },
        "/events/{index}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get an event by sequence number",
                "parameters": [
                    {"type": "integer", "description": "Zero-based sequence number", "name": "index", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Event"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/notifications": {
            "get": {
                "description": "Returns notifications with an ID greater than 'after', oldest first.",
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Read the notification log",
                "parameters": [
                    {"type": "integer", "description": "Last notification ID already seen", "name": "after", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Notification"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/notifications/stream": {
            "get": {
                "description": "Server-sent events for every committed notification, or only those involving 'identity'.",
                "produces": ["text/event-stream"],
                "tags": ["notifications"],
                "summary": "Stream notifications",
                "parameters": [
                    {"type": "string", "description": "Only notifications involving this identity", "name": "identity", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/profiles": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Registers a profile for the authenticated identity. Each identity can do this once.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profiles"],
                "summary": "Create the caller's profile",
                "parameters": [
                    {"description": "Profile fields", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateProfileInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Profile"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/profiles/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the authenticated identity's profile, or an empty profile if none exists.",
                "produces": ["application/json"],
                "tags": ["profiles"],
                "summary": "Get the caller's profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Profile"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/profiles/{identity}": {
            "get": {
                "description": "Returns the profile of an identity, or an empty profile if none exists. Authenticated viewers also get their relation to the owner.",
                "produces": ["application/json"],
                "tags": ["profiles"],
                "summary": "Get a profile",
                "parameters": [
                    {"type": "string", "description": "Owner identity", "name": "identity", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ProfileResponse"}}
                }
            }
        },
        "/profiles/{identity}/accept": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Accepts the pending request the identity in the path sent to the caller. Accepting an existing friendship again succeeds without changes.",
                "produces": ["application/json"],
                "tags": ["friendship"],
                "summary": "Accept a friend request",
                "parameters": [
                    {"type": "string", "description": "Requester identity", "name": "identity", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/profiles/{identity}/friends/count": {
            "get": {
                "description": "Returns the number of confirmed friendships. Unknown identities have zero.",
                "produces": ["application/json"],
                "tags": ["friendship"],
                "summary": "Get an identity's friend count",
                "parameters": [
                    {"type": "string", "description": "Identity", "name": "identity", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CountResponse"}}
                }
            }
        },
        "/profiles/{identity}/friendship/{other}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["friendship"],
                "summary": "Check whether two identities are friends",
                "parameters": [
                    {"type": "string", "description": "First identity", "name": "identity", "in": "path", "required": true},
                    {"type": "string", "description": "Second identity", "name": "other", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.FriendshipCheckResponse"}}
                }
            }
        },
        "/profiles/{identity}/relations": {
            "get": {
                "description": "Lists the friendship edges touching an identity, filtered by status and direction.",
                "produces": ["application/json"],
                "tags": ["friendship"],
                "summary": "Get an identity's relations",
                "parameters": [
                    {"type": "string", "description": "Identity", "name": "identity", "in": "path", "required": true},
                    {"type": "string", "description": "Filter by status (pending, accepted)", "name": "status", "in": "query"},
                    {"type": "string", "description": "Filter by direction (incoming, outgoing)", "name": "direction", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Friendship"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/profiles/{identity}/request": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Sends a friend request from the caller to the identity in the path. Both must have a profile.",
                "produces": ["application/json"],
                "tags": ["friendship"],
                "summary": "Send a friend request",
                "parameters": [
                    {"type": "string", "description": "Recipient identity", "name": "identity", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/state": {
            "get": {
                "description": "Returns every profile, friendship, event and notification in a stable order.",
                "produces": ["application/json"],
                "tags": ["state"],
                "summary": "Dump all registry state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/registry.State"}}
                }
            }
        }
    },
    "definitions": {
        "handler.CountResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer", "example": 3}
            }
        },
        "handler.CreateEventInput": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2026-11-20T18:00:00Z"},
                "description": {"type": "string", "example": "Bring a laptop"},
                "is_hackathon": {"type": "boolean", "example": true},
                "name": {"type": "string", "example": "Campus Hack Night"}
            }
        },
        "handler.CreateProfileInput": {
            "type": "object",
            "required": ["full_name"],
            "properties": {
                "about": {"type": "string", "example": "Likes analytical engines"},
                "full_name": {"type": "string", "example": "Ada Lovelace"},
                "ipfs_profile_picture": {"type": "string", "example": "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"},
                "tech_stack": {"type": "array", "items": {"type": "string"}, "example": ["go", "solidity"]},
                "title": {"type": "string", "example": "Student"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "An error message"}
            }
        },
        "handler.FriendshipCheckResponse": {
            "type": "object",
            "properties": {
                "a": {"type": "string", "example": "0xAlice"},
                "b": {"type": "string", "example": "0xBob"},
                "friends": {"type": "boolean", "example": true}
            }
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Friend request sent"}
            }
        },
        "handler.ProfileResponse": {
            "type": "object",
            "properties": {
                "about": {"type": "string"},
                "created_at": {"type": "string"},
                "friend_count": {"type": "integer"},
                "full_name": {"type": "string"},
                "ipfs_profile_picture": {"type": "string"},
                "owner": {"type": "string"},
                "relation_status": {"$ref": "#/definitions/models.FriendshipStatus"},
                "requested_by": {"type": "string"},
                "tech_stack": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"}
            }
        },
        "models.Event": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "is_hackathon": {"type": "boolean"},
                "name": {"type": "string"},
                "organizer": {"type": "string"},
                "seq": {"type": "integer"}
            }
        },
        "models.Friendship": {
            "type": "object",
            "properties": {
                "accepted_at": {"type": "string"},
                "created_at": {"type": "string"},
                "requester_id": {"type": "string"},
                "status": {"$ref": "#/definitions/models.FriendshipStatus"},
                "updated_at": {"type": "string"},
                "user_a": {"type": "string"},
                "user_b": {"type": "string"}
            }
        },
        "models.FriendshipStatus": {
            "type": "string",
            "enum": ["pending", "accepted"],
            "x-enum-varnames": ["StatusPending", "StatusAccepted"]
        },
        "models.Notification": {
            "type": "object",
            "properties": {
                "actor": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "payload": {"type": "object"},
                "subject": {"type": "string"},
                "type": {"type": "string"},
                "uid": {"type": "string"}
            }
        },
        "models.Profile": {
            "type": "object",
            "properties": {
                "about": {"type": "string"},
                "created_at": {"type": "string"},
                "friend_count": {"type": "integer"},
                "full_name": {"type": "string"},
                "ipfs_profile_picture": {"type": "string"},
                "owner": {"type": "string"},
                "tech_stack": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"}
            }
        },
        "registry.State": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/models.Event"}},
                "friendships": {"type": "array", "items": {"$ref": "#/definitions/models.Friendship"}},
                "notifications": {"type": "array", "items": {"$ref": "#/definitions/models.Notification"}},
                "profiles": {"type": "array", "items": {"$ref": "#/definitions/models.Profile"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "EduConnect API",
	Description:      "Profiles, friendships and events for the EduConnect network.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
