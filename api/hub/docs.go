// Package hub holds the generated Swagger specification for the CFO Hub
// authentication service. Regenerate with `swag init` after changing
// handler annotations.
package hub

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "CFO Hub Team"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/livez": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check Endpoint",
                "responses": {
                    "200": {
                        "description": "status, uptime, version",
                        "schema": {"$ref": "#/definitions/hubsdk.HealthResponse"}
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check Endpoint",
                "responses": {
                    "200": {
                        "description": "status, uptime, version, checks",
                        "schema": {"$ref": "#/definitions/hubsdk.HealthResponse"}
                    },
                    "503": {
                        "description": "service not ready",
                        "schema": {"$ref": "#/definitions/hubsdk.HealthResponse"}
                    }
                }
            }
        },
        "/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/hubsdk.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "token pair",
                        "schema": {"$ref": "#/definitions/hubsdk.TokenResponse"}
                    },
                    "401": {
                        "description": "invalid credentials",
                        "schema": {"$ref": "#/definitions/hubsdk.ErrorResponse"}
                    },
                    "403": {
                        "description": "account inactive",
                        "schema": {"$ref": "#/definitions/hubsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/auth/refresh": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Refresh token pair",
                "parameters": [
                    {
                        "description": "Refresh token",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/hubsdk.RefreshRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "token pair",
                        "schema": {"$ref": "#/definitions/hubsdk.TokenResponse"}
                    },
                    "401": {
                        "description": "invalid or consumed token",
                        "schema": {"$ref": "#/definitions/hubsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Logout",
                "parameters": [
                    {
                        "description": "Refresh token to revoke",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/hubsdk.LogoutRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "message",
                        "schema": {"$ref": "#/definitions/hubsdk.MessageResponse"}
                    }
                }
            }
        },
        "/v1/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register",
                "parameters": [
                    {
                        "description": "New account",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/hubsdk.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "created profile",
                        "schema": {"$ref": "#/definitions/hubsdk.UserProfile"}
                    },
                    "400": {
                        "description": "validation failure",
                        "schema": {"$ref": "#/definitions/hubsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/auth/change-password": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Change password",
                "parameters": [
                    {
                        "description": "Current and new passwords",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/hubsdk.ChangePasswordRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "message",
                        "schema": {"$ref": "#/definitions/hubsdk.MessageResponse"}
                    },
                    "400": {
                        "description": "validation failure",
                        "schema": {"$ref": "#/definitions/hubsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Current user profile",
                "responses": {
                    "200": {
                        "description": "profile",
                        "schema": {"$ref": "#/definitions/hubsdk.UserProfile"}
                    }
                }
            }
        },
        "/v1/permissions/{role}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Permissions"],
                "summary": "Role permissions",
                "parameters": [
                    {"type": "string", "name": "role", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "role, features",
                        "schema": {"$ref": "#/definitions/hubsdk.RolePermissionsResponse"}
                    }
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Permissions"],
                "summary": "Update role permissions",
                "parameters": [
                    {"type": "string", "name": "role", "in": "path", "required": true},
                    {
                        "description": "Feature flags",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/hubsdk.UpdatePermissionsRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "role, features",
                        "schema": {"$ref": "#/definitions/hubsdk.RolePermissionsResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "hubsdk.ChangePasswordRequest": {
            "type": "object",
            "properties": {
                "senha_atual": {"type": "string"},
                "senha_nova": {"type": "string"}
            }
        },
        "hubsdk.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "hubsdk.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"},
                "checks": {"type": "object"}
            }
        },
        "hubsdk.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "senha": {"type": "string"}
            }
        },
        "hubsdk.LogoutRequest": {
            "type": "object",
            "properties": {
                "refresh_token": {"type": "string"}
            }
        },
        "hubsdk.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "hubsdk.RefreshRequest": {
            "type": "object",
            "properties": {
                "refresh_token": {"type": "string"}
            }
        },
        "hubsdk.RegisterRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "nome": {"type": "string"},
                "senha": {"type": "string"},
                "role": {"type": "string"},
                "tipo": {"type": "string"},
                "cargo": {"type": "string"},
                "setor": {"type": "string"},
                "telefone": {"type": "string"}
            }
        },
        "hubsdk.RolePermissionsResponse": {
            "type": "object",
            "properties": {
                "role": {"type": "string"},
                "features": {
                    "type": "object",
                    "additionalProperties": {"type": "boolean"}
                }
            }
        },
        "hubsdk.TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "refresh_token": {"type": "string"},
                "token_type": {"type": "string"},
                "access_expires_in": {"type": "integer"},
                "refresh_expires_in": {"type": "integer"}
            }
        },
        "hubsdk.UpdatePermissionsRequest": {
            "type": "object",
            "properties": {
                "features": {
                    "type": "object",
                    "additionalProperties": {"type": "boolean"}
                }
            }
        },
        "hubsdk.UserProfile": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "nome": {"type": "string"},
                "role": {"type": "string"},
                "tipo": {"type": "string"},
                "cargo": {"type": "string"},
                "setor": {"type": "string"},
                "telefone": {"type": "string"},
                "ativo": {"type": "boolean"},
                "primeiro_acesso": {"type": "boolean"},
                "ultimo_login": {"type": "string"},
                "created_at": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT access token. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "CFO Hub Authentication Service API",
	Description:      "Authentication and session management for the CFO Hub business platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
