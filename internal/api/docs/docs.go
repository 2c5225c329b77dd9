// Package docs holds the Swagger 2.0 document served at /swagger, in the
// layout swag init emits from the handler annotations. Regenerate it with
// go generate ./internal/api after changing an annotation; the api tests fail
// when a route and its documented operation drift apart.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "hydrasrv",
            "url": "https://github.com/jroosing/hydrasrv"
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
        "/channel/{method}": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Dispatches a method call to the resolver. Only resolveSrv is implemented.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "resolution"
                ],
                "summary": "Method channel call",
                "parameters": [
                    {
                        "type": "string",
                        "example": "resolveSrv",
                        "description": "Method name",
                        "name": "method",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Arguments",
                        "name": "body",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/models.MethodCallRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.SrvRecordResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "501": {
                        "description": "Not Implemented",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/config": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Returns the current server configuration (api key redacted)",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "config"
                ],
                "summary": "Get current configuration",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.ConfigResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns server health status",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.StatusResponse"
                        }
                    }
                }
            }
        },
        "/srv": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Resolves SRV records for a service name. Failures yield an empty list.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "resolution"
                ],
                "summary": "SRV lookup",
                "parameters": [
                    {
                        "type": "string",
                        "example": "_sip._tcp.example.com",
                        "description": "Service name",
                        "name": "name",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SrvLookupResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/stats": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Returns runtime statistics, SRV lookup counters and host/process info",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Server statistics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.ServerStatsResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "config.LoggingConfig": {
            "type": "object",
            "properties": {
                "extra_fields": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "include_pid": {
                    "type": "boolean"
                },
                "level": {
                    "type": "string"
                },
                "structured": {
                    "type": "boolean"
                },
                "structured_format": {
                    "type": "string"
                }
            }
        },
        "config.ResolverConfig": {
            "type": "object",
            "properties": {
                "resolv_conf": {
                    "type": "string"
                },
                "server": {
                    "type": "string"
                },
                "timeout": {
                    "type": "string"
                },
                "transport": {
                    "type": "string"
                }
            }
        },
        "models.APIConfigResponse": {
            "type": "object",
            "properties": {
                "auth_enabled": {
                    "type": "boolean"
                },
                "enabled": {
                    "type": "boolean"
                },
                "host": {
                    "type": "string"
                },
                "port": {
                    "type": "integer"
                }
            }
        },
        "models.ConfigResponse": {
            "type": "object",
            "properties": {
                "api": {
                    "$ref": "#/definitions/models.APIConfigResponse"
                },
                "logging": {
                    "$ref": "#/definitions/config.LoggingConfig"
                },
                "resolver": {
                    "$ref": "#/definitions/config.ResolverConfig"
                }
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "models.HostInfoResponse": {
            "type": "object",
            "properties": {
                "hostname": {
                    "type": "string"
                },
                "kernel_version": {
                    "type": "string"
                },
                "os": {
                    "type": "string"
                },
                "platform": {
                    "type": "string"
                },
                "platform_version": {
                    "type": "string"
                },
                "uptime_seconds": {
                    "type": "integer"
                }
            }
        },
        "models.LookupStatsResponse": {
            "type": "object",
            "properties": {
                "avg_latency_ms": {
                    "type": "number"
                },
                "completed": {
                    "type": "integer"
                },
                "empty_input": {
                    "type": "integer"
                },
                "lookups_total": {
                    "type": "integer"
                },
                "malformed": {
                    "type": "integer"
                },
                "records_total": {
                    "type": "integer"
                },
                "timeouts": {
                    "type": "integer"
                },
                "transport": {
                    "type": "string"
                },
                "transport_errors": {
                    "type": "integer"
                },
                "unsupported": {
                    "type": "integer"
                }
            }
        },
        "models.MethodCallRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "_sip._tcp.example.com"
                }
            }
        },
        "models.ProcessInfoResponse": {
            "type": "object",
            "properties": {
                "cpu_percent": {
                    "type": "number"
                },
                "num_threads": {
                    "type": "integer"
                },
                "pid": {
                    "type": "integer"
                },
                "rss_mb": {
                    "type": "number"
                }
            }
        },
        "models.ServerStatsResponse": {
            "type": "object",
            "properties": {
                "goroutines": {
                    "type": "integer"
                },
                "host": {
                    "$ref": "#/definitions/models.HostInfoResponse"
                },
                "lookups": {
                    "$ref": "#/definitions/models.LookupStatsResponse"
                },
                "memory_alloc_mb": {
                    "type": "number"
                },
                "num_cpu": {
                    "type": "integer"
                },
                "process": {
                    "$ref": "#/definitions/models.ProcessInfoResponse"
                },
                "start_time": {
                    "type": "string"
                },
                "uptime": {
                    "type": "string"
                },
                "uptime_seconds": {
                    "type": "integer"
                }
            }
        },
        "models.SrvLookupResponse": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "records": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.SrvRecordResponse"
                    }
                },
                "transport": {
                    "type": "string"
                }
            }
        },
        "models.SrvRecordResponse": {
            "type": "object",
            "properties": {
                "host": {
                    "type": "string"
                },
                "port": {
                    "type": "integer"
                },
                "priority": {
                    "type": "integer"
                },
                "weight": {
                    "type": "integer"
                }
            }
        },
        "models.StatusResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
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
	Title:            "hydrasrv API",
	Description:      "SRV record resolution over HTTP.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
