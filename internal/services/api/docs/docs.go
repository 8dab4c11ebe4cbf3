// Package docs holds the OpenAPI document for the airreviews API
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.1.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/dates/normalize": {
            "post": {
                "tags": ["Dates"],
                "summary": "Normalize a review date",
                "operationId": "datesNormalize",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.NormalizeRequest"}}}
                },
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.NormalizeResponse"}}}
                    },
                    "422": {
                        "description": "invalid date",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    }
                }
            }
        },
        "/meta/health": {
            "get": {
                "tags": ["Meta"],
                "summary": "Health check",
                "operationId": "metaHealth",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.HealthResponse"}}}
                    }
                }
            }
        },
        "/meta/lexicon": {
            "get": {
                "tags": ["Meta"],
                "summary": "Loaded lexicon provenance",
                "operationId": "metaLexicon",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.LexiconResponse"}}}
                    }
                }
            }
        },
        "/meta/version": {
            "get": {
                "tags": ["Meta"],
                "summary": "Build and version info",
                "operationId": "metaVersion",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/version.BuildInfo"}}}
                    }
                }
            }
        },
        "/reviews/clean": {
            "post": {
                "tags": ["Reviews"],
                "summary": "Clean one review",
                "operationId": "reviewsClean",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.Input"}}}
                },
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.CleanResponse"}}}
                    },
                    "422": {
                        "description": "invalid date",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    }
                }
            }
        },
        "/sentiment/score": {
            "post": {
                "tags": ["Sentiment"],
                "summary": "Score text against the lexicon",
                "operationId": "sentimentScore",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.ScoreRequest"}}}
                },
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/sentiment.Result"}}}
                    }
                }
            }
        }
    },
    "components": {
        "schemas": {
            "domain.Input": {
                "type": "object",
                "required": ["date"],
                "properties": {
                    "date": {"type": "string", "example": "11th November 2023"},
                    "title": {"type": "string", "example": "\"Comfortable and on time\""},
                    "body": {"type": "string", "example": "good seats and friendly crew"}
                }
            },
            "http.CleanResponse": {
                "type": "object",
                "properties": {
                    "date": {"type": "string", "example": "11th November 2023"},
                    "date_iso": {"type": "string", "example": "2023-11-11"},
                    "title": {"type": "string", "example": "Comfortable and on time"},
                    "body": {"type": "string", "example": "good seats and friendly crew"},
                    "sentiment": {"type": "integer", "example": 2},
                    "matched": {"type": "integer", "example": 2}
                }
            },
            "http.HealthResponse": {
                "type": "object",
                "properties": {
                    "ok": {"type": "boolean", "example": true},
                    "service": {"type": "string", "example": "airreviews-api"},
                    "started": {"type": "string", "example": "2025-09-03T13:00:00Z"},
                    "now": {"type": "string", "example": "2025-09-03T13:05:00Z"}
                }
            },
            "http.LexiconResponse": {
                "type": "object",
                "properties": {
                    "size": {"type": "integer", "example": 2477},
                    "source": {"type": "string", "example": "https://raw.githubusercontent.com/fnielsen/afinn/master/afinn/data/AFINN-111.txt"},
                    "loaded_at": {"type": "string", "example": "2025-09-03T13:00:00Z"},
                    "stats": {"$ref": "#/components/schemas/lexicon.Stats"}
                }
            },
            "http.NormalizeRequest": {
                "type": "object",
                "required": ["date"],
                "properties": {
                    "date": {"type": "string", "example": "1st Febuary 2024"}
                }
            },
            "http.NormalizeResponse": {
                "type": "object",
                "properties": {
                    "year": {"type": "integer", "example": 2024},
                    "month": {"type": "integer", "example": 2},
                    "day": {"type": "integer", "example": 1},
                    "iso": {"type": "string", "example": "2024-02-01"},
                    "ordinal": {"type": "string", "example": "1st February 2024"}
                }
            },
            "http.ScoreRequest": {
                "type": "object",
                "required": ["text"],
                "properties": {
                    "text": {"type": "string", "example": "good food bad seats good crew"}
                }
            },
            "lexicon.Stats": {
                "type": "object",
                "properties": {
                    "lines": {"type": "integer"},
                    "entries": {"type": "integer"},
                    "skipped": {"type": "integer"},
                    "duplicates": {"type": "integer"}
                }
            },
            "sentiment.Result": {
                "type": "object",
                "properties": {
                    "score": {"type": "integer", "example": 1},
                    "sum": {"type": "integer", "example": 3},
                    "matched": {"type": "integer", "example": 3},
                    "tokens": {"type": "array", "items": {"type": "string"}}
                }
            },
            "version.BuildInfo": {
                "type": "object",
                "properties": {
                    "service": {"type": "string"},
                    "version": {"type": "string"},
                    "commit": {"type": "string"},
                    "date": {"type": "string"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Title:            "airreviews API",
	Description:      "Clean airline reviews: date normalization, quote stripping and lexicon sentiment",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
