// Package docs holds the swagger document served at /swagger/doc.json.
// Keep it in step with the handler annotations in httpserver.
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
        "/api/v1/movies": {
            "get": {
                "description": "First page of the catalog, most reviewed first",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List Movies",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.MoviesResponse"}}
                }
            }
        },
        "/api/v1/movies/search": {
            "get": {
                "description": "Filter movies by text, cast or genre. Only one filter is honored, in that priority.\ntotal_results is only computed for page 0 and is 0 otherwise.",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Search Movies",
                "parameters": [
                    {"type": "string", "description": "Full-text search", "name": "text", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Cast members", "name": "cast", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Genres", "name": "genre", "in": "query"},
                    {"maximum": 100000, "minimum": 0, "type": "integer", "description": "Zero-based page", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.SearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/v1/movies/countries": {
            "get": {
                "description": "Titles and ids of movies from any of the given countries",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Movies By Country",
                "parameters": [
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Countries", "name": "countries", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.CountriesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/v1/movies/facet-search": {
            "get": {
                "description": "Movies featuring any of the cast members with runtime and critic score histograms.\nWithout cast this behaves like /search.",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Faceted Search",
                "parameters": [
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Cast members", "name": "cast", "in": "query"},
                    {"maximum": 100000, "minimum": 0, "type": "integer", "description": "Zero-based page", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.FacetedSearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/v1/movies/id/{id}": {
            "get": {
                "description": "A movie with its comments, newest first",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Get Movie",
                "parameters": [
                    {"type": "string", "description": "Movie id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.MovieResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/healthcheck": {
            "get": {
                "description": "Check if server is alive",
                "tags": ["health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Check that the movie catalog database is reachable",
                "tags": ["health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "httpserver.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "httpserver.MoviesResponse": {
            "type": "object",
            "properties": {
                "movies": {"type": "array", "items": {"$ref": "#/definitions/movie.Movie"}},
                "page": {"type": "integer"},
                "filters": {"type": "object"},
                "entriesPerPage": {"type": "integer"},
                "totalResults": {"type": "integer"}
            }
        },
        "httpserver.SearchResponse": {
            "type": "object",
            "properties": {
                "movies": {"type": "array", "items": {"$ref": "#/definitions/movie.Movie"}},
                "page": {"type": "integer"},
                "filters": {"type": "object"},
                "entries_per_page": {"type": "integer"},
                "total_results": {"type": "integer"}
            }
        },
        "httpserver.FacetedSearchResponse": {
            "type": "object",
            "properties": {
                "movies": {"type": "array", "items": {"$ref": "#/definitions/movie.Movie"}},
                "facets": {"$ref": "#/definitions/httpserver.Facets"},
                "page": {"type": "integer"},
                "filters": {"type": "object"},
                "entries_per_page": {"type": "integer"},
                "total_results": {"type": "integer"}
            }
        },
        "httpserver.Facets": {
            "type": "object",
            "properties": {
                "runtime": {"type": "array", "items": {"$ref": "#/definitions/movie.Bucket"}},
                "rating": {"type": "array", "items": {"$ref": "#/definitions/movie.Bucket"}}
            }
        },
        "httpserver.CountriesResponse": {
            "type": "object",
            "properties": {
                "titles": {"type": "array", "items": {"$ref": "#/definitions/movie.CountryTitle"}}
            }
        },
        "httpserver.MovieResponse": {
            "type": "object",
            "properties": {
                "movie": {"$ref": "#/definitions/movie.MovieDetail"},
                "updatedType": {"type": "string"}
            }
        },
        "movie.Bucket": {
            "type": "object",
            "properties": {"_id": {}, "count": {"type": "integer"}}
        },
        "movie.CountryTitle": {
            "type": "object",
            "properties": {"_id": {"type": "string"}, "title": {"type": "string"}}
        },
        "movie.Comment": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "movie_id": {"type": "string"},
                "text": {"type": "string"},
                "date": {"type": "string"}
            }
        },
        "movie.Movie": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "title": {"type": "string"},
                "year": {},
                "runtime": {"type": "integer"},
                "released": {"type": "string"},
                "plot": {"type": "string"},
                "fullplot": {"type": "string"},
                "poster": {"type": "string"},
                "rated": {"type": "string"},
                "type": {"type": "string"},
                "cast": {"type": "array", "items": {"type": "string"}},
                "genres": {"type": "array", "items": {"type": "string"}},
                "countries": {"type": "array", "items": {"type": "string"}},
                "directors": {"type": "array", "items": {"type": "string"}},
                "writers": {"type": "array", "items": {"type": "string"}},
                "languages": {"type": "array", "items": {"type": "string"}},
                "metacritic": {"type": "integer"},
                "num_mflix_comments": {"type": "integer"},
                "lastupdated": {},
                "score": {"type": "number"}
            }
        },
        "movie.MovieDetail": {
            "allOf": [
                {"$ref": "#/definitions/movie.Movie"},
                {"type": "object", "properties": {"comments": {"type": "array", "items": {"$ref": "#/definitions/movie.Comment"}}}}
            ]
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "mflix API",
	Description:      "Read-only movie catalog backed by MongoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
