// Package docs Cities in Motion API.
//
// Сервис данных дашборда доступности такси в Сингапуре: снимки количества
// такси по регионам, геометрия регионов и сравнение двух дат для хороплет.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "description": "Состояние сервиса и сводка по загруженным данным",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/counts": {
            "get": {
                "description": "Все снимки за день [date, date+1) и значение по каждому региону. День без данных - пустой результат.",
                "produces": ["application/json"],
                "tags": ["Counts"],
                "summary": "Количество такси за календарный день",
                "parameters": [
                    {"type": "string", "example": "2020-04-01", "description": "Дата в формате YYYY-MM-DD", "name": "date", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/counts/window": {
            "get": {
                "description": "Период \"начиная с даты и времени, на следующие N единиц\"",
                "produces": ["application/json"],
                "tags": ["Counts"],
                "summary": "Количество такси за период",
                "parameters": [
                    {"type": "string", "description": "Дата начала (YYYY-MM-DD)", "name": "date", "in": "query", "required": true},
                    {"type": "string", "default": "00:00", "description": "Время суток (HH:MM)", "name": "time", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Количество единиц", "name": "duration", "in": "query"},
                    {"type": "string", "default": "Hour", "description": "Hour, Days, Weeks, Months, Years, Mondays..Sundays", "name": "unit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/regions": {
            "get": {
                "description": "Таблица геометрии регионов как GeoJSON FeatureCollection",
                "produces": ["application/geo+json"],
                "tags": ["Regions"],
                "summary": "Все регионы",
                "responses": {
                    "200": {"description": "FeatureCollection", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/regions/{name}": {
            "get": {
                "description": "Feature региона по точному имени",
                "produces": ["application/geo+json"],
                "tags": ["Regions"],
                "summary": "Регион по имени",
                "parameters": [
                    {"type": "string", "description": "Имя региона", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Feature", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/comparison": {
            "get": {
                "description": "Две хороплеты и сводка по острову. Дата без данных дает сторону с empty=true.",
                "produces": ["application/json"],
                "tags": ["Comparison"],
                "summary": "Сравнение базовой даты и даты анализа",
                "parameters": [
                    {"type": "string", "description": "Базовая дата (YYYY-MM-DD)", "name": "baseline", "in": "query", "required": true},
                    {"type": "string", "description": "Дата анализа (YYYY-MM-DD)", "name": "analysis", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/dashboard/defaults": {
            "get": {
                "description": "Значения по умолчанию для элементов управления дашборда",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Значения по умолчанию для дашборда",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true},
                "message": {"type": "string"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "empty": {"type": "boolean"},
                "time_ms": {"type": "number"},
                "total": {"type": "integer"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/utils.Meta"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Cities in Motion API",
	Description:      "Сервис данных дашборда доступности такси в Сингапуре.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
