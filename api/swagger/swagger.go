package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Soran Institute API",
        "description": "Backup/sync receiver and query API for the institute",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerToken": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Static pre-shared token, sent as 'Bearer <token>'"
        }
    },
    "tags": [
        {"name": "Status", "description": "Service health and counts"},
        {"name": "Backup", "description": "Backup ingestion from the teacher system"},
        {"name": "Students", "description": "Student roster"},
        {"name": "Attendance", "description": "Attendance records"},
        {"name": "Reports", "description": "Joined attendance reporting"},
        {"name": "Sync", "description": "Backup audit log"},
        {"name": "Config", "description": "Client filter configuration"},
        {"name": "Admin", "description": "Destructive maintenance"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/status": {
            "get": {
                "tags": ["Status"],
                "security": [{"BearerToken": []}],
                "summary": "Service status and collection counts",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/backup": {
            "post": {
                "tags": ["Backup"],
                "security": [{"BearerToken": []}],
                "summary": "Merge a backup batch",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BackupBatch"}}
                ],
                "responses": {
                    "200": {"description": "Merged"},
                    "400": {"description": "Malformed batch", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/students": {
            "get": {
                "tags": ["Students"],
                "security": [{"BearerToken": []}],
                "summary": "List students",
                "parameters": [
                    {"name": "level", "in": "query", "type": "string"},
                    {"name": "group", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Students"],
                "security": [{"BearerToken": []}],
                "summary": "Register a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Duplicate student", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/students/{id}": {
            "get": {
                "tags": ["Students"],
                "security": [{"BearerToken": []}],
                "summary": "Student detail with joined statistics",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Unknown student", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/attendance": {
            "get": {
                "tags": ["Attendance"],
                "security": [{"BearerToken": []}],
                "summary": "List attendance records",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string"},
                    {"name": "studentId", "in": "query", "type": "string"},
                    {"name": "course", "in": "query", "type": "string"},
                    {"name": "fromDate", "in": "query", "type": "string"},
                    {"name": "toDate", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/reports/attendance": {
            "get": {
                "tags": ["Reports"],
                "security": [{"BearerToken": []}],
                "summary": "Joined attendance report",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string"},
                    {"name": "course", "in": "query", "type": "string"},
                    {"name": "level", "in": "query", "type": "string"},
                    {"name": "group", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/reports/attendance/export": {
            "get": {
                "tags": ["Reports"],
                "security": [{"BearerToken": []}],
                "summary": "Attendance report as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "date", "in": "query", "type": "string"},
                    {"name": "course", "in": "query", "type": "string"},
                    {"name": "level", "in": "query", "type": "string"},
                    {"name": "group", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File attachment"}
                }
            }
        },
        "/api/sync-history": {
            "get": {
                "tags": ["Sync"],
                "security": [{"BearerToken": []}],
                "summary": "Backup audit log, newest first",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/config": {
            "get": {
                "tags": ["Config"],
                "security": [{"BearerToken": []}],
                "summary": "Distinct filter values for clients",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/data/{type}": {
            "delete": {
                "tags": ["Admin"],
                "security": [{"BearerToken": []}],
                "summary": "Wipe a collection or all data",
                "parameters": [
                    {"name": "type", "in": "path", "required": true, "type": "string", "enum": ["attendance", "sync-history", "all"]},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/WipeRequest"}}
                ],
                "responses": {
                    "200": {"description": "Wiped"},
                    "403": {"description": "Wrong admin password", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "BackupBatch": {
            "type": "object",
            "properties": {
                "test": {"type": "boolean"},
                "source": {"type": "string"},
                "syncType": {"type": "string"},
                "backupDate": {"type": "string"},
                "students": {"type": "array", "items": {"type": "object"}},
                "attendance": {"type": "array", "items": {"type": "object"}}
            }
        },
        "CreateStudentRequest": {
            "type": "object",
            "required": ["name", "fatherName", "level", "group"],
            "properties": {
                "name": {"type": "string"},
                "fatherName": {"type": "string"},
                "level": {"type": "string"},
                "group": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "WipeRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {
                "password": {"type": "string"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "code": {"type": "string"}
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
