package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stock-organizer/internal/openapi"
)

type route struct {
	openapi.Route
	handler gin.HandlerFunc
}

var recordFields = []openapi.Field{
	{Name: "warehouse", Type: "string", Depth: 2},
	{Name: "product_code", Type: "string", Depth: 2},
	{Name: "product_name", Type: "string", Depth: 2},
	{Name: "size", Type: "string", Depth: 2},
	{Name: "quantity", Type: "number", Depth: 2, Description: "number, or text when not numeric"},
}

func withRecords(head ...openapi.Field) []openapi.Field {
	fields := append([]openapi.Field{}, head...)
	fields = append(fields, openapi.Field{Name: "records", Type: "array", Depth: 1})
	return append(fields, recordFields...)
}

func (s *Server) routes() []route {
	idParam := openapi.Param{Name: "id", In: "path", Type: "string", Description: "session id"}
	whParam := openapi.Param{Name: "warehouse", In: "query", Type: "string", Description: "warehouse filter, empty for all"}

	return []route{
		{
			Route: openapi.Route{
				Method: http.MethodGet, Path: "/health", Name: "health",
				Response: []openapi.Field{
					{Name: "status", Type: "string", Depth: 1},
					{Name: "sessions", Type: "integer", Depth: 1},
				},
			},
			handler: s.health,
		},
		{
			Route: openapi.Route{
				Method: http.MethodGet, Path: "/api/v1/openapi.json", Name: "openapi",
				Summary: "This document",
			},
			handler: s.openAPI,
		},
		{
			Route: openapi.Route{
				Method: http.MethodPost, Path: "/api/v1/sessions", Name: "createSession",
				Summary:  "Upload an inventory workbook and organize it",
				BodyType: "multipart/form-data",
				Body:     []openapi.Field{{Name: "file", Type: "string", Depth: 1, Description: "xlsx or csv"}},
				Status:   http.StatusCreated,
				Response: withRecords(
					openapi.Field{Name: "id", Type: "string", Depth: 1},
					openapi.Field{Name: "source", Type: "string", Depth: 1},
					openapi.Field{Name: "warehouses", Type: "array", Depth: 1},
				),
			},
			handler: s.createSession,
		},
		{
			Route: openapi.Route{
				Method: http.MethodGet, Path: "/api/v1/sessions/:id/records", Name: "listRecords",
				Params: []openapi.Param{idParam, whParam},
				Response: withRecords(
					openapi.Field{Name: "warehouse", Type: "string", Depth: 1},
					openapi.Field{Name: "total", Type: "integer", Depth: 1},
				),
			},
			handler: s.listRecords,
		},
		{
			Route: openapi.Route{
				Method: http.MethodGet, Path: "/api/v1/sessions/:id/warehouses", Name: "listWarehouses",
				Params:   []openapi.Param{idParam},
				Response: []openapi.Field{{Name: "warehouses", Type: "array", Depth: 1}},
			},
			handler: s.listWarehouses,
		},
		{
			Route: openapi.Route{
				Method: http.MethodPatch, Path: "/api/v1/sessions/:id/records/:position", Name: "updateRecord",
				Summary: "Edit code, name or quantity of one record",
				Params: []openapi.Param{
					idParam,
					{Name: "position", In: "path", Type: "integer", Description: "0-based index within the warehouse subset"},
					whParam,
				},
				BodyType: "application/json",
				Body: []openapi.Field{
					{Name: "code", Type: "string", Depth: 1},
					{Name: "name", Type: "string", Depth: 1},
					{Name: "quantity", Type: "number", Depth: 1},
				},
				Response: []openapi.Field{
					{Name: "record", Type: "object", Depth: 1},
					{Name: "warnings", Type: "array", Depth: 1},
					{Name: "field", Type: "string", Depth: 2},
					{Name: "value", Type: "string", Depth: 2},
					{Name: "message", Type: "string", Depth: 2},
					{Name: "position", Type: "integer", Depth: 2},
				},
			},
			handler: s.updateRecord,
		},
		{
			Route: openapi.Route{
				Method: http.MethodGet, Path: "/api/v1/sessions/:id/export", Name: "exportSession",
				Summary: "Download the organized records",
				Params: []openapi.Param{
					idParam,
					{Name: "format", In: "query", Type: "string", Description: "xlsx (default), html, docx, json or csv"},
				},
				ContentType: "application/octet-stream",
			},
			handler: s.exportSession,
		},
		{
			Route: openapi.Route{
				Method: http.MethodDelete, Path: "/api/v1/sessions/:id", Name: "deleteSession",
				Params: []openapi.Param{idParam},
				Status: http.StatusNoContent,
			},
			handler: s.deleteSession,
		},
	}
}
