package openapi

import (
	"encoding/json"
	"testing"
)

func testRoutes() []Route {
	return []Route{
		{
			Method: "GET", Path: "/api/v1/sessions/:id/records", Name: "listRecords",
			Params: []Param{
				{Name: "id", In: "path", Type: "string"},
				{Name: "warehouse", In: "query", Type: "string"},
			},
			Response: []Field{
				{Name: "records", Type: "array", Depth: 1},
				{Name: "product_code", Type: "string", Depth: 2},
				{Name: "quantity", Type: "number", Depth: 2},
				{Name: "total", Type: "integer", Depth: 1},
			},
		},
		{
			Method: "PATCH", Path: "/api/v1/sessions/:id/records/:position", Name: "updateRecord",
			BodyType: "application/json",
			Body: []Field{
				{Name: "quantity", Type: "number", Depth: 1},
			},
		},
		{
			Method: "DELETE", Path: "/api/v1/sessions/:id", Name: "deleteSession", Status: 204,
		},
		{
			Method: "GET", Path: "/api/v1/sessions/:id/export", Name: "exportSession",
			ContentType: "application/octet-stream",
		},
	}
}

func TestBuild(t *testing.T) {
	spec := Build("Stock Organizer API", "1.0.0", testRoutes())

	if spec.OpenAPI != "3.0.0" || spec.Info.Title != "Stock Organizer API" {
		t.Fatalf("unexpected header: %+v", spec.Info)
	}

	want := []string{
		"/api/v1/sessions/{id}",
		"/api/v1/sessions/{id}/export",
		"/api/v1/sessions/{id}/records",
		"/api/v1/sessions/{id}/records/{position}",
	}
	got := spec.SortedPaths()
	if len(got) != len(want) {
		t.Fatalf("paths: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path %d: got %s, want %s", i, got[i], want[i])
		}
	}

	list := spec.Paths["/api/v1/sessions/{id}/records"]["get"]
	if len(list.Parameters) != 2 || !list.Parameters[0].Required || list.Parameters[1].Required {
		t.Errorf("unexpected parameters: %+v", list.Parameters)
	}

	if _, ok := spec.Paths["/api/v1/sessions/{id}"]["delete"].Responses["204"]; !ok {
		t.Error("delete should document a 204 response")
	}

	patch := spec.Paths["/api/v1/sessions/{id}/records/{position}"]["patch"]
	if patch.RequestBody == nil {
		t.Fatal("patch should carry a request body")
	}
}

func TestNestedSchema(t *testing.T) {
	spec := Build("t", "1", testRoutes())
	resp := spec.Paths["/api/v1/sessions/{id}/records"]["get"].Responses["200"]
	schema := resp.Content["application/json"].Schema.(map[string]interface{})

	props := schema["properties"].(map[string]interface{})
	records := props["records"].(map[string]interface{})
	if records["type"] != "array" {
		t.Fatalf("records should be an array: %v", records)
	}
	items := records["items"].(map[string]interface{})
	itemProps := items["properties"].(map[string]interface{})
	if _, ok := itemProps["product_code"]; !ok {
		t.Error("array items should carry nested fields")
	}
	if qty := itemProps["quantity"].(map[string]interface{}); qty["type"] != "number" {
		t.Errorf("quantity type: %v", qty["type"])
	}
	if _, ok := props["total"]; !ok {
		t.Error("depth 1 field after nested fields should attach to root")
	}

	// Must be serializable
	if _, err := json.Marshal(spec); err != nil {
		t.Fatal(err)
	}
}

func TestToOpenAPIPath(t *testing.T) {
	tests := map[string]string{
		"":                 "",
		"health":           "/health",
		"/a/:id/b/:pos":    "/a/{id}/b/{pos}",
		"/files/*filepath": "/files/{filepath}",
	}
	for in, want := range tests {
		if got := ToOpenAPIPath(in); got != want {
			t.Errorf("ToOpenAPIPath(%q) = %q, want %q", in, got, want)
		}
	}
}
