package openapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
)

func loadEvents(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "events.yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

func TestImport(t *testing.T) {
	def, err := openapi.Import(context.Background(), loadEvents(t), "createEvent")
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	want := layout.Grid{
		{{InternalName: "createEvent", Label: "Create event", Type: layout.FieldTypeHeader}},
		{{InternalName: "attendees", Label: "Attendees", Type: layout.FieldTypeNumber}},
		{
			{InternalName: "first_name", Label: "First Name", Type: layout.FieldTypeSingleLineText},
			{InternalName: "last_name", Label: "Last Name", Type: layout.FieldTypeSingleLineText},
			{InternalName: "middle_name", Label: "Middle Name", Type: layout.FieldTypeSingleLineText},
		},
		{{InternalName: "nickname", Label: "Nickname", Type: layout.FieldTypeSingleLineText}},
		{{InternalName: "notes", Label: "Notes", Type: layout.FieldTypeMultiLineText}},
		{{InternalName: "remote", Label: "Remote", Type: layout.FieldTypeBooleanCheckbox}},
		{{InternalName: "starts_on", Label: "Starts On", Type: layout.FieldTypeDate}},
		{{
			InternalName: "tags",
			Label:        "Tags",
			Type:         layout.FieldTypeCheckboxes,
			Options:      []layout.Option{{Value: "music", Text: "Music"}, {Value: "talks", Text: "Talks"}},
		}},
		{{
			InternalName: "visibility",
			Label:        "Who can see it",
			Type:         layout.FieldTypeDropdown,
			Options:      []layout.Option{{Value: "public", Text: "Public"}, {Value: "private", Text: "Private"}},
			Preselected:  "private",
		}},
	}
	if diff := cmp.Diff(want, def.Grid()); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
	if def.Title != "Create event" {
		t.Fatalf("title = %q", def.Title)
	}
}

func TestImport_OptionsAndFallbacks(t *testing.T) {
	data := loadEvents(t)

	def, err := openapi.Import(context.Background(), data, "put:/events/{id}/notes",
		openapi.WithoutHeader(),
		openapi.WithLabeler(func(name string) string { return "<" + name + ">" }),
	)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	want := layout.Grid{{{InternalName: "body", Label: "<body>", Type: layout.FieldTypeMultiLineText}}}
	if diff := cmp.Diff(want, def.Grid()); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}

	if _, err := openapi.Import(context.Background(), data, "deleteEvent"); !errors.Is(err, openapi.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
	if _, err := openapi.Import(context.Background(), data, "listEvents"); !errors.Is(err, openapi.ErrNoRequestBody) {
		t.Fatalf("expected ErrNoRequestBody, got %v", err)
	}
	if _, err := openapi.Import(context.Background(), []byte("{not yaml"), "x"); err == nil {
		t.Fatalf("expected load error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := openapi.Import(ctx, data, "createEvent"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOperations(t *testing.T) {
	ops, err := openapi.Operations(context.Background(), loadEvents(t))
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	var ids []string
	for _, op := range ops {
		ids = append(ids, op.ID)
	}
	if diff := cmp.Diff([]string{"createEvent", "listEvents", "put:/events/{id}/notes"}, ids); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
	if ops[0].Method != "POST" || ops[0].Path != "/events" {
		t.Fatalf("unexpected operation %+v", ops[0])
	}
}

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"first_name": "First Name",
		"startsOn":   "Starts On",
		"address2":   "Address 2",
		"event-id":   "Event Id",
		"URL":        "Url",
		"":           "",
	}
	for in, want := range cases {
		if got := openapi.DefaultLabeler(in); got != want {
			t.Fatalf("DefaultLabeler(%q) = %q want %q", in, got, want)
		}
	}
}

func TestFetch(t *testing.T) {
	data := loadEvents(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openapi.yaml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	ctx := context.Background()
	if _, err := openapi.Fetch(ctx, srv.URL+"/openapi.yaml"); !errors.Is(err, openapi.ErrHTTPDisabled) {
		t.Fatalf("expected ErrHTTPDisabled, got %v", err)
	}

	got, err := openapi.Fetch(ctx, srv.URL+"/openapi.yaml", openapi.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("fetched payload differs")
	}

	if _, err := openapi.Fetch(ctx, srv.URL+"/missing", openapi.WithHTTPFallback(0)); err == nil {
		t.Fatalf("expected status error")
	}

	local, err := openapi.Fetch(ctx, filepath.Join("testdata", "events.yaml"))
	if err != nil || len(local) == 0 {
		t.Fatalf("local fetch: %v", err)
	}
}
