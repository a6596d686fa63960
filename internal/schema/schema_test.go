package schema

import (
	"errors"
	"reflect"
	"testing"
)

func testSchema() *Schema {
	return Object(
		String("title", "min=1"),
		Integer("count", "min=0"),
		StringList("tags", "min=1"),
	)
}

func TestParseRequiredReportsEveryMissingField(t *testing.T) {
	_, err := testSchema().Parse([]byte(`{}`))
	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected schema error, got %v", err)
	}
	want := []string{"count", "tags", "title"}
	if got := schemaErr.Paths(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected paths %v, got %v", want, got)
	}
}

func TestParseDropsUnknownFields(t *testing.T) {
	values, err := testSchema().Parse([]byte(`{"title":"a","count":0,"tags":["x"],"extra":true}`))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, ok := values["extra"]; ok {
		t.Fatal("expected unknown field to be dropped")
	}
	if len(values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(values))
	}
}

func TestParseTypeChecks(t *testing.T) {
	_, err := testSchema().Parse([]byte(`{"title":5,"count":"3","tags":"x"}`))
	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected schema error, got %v", err)
	}
	fields := schemaErr.Fields()
	if fields["title"] != "expected string, received number" {
		t.Fatalf("unexpected title message %q", fields["title"])
	}
	if fields["count"] != "expected integer, received string" {
		t.Fatalf("unexpected count message %q", fields["count"])
	}
	if fields["tags"] != "expected array of strings, received string" {
		t.Fatalf("unexpected tags message %q", fields["tags"])
	}
}

func TestParseIntegerAcceptsIntegralFloat(t *testing.T) {
	values, err := testSchema().Parse([]byte(`{"title":"a","count":2.0,"tags":["x"]}`))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if n, _ := values.Integer("count"); n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}

	_, err = testSchema().Parse([]byte(`{"title":"a","count":2.5,"tags":["x"]}`))
	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected schema error, got %v", err)
	}
	if got := schemaErr.Fields()["count"]; got != "expected integer, received non-integer number" {
		t.Fatalf("unexpected count message %q", got)
	}
}

func TestParseListElementTypes(t *testing.T) {
	_, err := testSchema().Parse([]byte(`{"title":"a","count":1,"tags":["x",2,null]}`))
	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected schema error, got %v", err)
	}
	want := []string{"tags[1]", "tags[2]"}
	if got := schemaErr.Paths(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected paths %v, got %v", want, got)
	}
}

func TestParseRejectsNonObject(t *testing.T) {
	for _, raw := range []string{`[]`, `"plan"`, `null`, `42`, ``, `{`} {
		if _, err := testSchema().Parse([]byte(raw)); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestPartialSharesRules(t *testing.T) {
	partial := testSchema().Partial()
	if !partial.Optional() {
		t.Fatal("expected partial schema to be optional")
	}

	values, err := partial.Parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(values) != 0 {
		t.Fatalf("expected no values, got %v", values)
	}

	_, err = partial.Parse([]byte(`{"count":-1,"tags":[]}`))
	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected schema error, got %v", err)
	}
	fields := schemaErr.Fields()
	if fields["count"] != "count must be greater than or equal to 0" {
		t.Fatalf("unexpected count message %q", fields["count"])
	}
	if fields["tags"] != "tags must contain at least 1 element(s)" {
		t.Fatalf("unexpected tags message %q", fields["tags"])
	}
	if _, ok := fields["title"]; ok {
		t.Fatal("expected absent optional field not to be reported")
	}
}

func TestPartialRejectsNull(t *testing.T) {
	_, err := testSchema().Partial().Parse([]byte(`{"title":null}`))
	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected schema error, got %v", err)
	}
	if got := schemaErr.Fields()["title"]; got != "expected string, received null" {
		t.Fatalf("unexpected title message %q", got)
	}
}

func TestParseRejectsInvalidUTF8(t *testing.T) {
	_, err := testSchema().Parse([]byte("{\"title\":\"\xff\",\"count\":1,\"tags\":[\"ok\",\"\xfe\"]}"))
	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected schema error, got %v", err)
	}
	fields := schemaErr.Fields()
	if fields["title"] != "expected valid UTF-8 string" {
		t.Fatalf("unexpected title message %q", fields["title"])
	}
	if fields["tags[1]"] != "expected valid UTF-8 string" {
		t.Fatalf("unexpected tags[1] message %q", fields["tags[1]"])
	}
}

func TestParseDuplicateKeysLastWins(t *testing.T) {
	values, err := testSchema().Parse([]byte(`{"title":"a","count":-1,"count":5,"tags":["x"]}`))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if n, _ := values.Integer("count"); n != 5 {
		t.Fatalf("expected count 5, got %d", n)
	}
}
