// Package schema validates untrusted JSON objects against a declared set of
// typed fields. A schema is declared once and can derive an all-optional
// variant that shares the same per-field predicates.
package schema

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindStringList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindStringList:
		return "array of strings"
	default:
		return "unknown"
	}
}

// Field declares a named member of an object. Rule is a validator tag applied
// to the decoded value once its type has been checked, e.g. "min=1".
type Field struct {
	Name string
	Kind Kind
	Rule string
}

func String(name, rule string) Field {
	return Field{Name: name, Kind: KindString, Rule: rule}
}

func Integer(name, rule string) Field {
	return Field{Name: name, Kind: KindInteger, Rule: rule}
}

func StringList(name, rule string) Field {
	return Field{Name: name, Kind: KindStringList, Rule: rule}
}

type Schema struct {
	fields   []Field
	optional bool
	validate *validator.Validate
}

// Object builds a schema whose fields are all required.
func Object(fields ...Field) *Schema {
	return &Schema{
		fields:   append([]Field(nil), fields...),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Partial derives a schema with the same fields and rules, all optional.
func (s *Schema) Partial() *Schema {
	return &Schema{fields: s.fields, optional: true, validate: s.validate}
}

func (s *Schema) Optional() bool {
	return s.optional
}

func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Values holds the decoded fields of a successful parse. Strings decode to
// string, integers to int64 and string lists to []string. Absent optional
// fields have no entry.
type Values map[string]any

func (v Values) String(name string) (string, bool) {
	value, ok := v[name].(string)
	return value, ok
}

func (v Values) Integer(name string) (int64, bool) {
	value, ok := v[name].(int64)
	return value, ok
}

func (v Values) StringList(name string) ([]string, bool) {
	value, ok := v[name].([]string)
	return value, ok
}

// Parse validates raw JSON. Fields that are not declared are dropped.
func (s *Schema) Parse(raw []byte) (Values, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &Error{Issues: []Issue{{Path: "", Message: "body must be valid JSON"}}}
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, &Error{Issues: []Issue{{Path: "", Message: "expected object, received " + describe(doc)}}}
	}
	// Later duplicates replace earlier ones, matching encoding/json.
	members := make(map[string]gjson.Result)
	doc.ForEach(func(key, value gjson.Result) bool {
		members[key.String()] = value
		return true
	})

	values := make(Values, len(s.fields))
	var issues []Issue
	for _, field := range s.fields {
		member, ok := members[field.Name]
		if !ok {
			if !s.optional {
				issues = append(issues, Issue{Path: field.Name, Message: field.Name + " is required"})
			}
			continue
		}
		value, fieldIssues := s.decode(field, member)
		if len(fieldIssues) > 0 {
			issues = append(issues, fieldIssues...)
			continue
		}
		values[field.Name] = value
	}
	if len(issues) > 0 {
		return nil, &Error{Issues: issues}
	}
	return values, nil
}

func (s *Schema) decode(field Field, member gjson.Result) (any, []Issue) {
	var value any
	switch field.Kind {
	case KindString:
		if member.Type != gjson.String {
			return nil, []Issue{typeIssue(field, member)}
		}
		if !utf8.ValidString(member.String()) {
			return nil, []Issue{{Path: field.Name, Message: "expected valid UTF-8 string"}}
		}
		value = member.String()
	case KindInteger:
		n, ok := integer(member)
		if !ok {
			return nil, []Issue{typeIssue(field, member)}
		}
		value = n
	case KindStringList:
		if !member.IsArray() {
			return nil, []Issue{typeIssue(field, member)}
		}
		elements := member.Array()
		items := make([]string, 0, len(elements))
		var issues []Issue
		for i, element := range elements {
			if element.Type != gjson.String {
				issues = append(issues, Issue{
					Path:    fmt.Sprintf("%s[%d]", field.Name, i),
					Message: "expected string, received " + describe(element),
				})
				continue
			}
			if !utf8.ValidString(element.String()) {
				issues = append(issues, Issue{
					Path:    fmt.Sprintf("%s[%d]", field.Name, i),
					Message: "expected valid UTF-8 string",
				})
				continue
			}
			items = append(items, element.String())
		}
		if len(issues) > 0 {
			return nil, issues
		}
		value = items
	default:
		return nil, []Issue{{Path: field.Name, Message: "unsupported field kind"}}
	}

	if field.Rule != "" {
		if err := s.validate.Var(value, field.Rule); err != nil {
			return nil, ruleIssues(field, err)
		}
	}
	return value, nil
}

func integer(member gjson.Result) (int64, bool) {
	if member.Type != gjson.Number {
		return 0, false
	}
	if n, err := strconv.ParseInt(member.Raw, 10, 64); err == nil {
		return n, true
	}
	f := member.Num
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func typeIssue(field Field, member gjson.Result) Issue {
	received := describe(member)
	if field.Kind == KindInteger && member.Type == gjson.Number {
		received = "non-integer number"
	}
	return Issue{Path: field.Name, Message: fmt.Sprintf("expected %s, received %s", field.Kind, received)}
}

func ruleIssues(field Field, err error) []Issue {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Issue{{Path: field.Name, Message: err.Error()}}
	}
	issues := make([]Issue, 0, len(validationErrors))
	for _, fe := range validationErrors {
		issues = append(issues, Issue{Path: field.Name, Message: ruleMessage(field, fe.Tag(), fe.Param())})
	}
	return issues
}

func ruleMessage(field Field, tag, param string) string {
	switch tag {
	case "min", "gte":
		switch field.Kind {
		case KindString:
			return fmt.Sprintf("%s must contain at least %s character(s)", field.Name, param)
		case KindStringList:
			return fmt.Sprintf("%s must contain at least %s element(s)", field.Name, param)
		default:
			return fmt.Sprintf("%s must be greater than or equal to %s", field.Name, param)
		}
	case "max", "lte":
		switch field.Kind {
		case KindString:
			return fmt.Sprintf("%s must contain at most %s character(s)", field.Name, param)
		case KindStringList:
			return fmt.Sprintf("%s must contain at most %s element(s)", field.Name, param)
		default:
			return fmt.Sprintf("%s must be less than or equal to %s", field.Name, param)
		}
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field.Name, param)
	default:
		if param != "" {
			return fmt.Sprintf("%s failed %s=%s", field.Name, tag, param)
		}
		return fmt.Sprintf("%s failed %s", field.Name, tag)
	}
}

func describe(value gjson.Result) string {
	switch value.Type {
	case gjson.Null:
		return "null"
	case gjson.False, gjson.True:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	default:
		if value.IsArray() {
			return "array"
		}
		return "object"
	}
}

type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error lists every violation found by Parse.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, issue.Path+": "+issue.Message)
	}
	return "schema: " + strings.Join(parts, "; ")
}

// Fields flattens issues into path -> message. The first message per path wins.
func (e *Error) Fields() map[string]string {
	fields := make(map[string]string, len(e.Issues))
	for _, issue := range e.Issues {
		key := issue.Path
		if key == "" {
			key = "body"
		}
		if _, exists := fields[key]; !exists {
			fields[key] = issue.Message
		}
	}
	return fields
}

func (e *Error) Paths() []string {
	seen := make(map[string]struct{}, len(e.Issues))
	paths := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if _, ok := seen[issue.Path]; ok {
			continue
		}
		seen[issue.Path] = struct{}{}
		paths = append(paths, issue.Path)
	}
	sort.Strings(paths)
	return paths
}
