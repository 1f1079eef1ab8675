package manager

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"portfolio-admin/internal/panel/fieldcodec"
)

type Kind int

const (
	Text Kind = iota
	Int
	CommaList
	LineList
)

// Field describes one editable attribute of a record, by its JSON name.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
}

// Config parameterises a Manager for one resource.
type Config struct {
	// Resource is the collection name used in paths and messages ("skills").
	Resource string
	// Label names a single record ("skill").
	Label  string
	Fields []Field
	// Validate adds checks beyond required fields. Optional.
	Validate func(Draft) []FieldError
}

func (c Config) field(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Draft is the editable text form of a record. An empty ID means the draft
// creates a new record.
type Draft struct {
	ID     string
	Values map[string]string

	// base keeps attributes the config does not edit so an update does not
	// clear them.
	base map[string]any
}

func (d Draft) IsNew() bool { return d.ID == "" }

func (d Draft) clone() Draft {
	cp := Draft{ID: d.ID, Values: make(map[string]string, len(d.Values)), base: d.base}
	for k, v := range d.Values {
		cp.Values[k] = v
	}
	return cp
}

func emptyDraft(cfg Config) Draft {
	d := Draft{Values: make(map[string]string, len(cfg.Fields))}
	for _, f := range cfg.Fields {
		d.Values[f.Name] = ""
	}
	return d
}

// draftFrom renders a stored record into its text form.
func draftFrom[T Record](cfg Config, rec T) (Draft, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return Draft{}, err
	}
	var attrs map[string]any
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return Draft{}, err
	}
	for _, k := range []string{"id", "created_at", "updated_at"} {
		delete(attrs, k)
	}

	d := emptyDraft(cfg)
	d.ID = rec.RecordID()
	d.base = attrs
	for _, f := range cfg.Fields {
		d.Values[f.Name] = renderValue(f.Kind, attrs[f.Name])
	}
	return d, nil
}

func renderValue(kind Kind, v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		items := make([]string, 0, len(t))
		for _, it := range t {
			items = append(items, fmt.Sprint(it))
		}
		sep := fieldcodec.Comma
		if kind == LineList {
			sep = fieldcodec.Newline
		}
		return fieldcodec.EncodeList(items, sep)
	default:
		return fmt.Sprint(t)
	}
}

// check returns the unsatisfied fields of d.
func check(cfg Config, d Draft) []FieldError {
	var errs []FieldError
	for _, f := range cfg.Fields {
		v := strings.TrimSpace(d.Values[f.Name])
		switch {
		case f.Required && f.Kind == CommaList && len(fieldcodec.DecodeList(v, fieldcodec.Comma)) == 0,
			f.Required && f.Kind == LineList && len(fieldcodec.DecodeList(v, fieldcodec.Newline)) == 0,
			f.Required && v == "":
			errs = append(errs, FieldError{Field: f.Name, Message: "is required"})
		case f.Kind == Int && v != "":
			if _, err := strconv.Atoi(v); err != nil {
				errs = append(errs, FieldError{Field: f.Name, Message: "must be a whole number"})
			}
		}
	}
	if cfg.Validate != nil {
		errs = append(errs, cfg.Validate(d)...)
	}
	return errs
}

// payload converts a checked draft into the JSON body sent to the server.
func payload(cfg Config, d Draft) map[string]any {
	out := make(map[string]any, len(d.base)+len(cfg.Fields))
	for k, v := range d.base {
		out[k] = v
	}
	for _, f := range cfg.Fields {
		v := strings.TrimSpace(d.Values[f.Name])
		switch f.Kind {
		case Int:
			n, _ := strconv.Atoi(v)
			out[f.Name] = n
		case CommaList:
			out[f.Name] = fieldcodec.DecodeList(v, fieldcodec.Comma)
		case LineList:
			out[f.Name] = fieldcodec.DecodeList(v, fieldcodec.Newline)
		default:
			out[f.Name] = d.Values[f.Name]
		}
	}
	return out
}
