package postgres

import (
	"reflect"
	"sync"
)

// ExtractDBColumns extracts all column names from struct "db" tags,
// descending into embedded structs (like entity.Base).
//
// Usage:
//
//	columns := ExtractDBColumns[product.Product]()
//	// Returns: ["id", "name", "description", "net_price", ...]
func ExtractDBColumns[T any]() []string {
	var zero T
	return columnsOf(reflect.TypeOf(zero))
}

func columnsOf(t reflect.Type) []string {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	meta := metadataOf(t)

	cols := make([]string, 0, len(meta.fields))
	for _, fi := range meta.fields {
		if fi.embedded {
			cols = append(cols, columnsOf(t.Field(fi.index).Type)...)
			continue
		}
		cols = append(cols, fi.column)
	}
	return cols
}

// fieldInfo contains pre-computed metadata about a struct field.
type fieldInfo struct {
	index    int
	column   string
	embedded bool
}

type typeMetadata struct {
	fields []fieldInfo
}

// typeCache maps reflect.Type to *typeMetadata.
var typeCache sync.Map

// metadataOf returns cached metadata, computing it on first use.
func metadataOf(t reflect.Type) *typeMetadata {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return &typeMetadata{}
	}

	if cached, ok := typeCache.Load(t); ok {
		return cached.(*typeMetadata)
	}

	meta := &typeMetadata{}
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)

			if field.Anonymous {
				meta.fields = append(meta.fields, fieldInfo{index: i, embedded: true})
				continue
			}

			tag := field.Tag.Get("db")
			if tag == "" || tag == "-" {
				continue
			}
			meta.fields = append(meta.fields, fieldInfo{index: i, column: tag})
		}
	}

	actual, _ := typeCache.LoadOrStore(t, meta)
	return actual.(*typeMetadata)
}

// StructToMap converts a struct to a column map using "db" tags.
// Fields without a tag or tagged "-" are skipped.
func StructToMap(v any) map[string]any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	res := make(map[string]any)
	collect(rv, res)
	return res
}

func collect(rv reflect.Value, res map[string]any) {
	meta := metadataOf(rv.Type())
	for _, fi := range meta.fields {
		fv := rv.Field(fi.index)
		if fi.embedded {
			for fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					break
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				collect(fv, res)
			}
			continue
		}
		res[fi.column] = fv.Interface()
	}
}
