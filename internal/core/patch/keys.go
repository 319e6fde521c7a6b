package patch

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// UnmarshalExact decodes data into dst, matching object keys to json tags
// case-sensitively. encoding/json alone would accept "NAME" for "name";
// such keys are dropped like any other unknown key, at every nesting level.
func UnmarshalExact(data []byte, dst any) error {
	filtered, err := dropInexactKeys(data, reflect.TypeOf(dst))
	if err != nil {
		return err
	}
	return json.Unmarshal(filtered, dst)
}

var (
	unmarshalerType = reflect.TypeFor[json.Unmarshaler]()
	typedFieldType  = reflect.TypeFor[typedField]()

	// jsonFieldsCache maps a struct type to its exact key set.
	jsonFieldsCache sync.Map
)

// typedField is implemented by Field[T] to expose T.
type typedField interface {
	valueType() reflect.Type
}

func (Field[T]) valueType() reflect.Type {
	return reflect.TypeFor[T]()
}

func dropInexactKeys(data []byte, t reflect.Type) ([]byte, error) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return data, nil
	}
	if t.Implements(typedFieldType) {
		inner := reflect.Zero(t).Interface().(typedField).valueType()
		return dropInexactKeys(data, inner)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return data, nil
	}

	switch {
	case t.Kind() == reflect.Struct && trimmed[0] == '{' && !reflect.PointerTo(t).Implements(unmarshalerType):
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return nil, err
		}
		fields := jsonFieldsOf(t)
		for key, raw := range obj {
			ft, ok := fields[key]
			if !ok {
				delete(obj, key)
				continue
			}
			cleaned, err := dropInexactKeys(raw, ft)
			if err != nil {
				return nil, err
			}
			obj[key] = cleaned
		}
		return json.Marshal(obj)

	case t.Kind() == reflect.Slice && trimmed[0] == '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		for i, raw := range items {
			cleaned, err := dropInexactKeys(raw, t.Elem())
			if err != nil {
				return nil, err
			}
			items[i] = cleaned
		}
		return json.Marshal(items)
	}

	return data, nil
}

// jsonFieldsOf returns the json key of every exported field of t, promoted
// fields of untagged embedded structs included, mapped to the field type.
func jsonFieldsOf(t reflect.Type) map[string]reflect.Type {
	if cached, ok := jsonFieldsCache.Load(t); ok {
		return cached.(map[string]reflect.Type)
	}

	fields := make(map[string]reflect.Type)
	collectJSONFields(t, fields)

	actual, _ := jsonFieldsCache.LoadOrStore(t, fields)
	return actual.(map[string]reflect.Type)
}

func collectJSONFields(t reflect.Type, fields map[string]reflect.Type) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")

		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				collectJSONFields(ft, fields)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if _, taken := fields[name]; !taken {
			fields[name] = f.Type
		}
	}
}
