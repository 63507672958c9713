package querybuilder

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var (
	errNilModel     = errors.New("model cannot be nil")
	errNotStruct    = errors.New("model must be struct")
	errNoDBColumns  = errors.New("model has no db columns")
	modelFieldCache sync.Map // reflect.Type -> []modelField
)

type modelField struct {
	column string
	index  []int
}

// InsertModel starts an insert whose columns and values come from the `db`
// tags of a struct. A bad model leaves the builder without columns, so ToSQL
// reports it.
func InsertModel(table string, model any) *InsertBuilder {
	b := InsertInto(table)
	cols, vals, err := modelColumns(model)
	if err != nil {
		return b
	}
	return b.Columns(cols...).Values(vals...)
}

// InsertModels produces one multi-row insert for models of the same type.
func InsertModels[T any](table string, models []T) (*InsertBuilder, error) {
	b := InsertInto(table)
	for i := range models {
		cols, vals, err := modelColumns(models[i])
		if err != nil {
			return nil, fmt.Errorf("model %d: %w", i, err)
		}
		if i == 0 {
			b.Columns(cols...)
		}
		b.Values(vals...)
	}
	return b, nil
}

func modelColumns(model any) ([]string, []any, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil, errNilModel
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, errNotStruct
	}

	fields := fieldsOf(v.Type())
	if len(fields) == 0 {
		return nil, nil, errNoDBColumns
	}
	cols := make([]string, len(fields))
	vals := make([]any, len(fields))
	for i, f := range fields {
		cols[i] = f.column
		vals[i] = v.FieldByIndex(f.index).Interface()
	}
	return cols, vals, nil
}

func fieldsOf(t reflect.Type) []modelField {
	if cached, ok := modelFieldCache.Load(t); ok {
		return cached.([]modelField)
	}

	var fields []modelField
	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		fields = append(fields, modelField{column: name, index: sf.Index})
	}
	modelFieldCache.Store(t, fields)
	return fields
}
