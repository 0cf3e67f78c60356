package types

import (
	"reflect"
	"strings"
)

// GetFieldInterfaceByPath walks a dot-separated field path through
// nested structs, dereferencing pointers along the way. The boolean is
// false when the path does not resolve.
func GetFieldInterfaceByPath(instance any, fieldPath string) (any, bool) {
	valueOfIns := reflect.ValueOf(instance)
	fieldNames := strings.Split(fieldPath, ".")
	for _, name := range fieldNames {
		v := reflect.Indirect(valueOfIns)
		if v.Kind() != reflect.Struct {
			return nil, false
		}
		v = v.FieldByName(name)
		if !v.IsValid() {
			return nil, false
		}
		valueOfIns = v
	}
	return valueOfIns.Interface(), true
}
