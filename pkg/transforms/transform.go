package transforms

import (
	"reflect"
)

// TransformDefinition overrides struct fields on values whose Match fields
// all equal the given strings. Used for display metadata that does not
// belong in timetable data, like train type branding.
type TransformDefinition struct {
	Type  string
	Match map[string]string
	Data  map[string]interface{}
}

func (t *TransformDefinition) Transform(inputValue reflect.Value) {
	if !inputValue.IsValid() {
		return
	}

	for key, value := range t.Match {
		field := inputValue.FieldByName(key)
		if !field.IsValid() || value != field.String() {
			return
		}
	}

	for key, value := range t.Data {
		field := inputValue.FieldByName(key)
		if field.IsValid() && field.CanSet() {
			field.Set(reflect.ValueOf(value))
		}
	}
}

func Transform(input interface{}) {
	inputTypeOf := reflect.TypeOf(input)
	inputValueOf := reflect.ValueOf(input)

	if inputTypeOf == nil {
		return
	}

	if inputTypeOf.Kind() == reflect.Slice {
		for i := 0; i < inputValueOf.Len(); i++ {
			indexInput := inputValueOf.Index(i).Interface()
			transformValue(reflect.TypeOf(indexInput), reflect.ValueOf(indexInput))
		}
	} else {
		transformValue(inputTypeOf, inputValueOf)
	}
}

func transformValue(inputTypeOf reflect.Type, inputValueOf reflect.Value) {
	var inputValue reflect.Value
	if inputTypeOf.Kind() == reflect.Pointer {
		inputValue = inputValueOf.Elem()
	} else {
		inputValue = inputValueOf
	}

	for _, transformDef := range transforms {
		transformDef.Transform(inputValue)
	}
}
