package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/chrono/machine"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case machine.Registers:
		d := starlark.NewDict(3)
		d.SetKey(starlark.String("A"), starlark.MakeInt64(v.A))
		d.SetKey(starlark.String("B"), starlark.MakeInt64(v.B))
		d.SetKey(starlark.String("C"), starlark.MakeInt64(v.C))
		return d

	case machine.Opcode:
		return starlark.String(v.String())

	case string:
		return starlark.String(v)

	case bool:
		return starlark.Bool(v)

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		// programs and outputs are digit lists, not byte strings
		if value.Type().Elem().Kind() == reflect.Uint8 {
			elems := make([]starlark.Value, value.Len())
			for i := range value.Len() {
				elems[i] = starlark.MakeInt(int(value.Index(i).Uint()))
			}
			return starlark.NewList(elems)
		}
		elems := make([]starlark.Value, value.Len())
		for i := range value.Len() {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(typ.NumField())
		for i := range typ.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return starlark.None
		}
		return toStarlarkValue(value.Elem().Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
