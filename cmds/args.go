package cmds

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/reusee/chrono/vars"
)

// parseArg converts the head of args to t.
func parseArg(t reflect.Type, args []string) (ret reflect.Value, consumed bool, err error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			return reflect.New(t.Elem()), false, nil
		}
		elem, consumed, err := parseArg(t.Elem(), args)
		if err != nil {
			return ret, false, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, consumed, nil
	}

	if len(args) == 0 {
		return ret, false, fmt.Errorf("missing %v argument", t)
	}
	str := args[0]
	ret = reflect.New(t).Elem()

	switch t.Kind() {
	case reflect.String:
		ret.SetString(str)

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, false, fmt.Errorf("parse %q as %v: %w", str, t, err)
		}
		ret.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, false, fmt.Errorf("parse %q as %v: %w", str, t, err)
		}
		ret.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return ret, false, fmt.Errorf("parse %q as %v: %w", str, t, err)
		}
		ret.SetFloat(f)

	default:
		return ret, false, fmt.Errorf("unsupported argument type %v", t)
	}

	return ret, true, nil
}
