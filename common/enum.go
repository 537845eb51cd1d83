package common

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// EnumHelper provides String/Parse for a tagged-enum type via reflection
// over the enum's own accessor methods, rather than a switch-per-type
// String/Parse pair. LogLevel is the type in this repository that uses it;
// the other enum-shaped types (nullability annotation, type kinds, carrier
// kind) do not go through it.
type EnumHelper struct{}
type EnumSymbolInfo func(enumSymbolName string, enumSymbolValue interface{}) (stop bool)

func (EnumHelper) isValidEnumSymbolMethod(enumType reflect.Type, m reflect.Method) bool {
	return m.Type.NumIn() == 1 && m.Type.NumOut() == 1 && m.Type.Out(0) == enumType
}

func (EnumHelper) findMethod(enumType reflect.Type, methodName string, caseInsensitive bool) (reflect.Method, bool) {
	if !caseInsensitive {
		return enumType.MethodByName(methodName)
	}
	methodName = strings.ToLower(methodName)
	for m := 0; m < enumType.NumMethod(); m++ {
		method := enumType.Method(m)
		if strings.ToLower(method.Name) == methodName {
			return method, true
		}
	}
	return reflect.Method{}, false
}

// EnumSymbols calls esi once per zero-argument accessor method of enumType
// that returns enumType, passing the method name and its value.
func (EnumHelper) EnumSymbols(enumType reflect.Type, esi EnumSymbolInfo) {
	args := [1]reflect.Value{reflect.Zero(enumType)}
	for m := 0; m < enumType.NumMethod(); m++ {
		method := enumType.Method(m)
		if !(EnumHelper{}).isValidEnumSymbolMethod(enumType, method) {
			continue
		}
		value := method.Func.Call(args[:])[0].Convert(enumType).Interface()
		if esi(method.Name, value) {
			return
		}
	}
}

// String returns the symbolic (method) name matching enumValue, or "".
func (EnumHelper) String(enumValue interface{}, enumType reflect.Type) string {
	symbolResult := ""
	EnumHelper{}.EnumSymbols(enumType, func(symbol string, value interface{}) bool {
		if value == enumValue {
			symbolResult = symbol
			return true
		}
		return false
	})
	return symbolResult
}

func (EnumHelper) StringInteger(intValue interface{}, enumType reflect.Type) string {
	if symbolName := (EnumHelper{}).String(intValue, enumType); symbolName != "" {
		return symbolName
	}
	return fmt.Sprintf("%d", intValue)
}

// Parse finds a zero-argument accessor method on enumTypePtr's element type
// whose name matches s and returns its value.
func (EnumHelper) Parse(enumTypePtr reflect.Type, s string, caseInsensitive bool) (interface{}, error) {
	enumType := enumTypePtr.Elem()
	if method, found := (EnumHelper{}).findMethod(enumType, s, caseInsensitive); found {
		args := [1]reflect.Value{reflect.Zero(enumType)}
		return method.Func.Call(args[:])[0].Convert(enumType).Interface(), nil
	}
	return nil, fmt.Errorf("couldn't parse %q into an instance of %q", s, enumType.Name())
}

// ParseIntOrSymbol tries Parse first, falling back to a raw base-10/16/8
// integer literal (strconv's "0" prefix auto-detection), for enums whose
// wire form may be a bare integer (e.g. selector parameter counts encoded
// as flags in diagnostics).
func (EnumHelper) ParseIntOrSymbol(enumTypePtr reflect.Type, s string, bitSize int) (uint64, error) {
	v, err := EnumHelper{}.Parse(enumTypePtr, s, true)
	if err == nil {
		return reflect.ValueOf(v).Convert(reflect.TypeOf(uint64(0))).Uint(), nil
	}
	i, perr := strconv.ParseUint(s, 0, bitSize)
	if perr != nil {
		return 0, fmt.Errorf("couldn't parse %q into an instance of %q", s, enumTypePtr.Elem().Name())
	}
	return i, nil
}
