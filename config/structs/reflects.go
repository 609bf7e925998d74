package structs

import (
	"reflect"
	"strconv"
)

// BuildDefault 构造默认值
func BuildDefault[T any](obj T) T {
	v := reflect.ValueOf(&obj).Elem()
	if v.Kind() != reflect.Struct {
		panic("BuildDefault: obj must be a struct")
	}
	fillDefault(v)
	return obj
}

// fillDefault 按 default 标签填充字段，递归处理嵌套结构体
func fillDefault(elem reflect.Value) {
	t := elem.Type()

	// 遍历所有字段
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fv := elem.Field(i)
		if !fv.CanSet() {
			continue
		}

		// 取 default 标签
		if defaultTag := field.Tag.Get("default"); defaultTag != "" {
			setDefault(fv, defaultTag)
		}

		switch fv.Kind() {
		case reflect.Struct:
			// 值类型结构体，递归
			fillDefault(fv)
		case reflect.Pointer:
			// 指向结构体的指针，确保已分配并递归
			if fv.Type().Elem().Kind() != reflect.Struct {
				continue
			}
			if fv.IsNil() {
				fv.Set(reflect.New(fv.Type().Elem()))
			}
			fillDefault(fv.Elem())
		}
	}
}

func setDefault(fv reflect.Value, tag string) {
	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// 从 tag 中解析默认值
		deg, err := strconv.ParseInt(tag, 10, 64)
		if err != nil {
			panic(err)
		}
		fv.SetInt(deg)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		deg, err := strconv.ParseUint(tag, 10, 64)
		if err != nil {
			panic(err)
		}
		fv.SetUint(deg)
	case reflect.String:
		fv.SetString(tag)
	case reflect.Float32, reflect.Float64:
		deg, err := strconv.ParseFloat(tag, 64)
		if err != nil {
			panic(err)
		}
		fv.SetFloat(deg)
	case reflect.Bool:
		deg, err := strconv.ParseBool(tag)
		if err != nil {
			panic(err)
		}
		fv.SetBool(deg)
	}
}
