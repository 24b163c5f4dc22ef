package esconfig

import (
	"encoding/binary"
	"math"
	"reflect"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/go-cmp/cmp"
)

var timeType = reflect.TypeOf(time.Time{})

// ignoreUnexported skips the `_ struct{}` markers and any other unexported field.
var ignoreUnexported = cmp.FilterPath(func(p cmp.Path) bool {
	sf, ok := p.Last().(cmp.StructField)
	return ok && !isExported(sf.Name())
}, cmp.Ignore())

// Equal reports whether a and b hold the same model value.
//
// Fields are compared recursively. A nil collection is not equal to an empty
// one, and timestamps compare by instant regardless of location.
func Equal(a, b interface{}) bool {
	return cmp.Equal(a, b, ignoreUnexported)
}

// Hash returns a hash of v consistent with Equal: values that are Equal
// have the same Hash.
func Hash(v interface{}) uint64 {
	d := xxhash.New()
	hashValue(d, reflect.ValueOf(v))
	return d.Sum64()
}

func isExported(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}

func hashValue(d *xxhash.Digest, v reflect.Value) {
	if !v.IsValid() {
		writeUint(d, 0)
		return
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			writeUint(d, 0)
			return
		}
		writeUint(d, 1)
		hashValue(d, v.Elem())

	case reflect.Struct:
		if v.Type() == timeType {
			t := v.Interface().(time.Time)
			writeUint(d, uint64(t.Unix()))
			writeUint(d, uint64(t.Nanosecond()))
			return
		}
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if !isExported(f.Name) {
				continue
			}
			_, _ = d.WriteString(f.Name)
			hashValue(d, v.Field(i))
		}

	case reflect.Slice:
		if v.IsNil() {
			writeUint(d, 0)
			return
		}
		writeUint(d, 1)
		fallthrough
	case reflect.Array:
		writeUint(d, uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			hashValue(d, v.Index(i))
		}

	case reflect.Map:
		if v.IsNil() {
			writeUint(d, 0)
			return
		}
		// Sum of per-entry hashes so iteration order doesn't matter.
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			e := xxhash.New()
			hashValue(e, iter.Key())
			hashValue(e, iter.Value())
			sum += e.Sum64()
		}
		writeUint(d, 1)
		writeUint(d, uint64(v.Len()))
		writeUint(d, sum)

	case reflect.String:
		writeUint(d, uint64(v.Len()))
		_, _ = d.WriteString(v.String())

	case reflect.Bool:
		if v.Bool() {
			writeUint(d, 1)
		} else {
			writeUint(d, 0)
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(d, uint64(v.Int()))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(d, v.Uint())

	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f == 0 {
			f = 0 // -0 == 0
		}
		writeUint(d, math.Float64bits(f))
	}
}

func writeUint(d *xxhash.Digest, u uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], u)
	_, _ = d.Write(b[:])
}
