package types

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// -----------------------------------------------------------------------------
// Property list values
// -----------------------------------------------------------------------------

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota // zero Value; used for "absent"
	KindString
	KindInteger
	KindReal
	KindBoolean
	KindDate
	KindData
	KindDict
	KindArray
	KindUID // keyed-archiver object reference (binary plists only)
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindString:  "string",
	KindInteger: "integer",
	KindReal:    "real",
	KindBoolean: "boolean",
	KindDate:    "date",
	KindData:    "data",
	KindDict:    "dict",
	KindArray:   "array",
	KindUID:     "uid",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a single property list node. The zero Value is invalid and
// stands for a missing entry.
//
// Values are small and copyable; the Dict variant holds a pointer so
// edits made through a nested dictionary are visible from the root.
type Value struct {
	kind     Kind
	str      string
	num      uint64 // integer bits, boolean (0/1) or UID
	unsigned bool   // integer was decoded as unsigned
	flt      float64
	date     time.Time
	data     []byte
	dict     *Dict
	array    []Value
}

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int returns a signed integer Value.
func Int(i int64) Value { return Value{kind: KindInteger, num: uint64(i)} }

// Uint returns an unsigned integer Value.
func Uint(u uint64) Value { return Value{kind: KindInteger, num: u, unsigned: true} }

// Real returns a floating point Value.
func Real(f float64) Value { return Value{kind: KindReal, flt: f} }

// Bool returns a boolean Value.
func Bool(b bool) Value {
	v := Value{kind: KindBoolean}
	if b {
		v.num = 1
	}
	return v
}

// Date returns a date Value.
func Date(t time.Time) Value { return Value{kind: KindDate, date: t} }

// Data returns a binary data Value. The slice is not copied.
func Data(b []byte) Value { return Value{kind: KindData, data: b} }

// UID returns a keyed-archiver UID Value.
func UID(u uint64) Value { return Value{kind: KindUID, num: u} }

// Array returns an array Value.
func Array(items ...Value) Value { return Value{kind: KindArray, array: items} }

// DictValue wraps d as a Value. A nil d becomes an empty dictionary.
func DictValue(d *Dict) Value {
	if d == nil {
		d = NewDict()
	}
	return Value{kind: KindDict, dict: d}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds anything.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// AsString returns the string payload.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsInt returns the integer payload as int64. Unsigned values above
// math.MaxInt64 are reported as not representable.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInteger || (v.unsigned && v.num > 1<<63-1) {
		return 0, false
	}
	return int64(v.num), true
}

// AsUint returns the integer payload as uint64. Negative values are
// reported as not representable.
func (v Value) AsUint() (uint64, bool) {
	if v.kind != KindInteger || (!v.unsigned && int64(v.num) < 0) {
		return 0, false
	}
	return v.num, true
}

// IsUnsigned reports whether an integer was decoded or built as unsigned.
func (v Value) IsUnsigned() bool { return v.kind == KindInteger && v.unsigned }

// AsReal returns the floating point payload.
func (v Value) AsReal() (float64, bool) { return v.flt, v.kind == KindReal }

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) { return v.num == 1, v.kind == KindBoolean }

// AsDate returns the date payload.
func (v Value) AsDate() (time.Time, bool) { return v.date, v.kind == KindDate }

// AsData returns the binary payload.
func (v Value) AsData() ([]byte, bool) { return v.data, v.kind == KindData }

// AsUID returns the UID payload.
func (v Value) AsUID() (uint64, bool) { return v.num, v.kind == KindUID }

// AsDict returns the dictionary payload.
func (v Value) AsDict() (*Dict, bool) { return v.dict, v.kind == KindDict }

// AsArray returns the array payload.
func (v Value) AsArray() ([]Value, bool) { return v.array, v.kind == KindArray }

// String renders v for human consumption. It is not a serialization.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInteger:
		if v.unsigned {
			return strconv.FormatUint(v.num, 10)
		}
		return strconv.FormatInt(int64(v.num), 10)
	case KindReal:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.num == 1)
	case KindDate:
		return v.date.UTC().Format(time.RFC3339)
	case KindData:
		return "<" + hex.EncodeToString(v.data) + ">"
	case KindUID:
		return fmt.Sprintf("UID(%d)", v.num)
	case KindDict:
		return fmt.Sprintf("{%d entries}", v.dict.Len())
	case KindArray:
		parts := make([]string, len(v.array))
		for i, item := range v.array {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "<invalid>"
	}
}

// -----------------------------------------------------------------------------
// Dictionaries
// -----------------------------------------------------------------------------

// Dict is a property list dictionary. Use NewDict; the zero Dict is not
// usable.
type Dict struct {
	m map[string]Value
}

// NewDict returns an empty dictionary.
func NewDict() *Dict { return &Dict{m: make(map[string]Value)} }

// Get returns the value stored under key.
func (d *Dict) Get(key string) (Value, bool) {
	v, ok := d.m[key]
	return v, ok
}

// Set stores v under key, replacing any previous value.
func (d *Dict) Set(key string, v Value) { d.m[key] = v }

// Delete removes key. Deleting a missing key is a no-op.
func (d *Dict) Delete(key string) { delete(d.m, key) }

// Len returns the number of entries. A nil Dict is empty.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.m)
}

// Keys returns the keys in sorted order, the order both encodings
// write them in.
func (d *Dict) Keys() []string {
	keys := make([]string, 0, len(d.m))
	for k := range d.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// -----------------------------------------------------------------------------
// Version keys
// -----------------------------------------------------------------------------

// KeyNames names the two leaf entries holding the product and build
// versions inside a dictionary.
type KeyNames struct {
	Product string
	Build   string
}

var (
	// InfoKeyNames are the names used at the root of Info.plist.
	InfoKeyNames = KeyNames{Product: "Product Version", Build: "Build Version"}
	// LockdownKeyNames are the names used under Manifest.plist's Lockdown dictionary.
	LockdownKeyNames = KeyNames{Product: "ProductVersion", Build: "BuildVersion"}
)
