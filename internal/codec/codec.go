// Package codec converts property list files to and from the types.Value
// tree. Parsing and serialization of both encodings is delegated to
// howett.net/plist; this package only maps its native Go values onto the
// tagged variant and back.
package codec

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"howett.net/plist"

	"github.com/joshuapare/plistkit/internal/format"
	"github.com/joshuapare/plistkit/pkg/types"
)

// Decode parses data and returns its root dictionary. The encoding is
// taken from the data itself; callers that need the format tag use
// format.DetectBytes. A root that is not a dictionary is a parse error.
func Decode(data []byte) (*types.Dict, error) {
	var native any
	if _, err := plist.Unmarshal(data, &native); err != nil {
		return nil, &types.Error{Kind: types.ErrKindParse, Msg: "malformed property list", Err: err}
	}
	root, ok := native.(map[string]any)
	if !ok {
		return nil, &types.Error{
			Kind: types.ErrKindParse,
			Msg:  fmt.Sprintf("top-level value is %T, not a dictionary", native),
		}
	}
	v, err := FromNative(root)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindParse, Msg: "unsupported property list value", Err: err}
	}
	d, _ := v.AsDict()
	return d, nil
}

// Encode writes root to w in format f. XML output is tab-indented like
// the files written by Apple tooling.
func Encode(w io.Writer, root *types.Dict, f format.Format) error {
	enc := plist.NewEncoderForFormat(w, f.PlistFormat())
	if f == format.Text {
		enc.Indent("\t")
	}
	if err := enc.Encode(ToNative(types.DictValue(root))); err != nil {
		return fmt.Errorf("encode %s property list: %w", f, err)
	}
	return nil
}

// Marshal is Encode into a byte slice.
func Marshal(root *types.Dict, f format.Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, root, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromNative converts a value produced by plist.Unmarshal into a Value.
func FromNative(v any) (types.Value, error) {
	switch x := v.(type) {
	case string:
		return types.String(x), nil
	case int64:
		return types.Int(x), nil
	case uint64:
		return types.Uint(x), nil
	case float64:
		return types.Real(x), nil
	case float32:
		return types.Real(float64(x)), nil
	case bool:
		return types.Bool(x), nil
	case time.Time:
		return types.Date(x), nil
	case []byte:
		return types.Data(x), nil
	case plist.UID:
		return types.UID(uint64(x)), nil
	case map[string]any:
		d := types.NewDict()
		for k, item := range x {
			iv, err := FromNative(item)
			if err != nil {
				return types.Value{}, fmt.Errorf("%s: %w", k, err)
			}
			d.Set(k, iv)
		}
		return types.DictValue(d), nil
	case []any:
		items := make([]types.Value, len(x))
		for i, item := range x {
			iv, err := FromNative(item)
			if err != nil {
				return types.Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			items[i] = iv
		}
		return types.Array(items...), nil
	default:
		return types.Value{}, fmt.Errorf("unexpected value of type %T", v)
	}
}

// ToNative converts v into the representation plist.Marshal expects.
// The invalid Value maps to nil.
func ToNative(v types.Value) any {
	switch v.Kind() {
	case types.KindString:
		s, _ := v.AsString()
		return s
	case types.KindInteger:
		if v.IsUnsigned() {
			u, _ := v.AsUint()
			return u
		}
		i, _ := v.AsInt()
		return i
	case types.KindReal:
		f, _ := v.AsReal()
		return f
	case types.KindBoolean:
		b, _ := v.AsBool()
		return b
	case types.KindDate:
		t, _ := v.AsDate()
		return t
	case types.KindData:
		b, _ := v.AsData()
		return b
	case types.KindUID:
		u, _ := v.AsUID()
		return plist.UID(u)
	case types.KindDict:
		d, _ := v.AsDict()
		m := make(map[string]any, d.Len())
		for _, k := range d.Keys() {
			item, _ := d.Get(k)
			m[k] = ToNative(item)
		}
		return m
	case types.KindArray:
		items, _ := v.AsArray()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = ToNative(item)
		}
		return out
	default:
		return nil
	}
}
