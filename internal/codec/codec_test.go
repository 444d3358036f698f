package codec

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"

	"github.com/joshuapare/plistkit/internal/format"
	"github.com/joshuapare/plistkit/pkg/types"
)

func sampleManifest() *types.Dict {
	lockdown := types.NewDict()
	lockdown.Set("ProductVersion", types.String("16.0"))
	lockdown.Set("BuildVersion", types.String("20A123"))
	lockdown.Set("DeviceName", types.String("iPhone"))

	root := types.NewDict()
	root.Set("Lockdown", types.DictValue(lockdown))
	root.Set("IsEncrypted", types.Bool(false))
	root.Set("Version", types.Real(10.0))
	root.Set("SystemDomainsVersion", types.Int(-3))
	root.Set("Size", types.Uint(1<<63+5))
	root.Set("Date", types.Date(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	root.Set("ManifestKey", types.Data([]byte{0xde, 0xad, 0xbe, 0xef}))
	root.Set("Applications", types.Array(types.String("com.example.a"), types.Int(7)))
	return root
}

func TestRoundTrip_BothFormats(t *testing.T) {
	for _, f := range []format.Format{format.Text, format.Binary} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Marshal(sampleManifest(), f)
			require.NoError(t, err)
			assert.Equal(t, f, format.DetectBytes(data))

			root, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, sampleManifest().Keys(), root.Keys())

			lockdownVal, ok := root.Get("Lockdown")
			require.True(t, ok)
			lockdown, ok := lockdownVal.AsDict()
			require.True(t, ok)
			pv, _ := lockdown.Get("ProductVersion")
			s, _ := pv.AsString()
			assert.Equal(t, "16.0", s)

			neg, _ := root.Get("SystemDomainsVersion")
			i, ok := neg.AsInt()
			require.True(t, ok)
			assert.Equal(t, int64(-3), i)

			big, _ := root.Get("Size")
			u, ok := big.AsUint()
			require.True(t, ok)
			assert.Equal(t, uint64(1<<63+5), u)

			key, _ := root.Get("ManifestKey")
			b, _ := key.AsData()
			assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b)

			apps, _ := root.Get("Applications")
			items, ok := apps.AsArray()
			require.True(t, ok)
			require.Len(t, items, 2)
			assert.Equal(t, "com.example.a", items[0].String())
		})
	}
}

func TestRoundTrip_ReencodeIsStable(t *testing.T) {
	for _, f := range []format.Format{format.Text, format.Binary} {
		first, err := Marshal(sampleManifest(), f)
		require.NoError(t, err)
		root, err := Decode(first)
		require.NoError(t, err)
		second, err := Marshal(root, f)
		require.NoError(t, err)
		assert.Equal(t, first, second, "format %s", f)
	}
}

func TestDecode_UID(t *testing.T) {
	data, err := plist.Marshal(map[string]any{"$top": plist.UID(1)}, plist.BinaryFormat)
	require.NoError(t, err)

	root, err := Decode(data)
	require.NoError(t, err)
	v, _ := root.Get("$top")
	u, ok := v.AsUID()
	require.True(t, ok)
	assert.Equal(t, uint64(1), u)
}

func TestDecode_RootNotDict(t *testing.T) {
	data, err := plist.Marshal([]any{"a", "b"}, plist.XMLFormat)
	require.NoError(t, err)

	_, err = Decode(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrParse))
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode([]byte("bplist00 definitely not a plist"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrParse))

	kind, ok := types.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrKindParse, kind)
}

func TestEncode_XMLIsIndented(t *testing.T) {
	root := types.NewDict()
	root.Set("Product Version", types.String("17.0"))

	data, err := Marshal(root, format.Text)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\t<key>Product Version</key>")
}

func TestDecode_OpenStepIsRewrittenAsXML(t *testing.T) {
	src := []byte(`{ "Product Version" = "16.0"; "Build Version" = "20A123"; Lockdown = { ProductVersion = "16.0"; }; }`)
	require.Equal(t, format.Text, format.DetectBytes(src))

	root, err := Decode(src)
	require.NoError(t, err)
	v, ok := root.Get("Product Version")
	require.True(t, ok)
	s, _ := v.AsString()
	assert.Equal(t, "16.0", s)

	out, err := Marshal(root, format.Text)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<?xml")
	assert.Contains(t, string(out), "<key>Build Version</key>")
	assert.Equal(t, format.Text, format.DetectBytes(out))

	again, err := Decode(out)
	require.NoError(t, err)
	lockdown, ok := again.Get("Lockdown")
	require.True(t, ok)
	assert.Equal(t, types.KindDict, lockdown.Kind())
}
