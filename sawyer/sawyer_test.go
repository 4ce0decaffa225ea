package sawyer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loco-savior/sawyer/scompress"
	"loco-savior/sawyer/sfile"
	"loco-savior/sawyer/sheader"
	"loco-savior/sawyer/skind"
	"loco-savior/sawyer/sobjects"
)

func TestIsObjectFile(t *testing.T) {
	assert.True(t, IsObjectFile("ObjData/707.DAT"))
	assert.True(t, IsObjectFile("clim1.dat"))
	assert.False(t, IsObjectFile("clim1.dat.json"))
	assert.False(t, IsObjectFile("README"))
}

func TestSaveLoad(t *testing.T) {
	name, err := sheader.NewName("STEAM1")
	require.NoError(t, err)
	file := &sfile.File{
		Identity: sheader.NewIdentity(skind.Sound, skind.SourceGameCustom, name),
		Payload:  sheader.Payload{Encoding: scompress.RunLengthMulti},
		Object:   &sobjects.Sound{Data: 1, Volume: 3},
	}

	path := filepath.Join(t.TempDir(), "STEAM1.DAT")
	require.NoError(t, Save(path, file))

	headers, err := PeekHeader(path)
	require.NoError(t, err)
	assert.Equal(t, skind.Sound, headers.Identity.Kind())
	assert.Equal(t, uint32(0x0C), headers.Payload.Length)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, file.Object, loaded.Object)
	assert.True(t, loaded.Identity.Name.Equal(name))
}

func TestJSON(t *testing.T) {
	name, err := sheader.NewName("BRIDGE1")
	require.NoError(t, err)
	bs, err := Encode(&sfile.File{
		Identity: sheader.NewIdentity(skind.Bridge, skind.SourceGameData, name),
		Payload:  sheader.Payload{Encoding: scompress.Rotate},
		Object:   &sobjects.Bridge{MaxSpeed: -1, DesignedYear: 1920, TrackMods: [7]uint8{1, 2}},
	})
	require.NoError(t, err)

	js, err := DecodeJSON(bs)
	require.NoError(t, err)
	assert.Contains(t, string(js), `"max_speed":-1`)

	again, err := EncodeJSON(js)
	require.NoError(t, err)
	assert.Equal(t, bs, again)
}
