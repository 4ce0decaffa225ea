package sheader

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName_Padding(t *testing.T) {
	name, err := NewName("CLIM1")
	require.NoError(t, err)
	assert.Equal(t, Name{'C', 'L', 'I', 'M', '1', ' ', ' ', ' '}, name)

	_, err = NewName("TOOLONGNAME")
	assert.Error(t, err)
}

func TestName_Equal(t *testing.T) {
	upper, err := NewName("CLIM1")
	require.NoError(t, err)
	lower := Name{'c', 'l', 'i', 'm', '1', ' ', ' ', ' '}
	other, err := NewName("CLIM2")
	require.NoError(t, err)

	assert.True(t, upper.Equal(lower))
	assert.False(t, upper.Equal(other))
}

func TestName_JSON(t *testing.T) {
	name := Name{'L', 'O', 'C', 'O', 0xE9, ' ', ' ', ' '}

	bs, err := json.Marshal(name)
	require.NoError(t, err)
	assert.Equal(t, `"LOCOé"`, string(bs))

	var decoded Name
	require.NoError(t, json.Unmarshal(bs, &decoded))
	assert.Equal(t, name, decoded)
}
