package sstring

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loco-savior/sawyer/serr"
)

var sampleTable = []byte{
	0x00, 'D', 'o', 'l', 'l', 'a', 'r', 0x00,
	0x01, 'D', 'o', 'l', 'l', 'a', 'r', 0x00,
	0x03, 0x00,
	0xFF,
	0x00, '$', 0x00,
	0xFF,
	0xFF,
	// graphics table follows
	0x01, 0x00,
}

func TestDecode(t *testing.T) {
	table, consumed, err := Decode(sampleTable, 3)
	require.NoError(t, err)
	assert.Equal(t, len(sampleTable)-2, consumed)
	assert.Equal(
		t,
		[]Entry{
			{Language: EnglishUK, ID: 0, Text: "Dollar"},
			{Language: EnglishUS, ID: 0, Text: "Dollar"},
			{Language: German, ID: 0, Text: ""},
			{Language: EnglishUK, ID: 1, Text: "$"},
		},
		table.Entries,
	)

	text, ok := table.Lookup(1, EnglishUK)
	assert.True(t, ok)
	assert.Equal(t, "$", text)
	_, ok = table.Lookup(2, EnglishUK)
	assert.False(t, ok)
	assert.Len(t, table.Strings(0), 3)
}

func TestEncode_RoundTrip(t *testing.T) {
	table, consumed, err := Decode(sampleTable, 3)
	require.NoError(t, err)

	bs, err := Encode(table, 3)
	require.NoError(t, err)
	assert.Equal(t, sampleTable[:consumed], bs)
}

func TestDecode_Truncated(t *testing.T) {
	for _, n := range []int{0, 3, 17, 21} {
		_, _, err := Decode(sampleTable[:n], 3)
		var truncated serr.ErrTruncatedPayload
		require.True(t, errors.As(err, &truncated), "prefix %d", n)
		assert.Equal(t, n, truncated.Got)
	}
}

func TestDecode_CodePage(t *testing.T) {
	table, _, err := Decode([]byte{0x00, 0xA3, '1', 0x00, 0xFF}, 1)
	require.NoError(t, err)
	assert.Equal(t, "£1", table.Entries[0].Text)

	bs, err := Encode(table, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xA3, '1', 0x00, 0xFF}, bs)
}

func TestEncode_Invalid(t *testing.T) {
	_, err := Encode(&Table{Entries: []Entry{{ID: 1}, {ID: 0}}}, 2)
	assert.Error(t, err)

	_, err = Encode(&Table{Entries: []Entry{{ID: 2}}}, 2)
	assert.Error(t, err)

	_, err = Encode(&Table{Entries: []Entry{{Text: "a\x00b"}}}, 1)
	assert.Error(t, err)

	_, err = Encode(&Table{Entries: []Entry{{Text: "日本"}}}, 1)
	assert.Error(t, err)
}

func TestEncode_Empty(t *testing.T) {
	bs, err := Encode(nil, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFF}, bs)
}

func TestLanguage_Text(t *testing.T) {
	bs, err := json.Marshal(Entry{Language: Portuguese, ID: 2, Text: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"language": "portuguese", "id": 2, "text": "x"}`, string(bs))

	var language Language
	require.NoError(t, language.UnmarshalText([]byte("language_40")))
	assert.Equal(t, Language(40), language)
	assert.Error(t, language.UnmarshalText([]byte("klingon")))
	assert.Error(t, language.UnmarshalText([]byte("language_255")))
}
