package csvio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalPrependsBOM(t *testing.T) {
	payload, err := Marshal([]string{"الاسم", "المبلغ"}, [][]string{{"شاحن", "50"}})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(payload, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(payload), "الاسم,المبلغ")
	assert.Contains(t, string(payload), "شاحن,50")
}

func TestMarshalQuotesSpecialCharacters(t *testing.T) {
	payload, err := Marshal([]string{"desc"}, [][]string{{`a "quoted", value`}})
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"a ""quoted"", value"`)
}

func TestParseRoundTrip(t *testing.T) {
	payload, err := Marshal(
		[]string{"اسم المنتج", "الكمية"},
		[][]string{{"شاحن", "10"}, {"كابل, طويل", "3"}},
	)
	require.NoError(t, err)

	rows, err := Parse(payload)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "شاحن", rows[0]["اسم المنتج"])
	assert.Equal(t, "كابل, طويل", rows[1]["اسم المنتج"])
	assert.Equal(t, "3", rows[1]["الكمية"])
}

func TestParseWithoutBOM(t *testing.T) {
	rows, err := Parse([]byte("name,qty\nwidget,5\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "widget", rows[0]["name"])
}

func TestParseShortRowsLeaveMissingColumnsEmpty(t *testing.T) {
	rows, err := Parse([]byte("a,b,c\n1,2\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2", rows[0]["b"])
	assert.Equal(t, "", rows[0]["c"])
}

func TestParseTrimsValues(t *testing.T) {
	rows, err := Parse([]byte("name , qty\n widget , 5 \n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "widget", rows[0]["name"])
	assert.Equal(t, "5", rows[0]["qty"])
}

func TestParseEmptyPayload(t *testing.T) {
	_, err := Parse([]byte{})
	assert.Error(t, err)
}
