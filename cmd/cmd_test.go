package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseParams(t *testing.T) {
	t.Run("Object yields one item and keeps large numbers exact", func(t *testing.T) {
		items, err := ParseParams([]byte(` {"amount": 115792089237316195423570985008687907853269984665640564039457584007913129639935, "staker": "0xabc"}`))
		require.NoError(t, err)
		require.Len(t, items, 1)

		v, ok := items[0].GetParameter("amount")
		require.True(t, ok)
		assert.Equal(t, json.Number("115792089237316195423570985008687907853269984665640564039457584007913129639935"), v)
	})

	t.Run("Array yields one item per object", func(t *testing.T) {
		items, err := ParseParams([]byte(`[{"a":"1"},{"a":"2"},{}]`))
		require.NoError(t, err)
		require.Len(t, items, 3)
		v, _ := items[1].GetParameter("a")
		assert.Equal(t, "2", v)
		_, ok := items[2].GetParameter("a")
		assert.False(t, ok)
	})

	t.Run("Malformed JSON is a validation error", func(t *testing.T) {
		_, err := ParseParams([]byte(`{"a":`))
		var validation *errorTypes.ValidationError
		require.ErrorAs(t, err, &validation)
	})
}

func Test_RecordSink(t *testing.T) {
	r := records.New().Set("event", "Deposit").Set("blockNumber", uint64(10))

	t.Run("JSON writes one line per record", func(t *testing.T) {
		var buf bytes.Buffer
		sink, err := newRecordSink(&buf, "json")
		require.NoError(t, err)
		require.NoError(t, sink.Write([]*records.Record{r, r}))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.JSONEq(t, `{"event":"Deposit","blockNumber":"10"}`, lines[0])
	})

	t.Run("CSV writes a header once", func(t *testing.T) {
		var buf bytes.Buffer
		sink, err := newRecordSink(&buf, "csv")
		require.NoError(t, err)
		require.NoError(t, sink.Write([]*records.Record{r}))
		require.NoError(t, sink.Write([]*records.Record{r}))
		assert.Equal(t, 1, strings.Count(buf.String(), "event,network"))
	})

	t.Run("Unknown format", func(t *testing.T) {
		_, err := newRecordSink(&bytes.Buffer{}, "xml")
		var cfgErr *errorTypes.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	})
}
