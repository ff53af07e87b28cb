package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightbrief/pirep-etl-service/internal/domain"
)

func TestDecodeCSV(t *testing.T) {
	t.Run("header row names fields", func(t *testing.T) {
		payload := "station,temp_c,pressure_psi\nKOKC,100,14.7\nKDFW,20,14.0\n"

		records, err := DecodeCSV(strings.NewReader(payload))
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, domain.RawRecord{"station": "KOKC", "temp_c": "100", "pressure_psi": "14.7"}, records[0])
		assert.Equal(t, "14.0", records[1]["pressure_psi"])
	})

	t.Run("blank cells are omitted", func(t *testing.T) {
		payload := "station,temp_c,pressure_psi\nKOKC,,14.7\n"

		records, err := DecodeCSV(strings.NewReader(payload))
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.False(t, records[0].Has("temp_c"))
		assert.True(t, records[0].Has("pressure_psi"))
	})

	t.Run("header only yields zero records", func(t *testing.T) {
		records, err := DecodeCSV(strings.NewReader("station,temp_c\n"))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("empty payload is structural", func(t *testing.T) {
		_, err := DecodeCSV(strings.NewReader(""))
		require.ErrorIs(t, err, ErrBadPayload)
	})

	t.Run("ragged row is structural", func(t *testing.T) {
		payload := "station,temp_c\nKOKC,100,extra\n"

		_, err := DecodeCSV(strings.NewReader(payload))
		require.ErrorIs(t, err, ErrBadPayload)
		assert.Contains(t, err.Error(), "row 2")
	})
}

func TestDecodeJSON(t *testing.T) {
	t.Run("array of flat objects", func(t *testing.T) {
		payload := `[{"station":"KOKC","temp_c":100,"pressure_psi":14.7},{"station":"KDFW","temp_c":20.5}]`

		records, err := DecodeJSON(strings.NewReader(payload))
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, "100", records[0]["temp_c"])
		assert.Equal(t, "14.7", records[0]["pressure_psi"])
		assert.Equal(t, "20.5", records[1]["temp_c"])
	})

	t.Run("null and nested values are omitted", func(t *testing.T) {
		payload := `[{"station":"KOKC","temp_c":null,"tags":["a","b"]}]`

		records, err := DecodeJSON(strings.NewReader(payload))
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.False(t, records[0].Has("temp_c"))
		assert.False(t, records[0].Has("tags"))
		assert.Equal(t, "KOKC", records[0]["station"])
	})

	t.Run("empty array yields zero records", func(t *testing.T) {
		records, err := DecodeJSON(strings.NewReader("[]"))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("top-level object is structural", func(t *testing.T) {
		_, err := DecodeJSON(strings.NewReader(`{"station":"KOKC"}`))
		require.ErrorIs(t, err, ErrBadPayload)
	})

	t.Run("malformed JSON is structural", func(t *testing.T) {
		_, err := DecodeJSON(strings.NewReader("[{"))
		require.ErrorIs(t, err, ErrBadPayload)
	})
}
