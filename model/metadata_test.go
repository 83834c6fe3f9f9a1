package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataScan(t *testing.T) {
	t.Run("Scan nil yields empty metadata", func(t *testing.T) {
		var m Metadata
		err := m.Scan(nil)

		require.NoError(t, err)
		assert.NotNil(t, m)
		assert.Empty(t, m)
	})

	t.Run("Scan JSON bytes", func(t *testing.T) {
		var m Metadata
		err := m.Scan([]byte(`{"source": "crm_ui"}`))

		require.NoError(t, err)
		assert.Equal(t, "crm_ui", m["source"])
	})

	t.Run("Scan rejects non-byte values", func(t *testing.T) {
		var m Metadata
		err := m.Scan(42)

		assert.Error(t, err)
	})
}

func TestMetadataValue(t *testing.T) {
	t.Run("Value produces JSON", func(t *testing.T) {
		m := Metadata{"source": "demo_ui"}

		value, err := m.Value()

		require.NoError(t, err)
		assert.JSONEq(t, `{"source": "demo_ui"}`, string(value.([]byte)))
	})
}
