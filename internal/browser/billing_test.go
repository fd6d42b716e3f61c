package browser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUsage(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		used      float64
		purchased float64
	}{
		{name: "data packs", text: "13,929.6 GB of 17,400 GB (29 data packs)", used: 13929.6, purchased: 17400},
		{name: "leading label", text: "Storage: 0.5 GB of 50 GB", used: 0.5, purchased: 50},
		{name: "surrounding space", text: "  12 GB of 50 GB\n", used: 12, purchased: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			used, purchased, err := ParseUsage(tt.text)

			require.NoError(t, err)
			assert.Equal(t, tt.used, used)
			assert.Equal(t, tt.purchased, purchased)
		})
	}
}

func TestParseUsage_Unparsable(t *testing.T) {
	for _, text := range []string{"", "no numbers here", "1.2.3 GB of 5 GB"} {
		_, _, err := ParseUsage(text)

		assert.ErrorIs(t, err, ErrUnparsableUsage, text)
	}
}

func TestUsage_JSON(t *testing.T) {
	b, err := json.Marshal(Usage{StorageUsed: 1.5, StoragePurchased: 50, BandwidthUsed: 2, BandwidthPurchased: 50, Time: "2024-05-01 09:30"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"sp_used":1.5,"sp_purchased":50,"bw_used":2,"bw_purchased":50,"time":"2024-05-01 09:30"}`, string(b))
}
