package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quiltanddrapes/fabrication-api/internal/config"
)

func TestClient_IsEnabled_NilClient(t *testing.T) {
	var nilClient *Client
	assert.False(t, nilClient.IsEnabled())
}

func TestClient_Close_NilClient(t *testing.T) {
	var nilClient *Client
	assert.NoError(t, nilClient.Close())
}

func TestClient_HealthCheck_NilClient(t *testing.T) {
	var nilClient *Client
	status := nilClient.HealthCheck(context.Background())
	require.NotNil(t, status)
	assert.Equal(t, "disabled", status.Status)
}

func TestNewClient_Disabled(t *testing.T) {
	client, err := NewClient(&config.LedgerConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewClient_MissingCredentials(t *testing.T) {
	client, err := NewClient(&config.LedgerConfig{
		Enabled: true,
		URL:     "ledger.local:1433/accounts",
	}, zap.NewNop())
	require.NoError(t, err, "missing credentials skip the connection rather than failing startup")
	assert.Nil(t, client)
}

func TestBuildConnectionString(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantHost string
		wantDB   string
	}{
		{
			name:     "host port and database",
			url:      "ledger.local:1433/accounts",
			wantHost: "ledger.local:1433",
			wantDB:   "accounts",
		},
		{
			name:     "default port",
			url:      "ledger.local/accounts",
			wantHost: "ledger.local:1433",
			wantDB:   "accounts",
		},
		{
			name:     "no database",
			url:      "ledger.local:1433",
			wantHost: "ledger.local:1433",
			wantDB:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connStr, err := buildConnectionString(&config.LedgerConfig{
				URL:      tt.url,
				User:     "reader",
				Password: "secret",
			})
			require.NoError(t, err)
			assert.Contains(t, connStr, "sqlserver://")
			assert.Contains(t, connStr, tt.wantHost)
			if tt.wantDB != "" {
				assert.Contains(t, connStr, "database="+tt.wantDB)
			} else {
				assert.NotContains(t, connStr, "database=")
			}
		})
	}
}
