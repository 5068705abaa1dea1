package scheduler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlourenco/commission-api/internal/config"
)

func TestKeepAliveService_StartDesabilitado(t *testing.T) {
	service := NewKeepAliveService(&config.Config{
		KeepAlive: config.KeepAlive{
			CronSchedule: "*/10 * * * *",
			Enabled:      false,
		},
	})

	// Desabilitado não agenda nada e não retorna erro
	err := service.Start(context.Background())
	assert.NoError(t, err)
}

func TestKeepAliveService_Ping(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	service := NewKeepAliveService(&config.Config{
		KeepAlive: config.KeepAlive{
			CronSchedule: "*/10 * * * *",
			TargetURL:    server.URL,
			Enabled:      true,
		},
	})

	service.ping()

	assert.Equal(t, 1, hits)

	lastPingAt, lastPingErr := service.LastPing()
	assert.False(t, lastPingAt.IsZero())
	assert.NoError(t, lastPingErr)
}

func TestKeepAliveService_PingComFalha(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	service := NewKeepAliveService(&config.Config{
		KeepAlive: config.KeepAlive{
			CronSchedule: "*/10 * * * *",
			TargetURL:    server.URL,
			Enabled:      true,
		},
	})

	service.ping()

	_, lastPingErr := service.LastPing()
	require.Error(t, lastPingErr)
}
