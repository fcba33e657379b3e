package main

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/levelgen/internal/config"
)

func TestRun_InvalidGeneratorSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Zones[0].Terrain = "marble"

	err := run(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "параметры генератора")
}

// Порт занят: run должен вернуть ошибку, а не зависнуть в ожидании сигнала.
func TestRun_ReturnsWhenServerFails(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := config.Default()
	cfg.Server.RESTPort = ln.Addr().(*net.TCPAddr).Port

	done := make(chan error, 1)
	go func() { done <- run(cfg) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "REST API")
	case <-time.After(10 * time.Second):
		t.Fatal("run did not return after listen failure")
	}
}
