package cache

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// closedPort returns a local port with nothing listening on it.
func closedPort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func TestRedis_UnreachableServerBypassesCache(t *testing.T) {
	r := NewRedis(Config{Host: "127.0.0.1", Port: closedPort(t)}, nil)
	ctx := context.Background()

	assert.False(t, r.Available())
	assert.Error(t, r.Ping(ctx))

	require.NoError(t, r.SetJSON(ctx, "k", map[string]string{"a": "b"}, time.Minute))

	var out map[string]string
	hit, err := r.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, out)

	assert.NoError(t, r.Delete(ctx, "k"))
	assert.NoError(t, r.Close())
}

func TestRedis_NilReceiverIsUnavailable(t *testing.T) {
	var r *Redis
	assert.False(t, r.Available())
	hit, err := r.GetJSON(context.Background(), "k", &struct{}{})
	assert.NoError(t, err)
	assert.False(t, hit)
}
