package rpc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/wally-yu/binance-dex/api"
)

func healthServer(t *testing.T, status int) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

type peerList []api.Peer

func (p peerList) GetPeers(context.Context) ([]api.Peer, error) { return p, nil }

type failingPeers struct{}

func (failingPeers) GetPeers(context.Context) ([]api.Peer, error) {
	return nil, errors.New("api is down")
}

func TestFindHealthyNode(t *testing.T) {
	sick := healthServer(t, http.StatusInternalServerError)
	healthy := healthServer(t, http.StatusOK)
	ws := healthServer(t, http.StatusOK)

	peers := []api.Peer{
		{ID: "ws", ListenAddr: ws.URL, Capabilities: []string{"ws"}},
		{ID: "sick", ListenAddr: sick.URL, Capabilities: []string{"node"}},
		{ID: "healthy", ListenAddr: healthy.URL, Capabilities: []string{"node", "qs"}},
	}
	c, err := FindHealthyNode(context.Background(), peers, Options{})
	require.NoError(t, err)
	require.Equal(t, healthy.URL, c.Endpoint())

	t.Run("discover", func(t *testing.T) {
		c, err := Discover(context.Background(), peerList(peers), Options{})
		require.NoError(t, err)
		require.Equal(t, healthy.URL, c.Endpoint())

		_, err = Discover(context.Background(), failingPeers{}, Options{})
		require.EqualError(t, err, "api is down")
	})

	t.Run("none healthy", func(t *testing.T) {
		sick2 := healthServer(t, http.StatusServiceUnavailable)
		_, err := FindHealthyNode(context.Background(), []api.Peer{
			{ListenAddr: sick.URL, Capabilities: []string{"node"}},
			{ListenAddr: sick2.URL, Capabilities: []string{"node"}},
		}, Options{})
		require.ErrorIs(t, err, ErrNoHealthyNode)
		var wrapped interface{ Unwrap() []error }
		require.True(t, errors.As(err, &wrapped))
		require.Len(t, multierr.Errors(wrapped.Unwrap()[1]), 2)
		require.Contains(t, err.Error(), "HTTP 500")
		require.Contains(t, err.Error(), "HTTP 503")
	})

	t.Run("no node peers", func(t *testing.T) {
		_, err := FindHealthyNode(context.Background(), peers[:1], Options{})
		require.ErrorIs(t, err, ErrNoHealthyNode)
	})
}
