package rpc

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wally-yu/binance-dex/api"
)

// NodeCapability marks peers that serve the node RPC.
const NodeCapability = "node"

// ErrNoHealthyNode is returned when none of the candidate peers is healthy.
var ErrNoHealthyNode = errors.New("no healthy node found")

// PeerLister provides the peers of a network, api.Client implements it.
type PeerLister interface {
	GetPeers(ctx context.Context) ([]api.Peer, error)
}

// FindHealthyNode returns a client for the first node-capable peer that
// passes a health check. If none does, the error wraps ErrNoHealthyNode and
// every failure.
func FindHealthyNode(ctx context.Context, peers []api.Peer, opts Options) (*Client, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	var errs error
	for _, p := range peers {
		if !p.HasCapability(NodeCapability) || p.ListenAddr == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := NewChecked(ctx, p.ListenAddr, opts)
		if err == nil {
			log.Debug("found healthy node", zap.String("id", p.ID), zap.String("addr", p.ListenAddr))
			return c, nil
		}
		log.Debug("node is not usable", zap.String("addr", p.ListenAddr), zap.Error(err))
		errs = multierr.Append(errs, err)
	}
	if errs == nil {
		return nil, ErrNoHealthyNode
	}
	return nil, fmt.Errorf("%w: %w", ErrNoHealthyNode, errs)
}

// Discover fetches the peers of a network and returns a client for the first
// healthy node among them.
func Discover(ctx context.Context, peers PeerLister, opts Options) (*Client, error) {
	list, err := peers.GetPeers(ctx)
	if err != nil {
		return nil, err
	}
	return FindHealthyNode(ctx, list, opts)
}
