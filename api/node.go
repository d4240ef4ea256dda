package api

import (
	"context"
	"fmt"
)

// GetTime fetches the API server time and the latest block time
func (c *Client) GetTime(ctx context.Context) (*Times, error) {
	var t Times
	if err := c.getJSON(ctx, "time", nil, &t); err != nil {
		return nil, fmt.Errorf("failed to fetch time: %w", err)
	}
	return &t, nil
}

// GetNodeInfo fetches the state of the node serving the API
func (c *Client) GetNodeInfo(ctx context.Context) (*ResultStatus, error) {
	var s ResultStatus
	if err := c.getJSON(ctx, "node-info", nil, &s); err != nil {
		return nil, fmt.Errorf("failed to fetch node info: %w", err)
	}
	return &s, nil
}

// GetValidators fetches the current validator set
func (c *Client) GetValidators(ctx context.Context) (*Validators, error) {
	var v Validators
	if err := c.getJSON(ctx, "validators", nil, &v); err != nil {
		return nil, fmt.Errorf("failed to fetch validators: %w", err)
	}
	return &v, nil
}

// GetPeers fetches the network peers
func (c *Client) GetPeers(ctx context.Context) ([]Peer, error) {
	var peers []Peer
	if err := c.getJSON(ctx, "peers", nil, &peers); err != nil {
		return nil, fmt.Errorf("failed to fetch peers: %w", err)
	}
	return peers, nil
}
