package nodeclient

import (
	"context"

	"golang.org/x/sync/errgroup"
)

func (c *Client) GetNodeInfo(ctx context.Context) (*NodeInfo, error) {
	info := &NodeInfo{}
	if err := c.get(ctx, "/node/info", info); err != nil {
		return nil, err
	}
	return info, nil
}

func (c *Client) GetNetworkProperties(ctx context.Context) (*NetworkProperties, error) {
	props := &NetworkProperties{}
	if err := c.get(ctx, "/network/properties", props); err != nil {
		return nil, err
	}
	return props, nil
}

func (c *Client) GetTransactionFees(ctx context.Context) (*TransactionFees, error) {
	fees := &TransactionFees{}
	if err := c.get(ctx, "/network/fees/transaction", fees); err != nil {
		return nil, err
	}
	return fees, nil
}

func (c *Client) GetChainHeight(ctx context.Context) (uint64, error) {
	info := &ChainInfo{}
	if err := c.get(ctx, "/chain/info", info); err != nil {
		return 0, err
	}
	return info.GetHeight()
}

// Snapshot is the state of the network as seen by a node at a given height.
type Snapshot struct {
	NodeInfo          *NodeInfo
	NetworkProperties *NetworkProperties
	TransactionFees   *TransactionFees
	ChainHeight       uint64
}

// GetNetworkSnapshot fetches all the node resources concurrently. The first
// failing request cancels the others.
func (c *Client) GetNetworkSnapshot(ctx context.Context) (*Snapshot, error) {
	snapshot := &Snapshot{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snapshot.NodeInfo, err = c.GetNodeInfo(gctx)
		return
	})
	g.Go(func() (err error) {
		snapshot.NetworkProperties, err = c.GetNetworkProperties(gctx)
		return
	})
	g.Go(func() (err error) {
		snapshot.TransactionFees, err = c.GetTransactionFees(gctx)
		return
	})
	g.Go(func() (err error) {
		snapshot.ChainHeight, err = c.GetChainHeight(gctx)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshot, nil
}
