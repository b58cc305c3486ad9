package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"robux_topup/pkg/probe"
)

type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
	// Ready is optional. When set, /ready reports its result.
	Ready func(ctx context.Context) error
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
	)

	if p.Ready != nil {
		probeServer = probeServer.WithReadiness(p.Ready)
	}

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
