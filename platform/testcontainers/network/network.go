package network

import (
	"context"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"
)

const projectLabel = "com.valoresposi.project"

// Network is a throwaway bridge network shared by the containers of one suite.
type Network struct {
	network *testcontainers.DockerNetwork
	project string
}

func NewNetwork(ctx context.Context, project string) (*Network, error) {
	nw, err := tcnetwork.New(ctx,
		tcnetwork.WithDriver(testcontainers.Bridge),
		tcnetwork.WithAttachable(),
		tcnetwork.WithLabels(map[string]string{projectLabel: project}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "create docker network for %s", project)
	}

	return &Network{network: nw, project: project}, nil
}

func (n *Network) Name() string {
	return n.network.Name
}

func (n *Network) Project() string {
	return n.project
}

func (n *Network) Remove(ctx context.Context) error {
	return errors.Wrapf(n.network.Remove(ctx), "remove docker network %s", n.network.Name)
}
