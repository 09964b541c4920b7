package control

import (
	"context"

	"tux3.org/tux3/control/wire"
)

func (c controlRPC) Ping(ctx context.Context, req *wire.PingRequest) (*wire.PingResponse, error) {
	return &wire.PingResponse{}, nil
}
