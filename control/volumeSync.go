package control

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tux3.org/tux3/control/wire"
	"tux3.org/tux3/db"
	"tux3.org/tux3/fs/delta"
)

func (c controlRPC) VolumeSync(ctx context.Context, req *wire.VolumeSyncRequest) (*wire.VolumeSyncResponse, error) {
	var unify delta.Unify
	switch req.Unify {
	case wire.Unify_ALLOW:
		unify = delta.UnifyAllow
	case wire.Unify_NONE:
		unify = delta.UnifyNone
	case wire.Unify_FORCE:
		unify = delta.UnifyForce
	default:
		return nil, status.Errorf(codes.InvalidArgument, "bad unify mode: %v", req.Unify)
	}

	vol, err := c.app.GetVolumeByName(req.VolumeName)
	if err != nil {
		if err == db.ErrVolNameNotFound {
			return nil, status.Errorf(codes.InvalidArgument, "%v", err)
		}
		return nil, err
	}

	if err := vol.Sync(ctx, unify); err != nil {
		return nil, err
	}
	return &wire.VolumeSyncResponse{}, nil
}
