package control

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tux3.org/tux3/control/wire"
	"tux3.org/tux3/db"
)

func (c controlRPC) VolumeCreate(ctx context.Context, req *wire.VolumeCreateRequest) (*wire.VolumeCreateResponse, error) {
	volID, err := c.app.CreateVolume(req.VolumeName)
	if err != nil {
		switch err {
		case db.ErrVolNameInvalid:
			return nil, status.Errorf(codes.InvalidArgument, "%v", err)
		case db.ErrVolNameExist:
			return nil, status.Errorf(codes.AlreadyExists, "%v", err)
		}
		return nil, err
	}
	buf, err := volID.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return &wire.VolumeCreateResponse{VolumeId: buf}, nil
}
