package control_test

import (
	"path/filepath"
	"testing"

	"golang.org/x/net/context"
	"google.golang.org/grpc/codes"

	"tux3.org/tux3/control/wire"
	"tux3.org/tux3/db"
	"tux3.org/tux3/server"
	"tux3.org/tux3/util/grpcunix"
	"tux3.org/tux3/util/tempdir"
)

func TestVolumeCreate(t *testing.T) {
	tmp := tempdir.New(t)
	defer tmp.Cleanup()
	app, err := server.New(tmp.Path)
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()
	defer controlListenAndServe(t, app)()

	rpcConn, err := grpcunix.Dial(filepath.Join(app.DataDir, "control"))
	if err != nil {
		t.Fatal(err)
	}
	defer rpcConn.Close()
	rpcClient := wire.NewControlClient(rpcConn)

	ctx := context.Background()
	resp, err := rpcClient.VolumeCreate(ctx, &wire.VolumeCreateRequest{
		VolumeName: "testvol",
	})
	if err != nil {
		t.Fatalf("creating volume failed: %v", err)
	}
	if g, e := len(resp.VolumeId), db.VolumeIDLen; g != e {
		t.Errorf("bad volume id length: %v != %v", g, e)
	}

	var volID db.VolumeID
	if err := volID.UnmarshalBinary(resp.VolumeId); err != nil {
		t.Fatalf("bad volume id: %v", err)
	}
	check := func(tx *db.Tx) error {
		v, err := tx.Volumes().GetByName("testvol")
		if err != nil {
			return err
		}
		var stored db.VolumeID
		v.VolumeID(&stored)
		if g, e := stored, volID; g != e {
			t.Errorf("stored volume id: %v != %v", g, e)
		}
		return nil
	}
	if err := app.DB.View(check); err != nil {
		t.Fatal(err)
	}
}

func TestVolumeCreateDup(t *testing.T) {
	tmp := tempdir.New(t)
	defer tmp.Cleanup()
	app, err := server.New(tmp.Path)
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()
	defer controlListenAndServe(t, app)()

	rpcConn, err := grpcunix.Dial(filepath.Join(app.DataDir, "control"))
	if err != nil {
		t.Fatal(err)
	}
	defer rpcConn.Close()
	rpcClient := wire.NewControlClient(rpcConn)

	ctx := context.Background()
	req := &wire.VolumeCreateRequest{VolumeName: "testvol"}
	if _, err := rpcClient.VolumeCreate(ctx, req); err != nil {
		t.Fatalf("creating volume failed: %v", err)
	}
	_, err = rpcClient.VolumeCreate(ctx, req)
	if err == nil {
		t.Fatalf("duplicate volume create should have failed")
	}
	if err := checkRPCError(err, codes.AlreadyExists, "volume name exists already"); err != nil {
		t.Error(err)
	}
}

func TestVolumeCreateBadName(t *testing.T) {
	tmp := tempdir.New(t)
	defer tmp.Cleanup()
	app, err := server.New(tmp.Path)
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()
	defer controlListenAndServe(t, app)()

	rpcConn, err := grpcunix.Dial(filepath.Join(app.DataDir, "control"))
	if err != nil {
		t.Fatal(err)
	}
	defer rpcConn.Close()
	rpcClient := wire.NewControlClient(rpcConn)

	ctx := context.Background()
	_, err = rpcClient.VolumeCreate(ctx, &wire.VolumeCreateRequest{})
	if err == nil {
		t.Fatalf("empty volume name should have failed")
	}
	if err := checkRPCError(err, codes.InvalidArgument, "invalid volume name"); err != nil {
		t.Error(err)
	}
}
