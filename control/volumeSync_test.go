package control_test

import (
	"path/filepath"
	"testing"

	"golang.org/x/net/context"
	"google.golang.org/grpc/codes"

	"tux3.org/tux3/control/wire"
	"tux3.org/tux3/fs"
	"tux3.org/tux3/fs/delta"
	"tux3.org/tux3/server"
	"tux3.org/tux3/util/grpcunix"
	"tux3.org/tux3/util/tempdir"
)

func TestVolumeSync(t *testing.T) {
	tmp := tempdir.New(t)
	defer tmp.Cleanup()
	app, err := server.New(tmp.Path,
		server.Flusher(fs.FlusherConfig{Mode: fs.ExternalDriven}))
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()
	defer controlListenAndServe(t, app)()

	if _, err := app.CreateVolume("testvol"); err != nil {
		t.Fatal(err)
	}
	vol, err := app.GetVolumeByName("testvol")
	if err != nil {
		t.Fatal(err)
	}
	if err := vol.Write("greeting", []byte("hello")); err != nil {
		t.Fatal(err)
	}

	rpcConn, err := grpcunix.Dial(filepath.Join(app.DataDir, "control"))
	if err != nil {
		t.Fatal(err)
	}
	defer rpcConn.Close()
	rpcClient := wire.NewControlClient(rpcConn)

	ctx := context.Background()
	syncReq := &wire.VolumeSyncRequest{
		VolumeName: "testvol",
		Unify:      wire.Unify_NONE,
	}
	if _, err := rpcClient.VolumeSync(ctx, syncReq); err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if g, e := vol.Committed(), delta.Epoch(1); g != e {
		t.Errorf("committed delta: %v != %v", g, e)
	}
}

func TestVolumeSyncNotFound(t *testing.T) {
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
	syncReq := &wire.VolumeSyncRequest{
		VolumeName: "nosuch",
	}
	_, err = rpcClient.VolumeSync(ctx, syncReq)
	if err == nil {
		t.Fatalf("sync of unknown volume should have failed")
	}
	if err := checkRPCError(err, codes.InvalidArgument, "volume name not found"); err != nil {
		t.Error(err)
	}
}

func TestVolumeSyncForceExternalFlusher(t *testing.T) {
	tmp := tempdir.New(t)
	defer tmp.Cleanup()
	app, err := server.New(tmp.Path,
		server.Flusher(fs.FlusherConfig{Mode: fs.ExternalDriven}))
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()
	defer controlListenAndServe(t, app)()

	if _, err := app.CreateVolume("testvol"); err != nil {
		t.Fatal(err)
	}
	vol, err := app.GetVolumeByName("testvol")
	if err != nil {
		t.Fatal(err)
	}

	rpcConn, err := grpcunix.Dial(filepath.Join(app.DataDir, "control"))
	if err != nil {
		t.Fatal(err)
	}
	defer rpcConn.Close()
	rpcClient := wire.NewControlClient(rpcConn)

	ctx := context.Background()
	syncReq := &wire.VolumeSyncRequest{
		VolumeName: "testvol",
		Unify:      wire.Unify_FORCE,
	}
	if _, err := rpcClient.VolumeSync(ctx, syncReq); err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	// force was downgraded; an idle volume does not commit
	if g, e := vol.Committed(), delta.Epoch(0); g != e {
		t.Errorf("committed delta: %v != %v", g, e)
	}
}
