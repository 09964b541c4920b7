package cli

import (
	"flag"
	"fmt"
	"strings"

	"golang.org/x/net/context"

	"tux3.org/tux3/control/wire"
	"tux3.org/tux3/db"
)

func volumeCreate(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	rpcConn, err := dialControl()
	if err != nil {
		return err
	}
	defer rpcConn.Close()
	rpcClient := wire.NewControlClient(rpcConn)

	ctx := context.Background()
	resp, err := rpcClient.VolumeCreate(ctx, &wire.VolumeCreateRequest{
		VolumeName: args[0],
	})
	if err != nil {
		return err
	}
	var volID db.VolumeID
	if err := volID.UnmarshalBinary(resp.VolumeId); err != nil {
		return err
	}
	fmt.Println(volID.String())
	return nil
}

func volumeSync(args []string) error {
	flags := flag.NewFlagSet("volume sync", flag.ContinueOnError)
	unify := flags.String("unify", "allow", "unify mode: allow, none or force")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if flags.NArg() != 1 {
		return errUsage
	}
	mode, ok := wire.Unify_value[strings.ToUpper(*unify)]
	if !ok {
		return fmt.Errorf("bad unify mode: %q", *unify)
	}

	rpcConn, err := dialControl()
	if err != nil {
		return err
	}
	defer rpcConn.Close()
	rpcClient := wire.NewControlClient(rpcConn)

	ctx := context.Background()
	_, err = rpcClient.VolumeSync(ctx, &wire.VolumeSyncRequest{
		VolumeName: flags.Arg(0),
		Unify:      wire.Unify(mode),
	})
	return err
}
