package cli

import (
	"flag"

	"github.com/tv42/jog"
	"golang.org/x/net/context"

	"tux3.org/tux3/control"
	"tux3.org/tux3/control/wire"
	"tux3.org/tux3/fs"
	"tux3.org/tux3/server"
)

func serverRun(args []string) error {
	flags := flag.NewFlagSet("server run", flag.ContinueOnError)
	interval := flags.Duration("flush-interval", fs.DefaultFlushInterval, "time between delta commits")
	external := flags.Bool("external-flusher", false, "commit only on explicit sync, no periodic flusher")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if flags.NArg() != 0 {
		return errUsage
	}

	flusher := fs.FlusherConfig{
		Mode:     fs.SelfDriven,
		Interval: *interval,
	}
	if *external {
		flusher = fs.FlusherConfig{Mode: fs.ExternalDriven}
	}

	options := []server.AppOption{
		server.Flusher(flusher),
	}
	if Tux3.Debug {
		log := jog.New(nil)
		options = append(options, server.Debug(log.Event))
	}

	app, err := server.New(Tux3.DataDir, options...)
	if err != nil {
		return err
	}
	defer app.Close()

	c, err := control.New(app)
	if err != nil {
		return err
	}
	defer c.Close()
	return c.Serve()
}

func serverPing(args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	rpcConn, err := dialControl()
	if err != nil {
		return err
	}
	defer rpcConn.Close()
	rpcClient := wire.NewControlClient(rpcConn)

	ctx := context.Background()
	_, err = rpcClient.Ping(ctx, &wire.PingRequest{})
	return err
}
