// Package grpcunix dials grpc connections over unix domain sockets.
package grpcunix

import (
	"net"
	"time"

	"golang.org/x/net/context"
	"google.golang.org/grpc"
)

func dialer(ctx context.Context, addr string) (net.Conn, error) {
	var d net.Dialer
	if deadline, ok := ctx.Deadline(); ok {
		d.Timeout = time.Until(deadline)
	}
	return d.Dial("unix", addr)
}

// Dial connects to the grpc server listening on the unix domain
// socket at path.
func Dial(path string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append(opts,
		grpc.WithInsecure(),
		grpc.WithContextDialer(dialer),
	)
	return grpc.Dial(path, opts...)
}
