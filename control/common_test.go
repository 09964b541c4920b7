package control_test

import (
	"fmt"
	"sync"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"

	"tux3.org/tux3/control/controltest"
	"tux3.org/tux3/server"
)

func checkRPCError(err error, code codes.Code, message string) error {
	if g, e := grpc.Code(err), code; g != e {
		return fmt.Errorf("wrong grpc error code: %v != %v", g, e)
	}
	if g, e := grpc.ErrorDesc(err), message; g != e {
		return fmt.Errorf("wrong error message: %v != %v", g, e)
	}
	return nil
}

func controlListenAndServe(t testing.TB, app *server.App) (cleanup func()) {
	var wg sync.WaitGroup
	c := controltest.ListenAndServe(t, &wg, app)
	return func() {
		c.Close()
		wg.Wait()
	}
}
