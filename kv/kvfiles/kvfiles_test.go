package kvfiles_test

import (
	"fmt"
	"io/ioutil"
	"testing"

	"golang.org/x/net/context"

	"tux3.org/tux3/kv"
	"tux3.org/tux3/kv/kvfiles"
	"tux3.org/tux3/util/tempdir"
)

func TestAdd(t *testing.T) {
	temp := tempdir.New(t)
	defer temp.Cleanup()

	k, err := kvfiles.Open(temp.Path)
	if err != nil {
		t.Fatalf("kvfiles.Open fail: %v\n", err)
	}

	ctx := context.Background()
	err = k.Put(ctx, []byte("quux"), []byte("foobar"))
	if err != nil {
		t.Fatalf("c.Put fail: %v\n", err)
	}
}

func TestGet(t *testing.T) {
	temp := tempdir.New(t)
	defer temp.Cleanup()

	c, err := kvfiles.Open(temp.Path)
	if err != nil {
		t.Fatalf("kvfiles.Open fail: %v\n", err)
	}

	ctx := context.Background()
	err = c.Put(ctx, []byte("quux"), []byte("foobar"))
	if err != nil {
		t.Fatalf("c.Put fail: %v\n", err)
	}

	data, err := c.Get(ctx, []byte("quux"))
	if err != nil {
		t.Fatalf("c.Get failed: %v", err)
	}
	if g, e := string(data), "foobar"; g != e {
		t.Fatalf("c.Get gave wrong content: %q != %q", g, e)
	}
}

func TestGetMissing(t *testing.T) {
	temp := tempdir.New(t)
	defer temp.Cleanup()

	c, err := kvfiles.Open(temp.Path)
	if err != nil {
		t.Fatalf("kvfiles.Open fail: %v\n", err)
	}

	ctx := context.Background()
	_, err = c.Get(ctx, []byte("quux"))
	if _, ok := err.(kv.NotFoundError); !ok {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func openFiles(t testing.TB) int {
	fds, err := ioutil.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skipf("cannot enumerate open files: %v", err)
	}
	return len(fds)
}

func TestPutClosesTempFile(t *testing.T) {
	temp := tempdir.New(t)
	defer temp.Cleanup()

	k, err := kvfiles.Open(temp.Path)
	if err != nil {
		t.Fatalf("kvfiles.Open fail: %v\n", err)
	}

	ctx := context.Background()
	before := openFiles(t)
	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("key-%d", i)
		err = k.Put(ctx, []byte(key), []byte("foobar"))
		if err != nil {
			t.Fatalf("k.Put fail: %v\n", err)
		}
	}
	if g, e := openFiles(t), before; g != e {
		t.Errorf("Put leaks file descriptors: %d != %d", g, e)
	}
}

func TestPutOverwrite(t *testing.T) {
	temp := tempdir.New(t)
	defer temp.Cleanup()

	k, err := kvfiles.Open(temp.Path)
	if err != nil {
		t.Fatalf("kvfiles.Open fail: %v\n", err)
	}

	ctx := context.Background()
	err = k.Put(ctx, []byte("quux"), []byte("foobar"))
	if err != nil {
		t.Fatalf("k.Put fail: %v\n", err)
	}

	err = k.Put(ctx, []byte("quux"), []byte("foobar"))
	if err != nil {
		t.Fatalf("k.Put fail: %v\n", err)
	}
}
