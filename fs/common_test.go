package fs_test

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/boltdb/bolt"

	"tux3.org/tux3/db"
	"tux3.org/tux3/fs"
	"tux3.org/tux3/kv/kvmock"
)

type env struct {
	path  string
	DB    *db.DB
	Store *kvmock.InMemory
	VolID db.VolumeID
}

func newEnv(t testing.TB) *env {
	f, err := ioutil.TempFile("", "tux3-test-db-")
	if err != nil {
		t.Fatalf("cannot create temp file: %v", err)
	}
	path := f.Name()
	f.Close()

	database, err := db.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Nanosecond})
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	e := &env{
		path:  path,
		DB:    database,
		Store: &kvmock.InMemory{},
	}
	create := func(tx *db.Tx) error {
		v, err := tx.Volumes().Create("default")
		if err != nil {
			return err
		}
		v.VolumeID(&e.VolID)
		return nil
	}
	if err := database.Update(create); err != nil {
		t.Fatalf("volume create: %v", err)
	}
	return e
}

func (e *env) Close() {
	defer os.Remove(e.path)
	e.DB.Close()
}

func (e *env) Open(t testing.TB) *fs.Volume {
	vol, err := fs.Open(e.DB, e.Store, &e.VolID)
	if err != nil {
		t.Fatalf("fs open: %v", err)
	}
	return vol
}
