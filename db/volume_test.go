package db_test

import (
	"testing"

	"tux3.org/tux3/db"
	"tux3.org/tux3/fs/delta"
)

func TestVolumeCreate(t *testing.T) {
	DB := NewTestDB(t)
	defer DB.Close()

	var volID db.VolumeID
	create := func(tx *db.Tx) error {
		v, err := tx.Volumes().Create("default")
		if err != nil {
			return err
		}
		v.VolumeID(&volID)
		return nil
	}
	if err := DB.Update(create); err != nil {
		t.Fatalf("volume create: %v", err)
	}

	check := func(tx *db.Tx) error {
		v, err := tx.Volumes().GetByName("default")
		if err != nil {
			t.Fatalf("GetByName: %v", err)
		}
		var id db.VolumeID
		v.VolumeID(&id)
		if g, e := id, volID; g != e {
			t.Errorf("volume ID came back wrong: %v != %v", g, e)
		}
		committed, err := v.Committed()
		if err != nil {
			t.Fatalf("Committed: %v", err)
		}
		if g, e := committed, delta.Epoch(0); g != e {
			t.Errorf("new volume committed delta: %v != %v", g, e)
		}
		if _, err := tx.Volumes().GetByVolumeID(&volID); err != nil {
			t.Errorf("GetByVolumeID: %v", err)
		}
		return nil
	}
	if err := DB.View(check); err != nil {
		t.Fatal(err)
	}
}

func TestVolumeCreateDup(t *testing.T) {
	DB := NewTestDB(t)
	defer DB.Close()

	create := func(tx *db.Tx) error {
		if _, err := tx.Volumes().Create("default"); err != nil {
			return err
		}
		_, err := tx.Volumes().Create("default")
		if g, e := err, db.ErrVolNameExist; g != e {
			t.Errorf("expected ErrVolNameExist, got %v", err)
		}
		return nil
	}
	if err := DB.Update(create); err != nil {
		t.Fatal(err)
	}
}

func TestVolumeCreateBadName(t *testing.T) {
	DB := NewTestDB(t)
	defer DB.Close()

	create := func(tx *db.Tx) error {
		_, err := tx.Volumes().Create("")
		if g, e := err, db.ErrVolNameInvalid; g != e {
			t.Errorf("expected ErrVolNameInvalid, got %v", err)
		}
		return nil
	}
	if err := DB.Update(create); err != nil {
		t.Fatal(err)
	}
}

func TestVolumeGetNotFound(t *testing.T) {
	DB := NewTestDB(t)
	defer DB.Close()

	get := func(tx *db.Tx) error {
		_, err := tx.Volumes().GetByName("nosuch")
		if g, e := err, db.ErrVolNameNotFound; g != e {
			t.Errorf("expected ErrVolNameNotFound, got %v", err)
		}
		return nil
	}
	if err := DB.View(get); err != nil {
		t.Fatal(err)
	}
}

func TestVolumeCommittedRoundtrip(t *testing.T) {
	DB := NewTestDB(t)
	defer DB.Close()

	update := func(tx *db.Tx) error {
		v, err := tx.Volumes().Create("default")
		if err != nil {
			return err
		}
		return v.SetCommitted(delta.Epoch(7))
	}
	if err := DB.Update(update); err != nil {
		t.Fatalf("volume update: %v", err)
	}

	check := func(tx *db.Tx) error {
		v, err := tx.Volumes().GetByName("default")
		if err != nil {
			return err
		}
		committed, err := v.Committed()
		if err != nil {
			return err
		}
		if g, e := committed, delta.Epoch(7); g != e {
			t.Errorf("committed delta came back wrong: %v != %v", g, e)
		}
		return nil
	}
	if err := DB.View(check); err != nil {
		t.Fatal(err)
	}
}

func TestVolumeSegments(t *testing.T) {
	DB := NewTestDB(t)
	defer DB.Close()

	update := func(tx *db.Tx) error {
		v, err := tx.Volumes().Create("default")
		if err != nil {
			return err
		}
		segs := v.Segments()
		if err := segs.Add(delta.Epoch(1), []byte("h1")); err != nil {
			return err
		}
		if err := segs.Add(delta.Epoch(2), []byte("h2")); err != nil {
			return err
		}
		return nil
	}
	if err := DB.Update(update); err != nil {
		t.Fatalf("volume update: %v", err)
	}

	check := func(tx *db.Tx) error {
		v, err := tx.Volumes().GetByName("default")
		if err != nil {
			return err
		}
		segs := v.Segments()
		hash, err := segs.Get(delta.Epoch(2))
		if err != nil {
			t.Fatalf("segment get: %v", err)
		}
		if g, e := string(hash), "h2"; g != e {
			t.Errorf("segment hash came back wrong: %q != %q", g, e)
		}
		if _, err := segs.Get(delta.Epoch(3)); err != db.ErrSegmentNotFound {
			t.Errorf("expected ErrSegmentNotFound, got %v", err)
		}

		var seen []delta.Epoch
		err = segs.List(func(epoch delta.Epoch, hash []byte) error {
			seen = append(seen, epoch)
			return nil
		})
		if err != nil {
			t.Fatalf("segment list: %v", err)
		}
		if g, e := len(seen), 2; g != e {
			t.Fatalf("wrong number of segments: %v != %v", g, e)
		}
		if g, e := seen[0], delta.Epoch(1); g != e {
			t.Errorf("segments out of order: %v != %v", g, e)
		}
		return nil
	}
	if err := DB.View(check); err != nil {
		t.Fatal(err)
	}
}
