// Package server runs the tux3 server: one process owning the data
// directory, its database and its open volumes.
package server

import (
	"os"
	"path/filepath"
	"sync"

	"tux3.org/tux3/db"
	"tux3.org/tux3/fs"
	"tux3.org/tux3/kv/kvfiles"
)

type App struct {
	DataDir  string
	lockFile *os.File
	DB       *db.DB

	flusher fs.FlusherConfig
	debug   func(msg interface{})

	volumes struct {
		sync.Mutex
		open map[db.VolumeID]*fs.Volume
	}
}

func New(dataDir string, options ...AppOption) (app *App, err error) {
	var conf appConfig
	for _, option := range options {
		if err := option(&conf); err != nil {
			return nil, err
		}
	}

	err = os.Mkdir(dataDir, 0700)
	if err != nil && !os.IsExist(err) {
		return nil, err
	}

	lockPath := filepath.Join(dataDir, "lock")
	lockFile, err := lock(lockPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			// if we're reporting an error, also unlock
			_ = lockFile.Close()
		}
	}()

	kvpath := filepath.Join(dataDir, "segments")
	err = kvfiles.Create(kvpath)
	if err != nil {
		return nil, err
	}

	dbpath := filepath.Join(dataDir, "tux3.bolt")
	database, err := db.Open(dbpath, 0600, nil)
	if err != nil {
		return nil, err
	}

	app = &App{
		DataDir:  dataDir,
		lockFile: lockFile,
		DB:       database,
		flusher:  conf.flusher,
		debug:    conf.debug,
	}
	app.volumes.open = make(map[db.VolumeID]*fs.Volume)
	return app, nil
}

// Close shuts down open volumes, committing their buffered writes,
// and releases the data directory.
func (app *App) Close() error {
	app.volumes.Lock()
	var firstErr error
	for _, vol := range app.volumes.open {
		if err := vol.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	app.volumes.open = make(map[db.VolumeID]*fs.Volume)
	app.volumes.Unlock()

	app.DB.Close()
	app.lockFile.Close()
	return firstErr
}

// CreateVolume makes a new empty volume.
func (app *App) CreateVolume(name string) (*db.VolumeID, error) {
	var volID db.VolumeID
	create := func(tx *db.Tx) error {
		v, err := tx.Volumes().Create(name)
		if err != nil {
			return err
		}
		v.VolumeID(&volID)
		return nil
	}
	if err := app.DB.Update(create); err != nil {
		return nil, err
	}
	return &volID, nil
}

// GetVolume returns the volume, opening it if it is not open yet. An
// opened volume stays open, with its flusher running, until the app
// closes.
func (app *App) GetVolume(volID *db.VolumeID) (*fs.Volume, error) {
	app.volumes.Lock()
	defer app.volumes.Unlock()
	if vol, ok := app.volumes.open[*volID]; ok {
		return vol, nil
	}
	kvpath := filepath.Join(app.DataDir, "segments")
	store, err := kvfiles.Open(kvpath)
	if err != nil {
		return nil, err
	}
	vol, err := fs.Open(app.DB, store, volID)
	if err != nil {
		return nil, err
	}
	vol.InitFlusher(app.flusher)
	app.volumes.open[*volID] = vol
	if app.debug != nil {
		app.debug(struct {
			Open db.VolumeID
		}{Open: *volID})
	}
	return vol, nil
}

// GetVolumeByName looks up the volume ID for name and opens the
// volume.
func (app *App) GetVolumeByName(name string) (*fs.Volume, error) {
	var volID db.VolumeID
	view := func(tx *db.Tx) error {
		v, err := tx.Volumes().GetByName(name)
		if err != nil {
			return err
		}
		v.VolumeID(&volID)
		return nil
	}
	if err := app.DB.View(view); err != nil {
		return nil, err
	}
	return app.GetVolume(&volID)
}
