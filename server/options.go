package server

import (
	"tux3.org/tux3/fs"
)

type appOption func(*appConfig) error

type AppOption appOption

type appConfig struct {
	debug   func(msg interface{})
	flusher fs.FlusherConfig
}

func Debug(fn func(msg interface{})) AppOption {
	return func(conf *appConfig) error {
		conf.debug = fn
		return nil
	}
}

// Flusher sets commit scheduling for volumes opened by this app. The
// zero value runs a self-driven flusher with the default interval.
func Flusher(flusher fs.FlusherConfig) AppOption {
	return func(conf *appConfig) error {
		conf.flusher = flusher
		return nil
	}
}
