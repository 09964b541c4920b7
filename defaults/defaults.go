// Package defaults knows the default locations for tux3 state.
package defaults

import (
	"github.com/Wessie/appdirs"
)

var app = appdirs.New("tux3", "", "")

// DataDir returns the default directory for tux3 filesystem state.
func DataDir() string {
	return app.UserData()
}
