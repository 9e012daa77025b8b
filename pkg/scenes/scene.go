package scenes

import (
	"github.com/decker502/thiep2010/pkg/game"
)

// Scene is a type alias for game.Scene so callers can depend on the scenes package only.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene
