package engine

import "errors"

// Intent rejections
var (
	ErrDead     = errors.New("engine: player is dead")
	ErrComplete = errors.New("engine: level is complete")
	ErrHeld     = errors.New("engine: waiting for message acknowledgement")
	ErrBusy     = errors.New("engine: entities still moving")
)
