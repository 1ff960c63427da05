package savefile

import "errors"

var (
	ErrUnknownGame   = errors.New("unknown game")
	ErrMalformed     = errors.New("malformed save data")
	ErrUnknownFormat = errors.New("unknown import format")
)
