package iostreams

import "github.com/rs/zerolog"

// Logger provides diagnostic file logging for the command layer.
// *zerolog.Logger and logger.Component satisfy it, and it is a superset
// of progress.Logger so it can be handed to progress sessions as is.
type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
}
