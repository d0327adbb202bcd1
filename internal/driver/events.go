package driver

// Event reports one finished file during a check run.
type Event struct {
	Path   string
	Errors int  // diagnostics found in the file
	Cached bool // result came from the disk cache
}

// Sink receives progress events from a check run.
type Sink interface {
	Send(Event)
}

// ChannelSink forwards events into a channel. The channel should be
// buffered; Send blocks when it is full.
type ChannelSink struct{ Ch chan<- Event }

func (s ChannelSink) Send(e Event) {
	s.Ch <- e
}
