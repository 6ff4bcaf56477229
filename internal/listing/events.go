package listing

// Event is the interface implemented by all listing engine events.
type Event interface {
	isEvent()
}

// EventEmitter is the interface for emitting events.
type EventEmitter interface {
	Emit(event Event)
}

// ListStarted is emitted once, before the first directory is read.
type ListStarted struct {
	Root     string
	Patterns []string
	Dirs     bool
}

func (ListStarted) isEvent() {}

// EntryFound is emitted for every entry handed to the visitor.
type EntryFound struct {
	Entry Entry
	Count int // entries found so far, including this one
}

func (EntryFound) isEvent() {}

// EntrySkipped is emitted when a directory or entry cannot be read and the
// listing carries on without it.
type EntrySkipped struct {
	Path string
	Err  error
}

func (EntrySkipped) isEvent() {}

// ListComplete is emitted when the listing finishes, cancelled or not.
type ListComplete struct {
	Result *Result
}

func (ListComplete) isEvent() {}

// ErrorOccurred is emitted when the listing stops on an error.
type ErrorOccurred struct {
	Err error
}

func (ErrorOccurred) isEvent() {}
