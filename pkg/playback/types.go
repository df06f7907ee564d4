package playback

import "context"

// FrameSource is the decoded video the loop plays. *mpeg.Source satisfies it.
type FrameSource interface {
	Width() int
	Height() int
	FrameRate() float64
	FrameCount() int
	Next() ([]byte, error)
	Position() int
	Seek(frame int) error
	Close() error
}

// Surface is where frames and the overlay are drawn, and where input comes
// from. All methods are called from the loop's goroutine only.
type Surface interface {
	// Present draws frame stretched to the whole surface, then the overlay.
	Present(frame []byte, overlay Overlay) error
	// Resize switches display mode and sets the surface size for it.
	Resize(mode DisplayMode, size Size) error
	// DesktopSize is the size of the display the surface lives on.
	DesktopSize() (Size, error)
	// PollEvents drains pending input.
	PollEvents() []Event
	Close() error
}

// Waiter blocks until playback may start. *startsignal.Signal satisfies it.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Overlay is everything the surface needs to draw the controls for one frame.
type Overlay struct {
	Mode     DisplayMode
	Label    string
	Button   Rect
	Bar      Rect
	Progress float64 // filled fraction of Bar, in [0, 1]
}

type EventKind int

const (
	EventQuit EventKind = iota
	EventClick
)

// Event is a quit request or a mouse-button-down at (X, Y).
type Event struct {
	Kind EventKind
	X, Y int32
}

// State of the playback loop.
type State int

const (
	WaitingForAudioStart State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case WaitingForAudioStart:
		return "waiting-for-audio-start"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}
