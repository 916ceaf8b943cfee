// Package engine defines the boundary between the wrapper layer and the
// audio-processing provider that does the actual DSP.
//
// The wrapper layer never sees inside the provider: it instantiates
// components through the Engine factory and talks to them exclusively via
// the Handle parameter channel. The provider owns rendering, scheduling and
// any real-time discipline of its own.
package engine

import (
	"errors"

	"github.com/shaban/audiofx/components"
)

// ErrReleased is returned when a handle is used after Release.
var ErrReleased = errors.New("handle has been released")

// Engine is the audio-component factory. Instantiate fails if the provider
// cannot build the requested component; callers treat that as fatal since a
// node cannot exist without its processor.
type Engine interface {
	Instantiate(desc components.Description) (Handle, error)
}

// Handle is an opaque reference to one instantiated processing component.
// A handle belongs to exactly one node for that node's lifetime.
type Handle interface {
	// SetParameter forwards a value to the provider. The wrapper clamps
	// before calling; the provider may map units internally.
	SetParameter(address uint64, value float32) error

	// GetParameter reads the provider's current value, including values the
	// provider computes itself (metering and other derived parameters).
	GetParameter(address uint64) (float32, error)

	// SetBypass toggles pass-through mode. The component keeps running and
	// keeps its state; output is the unmodified input while bypassed.
	SetBypass(bypass bool) error

	// Bypassed reports the current bypass state.
	Bypassed() bool

	// Release frees the component. The handle is unusable afterwards.
	Release() error
}
