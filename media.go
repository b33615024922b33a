package paintly

import (
	"time"

	"github.com/gogpu/paintly/media"
)

// SupplyMedia decodes data on a new goroutine and places the result
// centered on the surface, replacing any previous element. kind is the
// media kind the host expects; media.Detect can supply it. Inputs whose
// header declares more than the configured media.max_pixels are rejected
// before decoding with media.ErrTooLarge.
//
// The returned channel receives exactly one value: nil once the element
// is placed, or the decode or placement error. A completion that arrives
// after Clear reports ErrSuperseded; after Teardown, ErrClosed.
func (e *Engine) SupplyMedia(data []byte, kind media.Kind) <-chan error {
	done := make(chan error, 1)

	e.mu.Lock()
	if err := e.check(); err != nil {
		e.mu.Unlock()
		done <- err
		return done
	}
	gen := e.gen
	maxPixels := e.cfg.Media.MaxPixels
	e.mu.Unlock()

	go func() {
		src, err := media.DecodeLimit(data, kind, maxPixels)
		e.dispatch(func() {
			done <- e.placeMedia(gen, src, err)
		})
	}()
	return done
}

// PlaceMedia places an already decoded source synchronously. A nil source
// returns media.ErrEmpty.
func (e *Engine) PlaceMedia(src *media.Source) error {
	if src == nil {
		return media.ErrEmpty
	}
	e.mu.Lock()
	gen := e.gen
	e.mu.Unlock()
	return e.placeMedia(gen, src, nil)
}

func (e *Engine) placeMedia(gen uint64, src *media.Source, decodeErr error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if decodeErr != nil {
		Logger().Warn("paintly: media rejected", "err", decodeErr)
		return decodeErr
	}
	if err := e.check(); err != nil {
		return err
	}
	if gen != e.gen {
		Logger().Debug("paintly: stale media discarded", "gen", gen, "current", e.gen)
		return ErrSuperseded
	}

	e.finishPress()
	if err := e.media.Place(src); err != nil {
		e.warn("media place", err)
		return err
	}
	el := e.media.Element()
	Logger().Info("paintly: media placed",
		"kind", el.Kind.String(), "width", el.Width, "height", el.Height)
	return nil
}

// Tick advances video playback by dt and re-renders the element when the
// visible frame changed. It reports whether it redrew.
func (e *Engine) Tick(dt time.Duration) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateReady || !e.media.Advance(dt) {
		return false
	}
	if err := e.media.Render(e.media.Selected()); err != nil {
		e.warn("media render", err)
		return false
	}
	return true
}

// Media returns the placed element's kind and geometry. ok is false when
// no element is placed.
func (e *Engine) Media() (el media.Element, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p := e.media.Element()
	if p == nil {
		return media.Element{}, false
	}
	return *p, true
}
