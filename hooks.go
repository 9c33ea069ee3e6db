package exhaust

import "log/slog"

//go:generate go tool stringer -type=Channel -linecomment -output=channel_string.go

// Channel names the slot a dispatch resolved to.
type Channel uint8

const (
	ChannelCase       Channel = iota // case
	ChannelNull                      // null
	ChannelUndefined                 // undefined
	ChannelUnexpected                // unexpected
)

// OnDispatchFunc is called after an entry resolves, just before the handler
// runs (visitor) or the value is returned (mapper).
type OnDispatchFunc func(value string, ch Channel)

// OnUnexpectedFunc is called when a value has no entry and the table has no
// unexpected entry.
type OnUnexpectedFunc func(value string, kind Kind)

// OnUnhandledFunc is called when dispatch resolves to an entry marked
// unhandled. message is the token's message, possibly empty.
type OnUnhandledFunc func(value string, message string)

// hooks holds all configured hook functions.
type hooks struct {
	onDispatch   []OnDispatchFunc
	onUnexpected []OnUnexpectedFunc
	onUnhandled  []OnUnhandledFunc
}

// Option configures a table built by NewVisitor or NewMapper.
type Option func(*hooks)

// WithOnDispatch adds a hook called for every successful resolution.
// Multiple hooks are called in order.
//
// Example:
//
//	exhaust.WithOnDispatch(func(value string, ch exhaust.Channel) {
//	    metrics.Incr("exhaust.dispatch", "channel:"+ch.String())
//	})
func WithOnDispatch(fn OnDispatchFunc) Option {
	return func(h *hooks) {
		h.onDispatch = append(h.onDispatch, fn)
	}
}

// WithOnUnexpected adds a hook called before an *UnexpectedValueError is
// returned. Multiple hooks are called in order.
func WithOnUnexpected(fn OnUnexpectedFunc) Option {
	return func(h *hooks) {
		h.onUnexpected = append(h.onUnexpected, fn)
	}
}

// WithOnUnhandled adds a hook called before an *UnhandledValueError is
// returned. Multiple hooks are called in order.
func WithOnUnhandled(fn OnUnhandledFunc) Option {
	return func(h *hooks) {
		h.onUnhandled = append(h.onUnhandled, fn)
	}
}

// WithLogger logs dispatch at debug level and failures at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(h *hooks) {
		WithOnDispatch(func(value string, ch Channel) {
			l.Debug("exhaust: dispatch", slog.String("value", value), slog.String("channel", ch.String()))
		})(h)
		WithOnUnexpected(func(value string, kind Kind) {
			l.Warn("exhaust: unexpected value", slog.String("value", value), slog.String("kind", kind.String()))
		})(h)
		WithOnUnhandled(func(value, message string) {
			l.Warn("exhaust: unhandled value", slog.String("value", value), slog.String("message", message))
		})(h)
	}
}

func newHooks(opts []Option) hooks {
	var h hooks
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

func (h *hooks) callOnDispatch(value string, ch Channel) {
	for _, fn := range h.onDispatch {
		fn(value, ch)
	}
}

func (h *hooks) callOnUnexpected(value string, kind Kind) {
	for _, fn := range h.onUnexpected {
		fn(value, kind)
	}
}

func (h *hooks) callOnUnhandled(value, message string) {
	for _, fn := range h.onUnhandled {
		fn(value, message)
	}
}
