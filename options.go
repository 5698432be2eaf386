package menu

// Option configures a widget at construction time.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	var OptCustomThing = menu.NewOptKey("customThing", defaultValue)
//
//	w := menu.NewButton("Play", act, menu.WithOpt(OptCustomThing, value))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// =============================================================================
// Built-in option keys
// =============================================================================

var (
	// OptID sets an explicit widget id. When absent the owning registry
	// allocates a generated one.
	OptID = NewOptKey("id", "")

	// OptAlign sets horizontal alignment within the widget's column.
	OptAlign = NewOptKey("align", AlignCenter)

	// OptWidth forces a fixed widget width instead of the measured one.
	OptWidth = NewOptKey("width", float32(0))

	// OptMaxLength caps the number of runes a text input accepts (0 = unlimited).
	OptMaxLength = NewOptKey("maxLength", 0)
)

// WithID sets an explicit widget id.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithAlign sets widget alignment.
func WithAlign(a Alignment) Option { return WithOpt(OptAlign, a) }

// WithWidth forces a fixed widget width.
func WithWidth(w float32) Option { return WithOpt(OptWidth, w) }

// WithMaxLength caps text input length.
func WithMaxLength(n int) Option { return WithOpt(OptMaxLength, n) }
