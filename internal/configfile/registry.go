package configfile

import (
	"fmt"
)

// Registry is the fixed, ordered list of known options.
// Order determines the line order of saved files.
type Registry struct {
	options []Option
}

// NewRegistry creates a registry from opts in the given order.
// Names must be non-empty, contain no whitespace and be unique.
func NewRegistry(opts ...Option) (*Registry, error) {
	r := &Registry{options: make([]Option, 0, len(opts))}
	for _, opt := range opts {
		if !validName(opt.Name) {
			return nil, &Error{
				Type:    ErrTypeInvalidValue,
				Message: fmt.Sprintf("invalid option name %q", opt.Name),
			}
		}
		if opt.Slot == nil {
			return nil, &Error{
				Type:    ErrTypeInvalidValue,
				Message: fmt.Sprintf("option '%s' has no value slot", opt.Name),
			}
		}
		if _, exists := r.Find(opt.Name); exists {
			return nil, &Error{
				Type:    ErrTypeDuplicateOption,
				Message: fmt.Sprintf("option '%s' declared more than once", opt.Name),
			}
		}
		r.options = append(r.options, opt)
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on an invalid declaration.
// It is meant for static option tables.
func MustNewRegistry(opts ...Option) *Registry {
	r, err := NewRegistry(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Find looks up an option by exact name.
func (r *Registry) Find(name string) (Option, bool) {
	for _, opt := range r.options {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// Options returns the options in registry order.
func (r *Registry) Options() []Option {
	out := make([]Option, len(r.options))
	copy(out, r.options)
	return out
}

// Names returns the option names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.options))
	for i, opt := range r.options {
		names[i] = opt.Name
	}
	return names
}

// Len returns the number of registered options.
func (r *Registry) Len() int {
	return len(r.options)
}

// Set decodes text into the named option.
func (r *Registry) Set(name, text string) error {
	opt, ok := r.Find(name)
	if !ok {
		return NewUnknownOptionError(name)
	}
	return opt.Decode(text)
}

// validName reports whether name is a single non-empty word.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if isSpace(name[i]) {
			return false
		}
	}
	return true
}
