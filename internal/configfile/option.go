package configfile

import (
	"strconv"
)

// Kind is the scalar type of an option's value
type Kind int

const (
	KindBool Kind = iota
	KindUInt
	KindFloat
)

// String returns the name used for the kind in messages
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUInt:
		return "uint"
	case KindFloat:
		return "float"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Slot is a typed reference to caller-owned storage for one option.
// The set of implementations is closed: BoolSlot, UIntSlot and FloatSlot.
type Slot interface {
	// Kind reports the scalar type behind the slot.
	Kind() Kind
	// Format renders the current value as it is written to the file.
	Format() string
	// Decode parses text and stores it. On error the stored value is unchanged.
	Decode(name, text string) error
	// Value returns the current value as a plain Go value.
	Value() any

	sealed()
}

// BoolSlot stores "true" or "false".
type BoolSlot struct{ Ptr *bool }

func (BoolSlot) Kind() Kind { return KindBool }
func (BoolSlot) sealed()    {}

func (s BoolSlot) Value() any { return *s.Ptr }

func (s BoolSlot) Format() string {
	if *s.Ptr {
		return "true"
	}
	return "false"
}

// Decode accepts exactly "true" and "false".
func (s BoolSlot) Decode(name, text string) error {
	switch text {
	case "true":
		*s.Ptr = true
	case "false":
		*s.Ptr = false
	default:
		return NewInvalidValueError(name, text, KindBool, nil)
	}
	return nil
}

// UIntSlot stores an unsigned 32-bit decimal.
type UIntSlot struct{ Ptr *uint32 }

func (UIntSlot) Kind() Kind { return KindUInt }
func (UIntSlot) sealed()    {}

func (s UIntSlot) Value() any { return *s.Ptr }

func (s UIntSlot) Format() string {
	return strconv.FormatUint(uint64(*s.Ptr), 10)
}

func (s UIntSlot) Decode(name, text string) error {
	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return NewInvalidValueError(name, text, KindUInt, err)
	}
	*s.Ptr = uint32(v)
	return nil
}

// FloatSlot stores a 32-bit float written with six fractional digits.
type FloatSlot struct{ Ptr *float32 }

func (FloatSlot) Kind() Kind { return KindFloat }
func (FloatSlot) sealed()    {}

func (s FloatSlot) Value() any { return *s.Ptr }

func (s FloatSlot) Format() string {
	return strconv.FormatFloat(float64(*s.Ptr), 'f', 6, 64)
}

func (s FloatSlot) Decode(name, text string) error {
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return NewInvalidValueError(name, text, KindFloat, err)
	}
	*s.Ptr = float32(v)
	return nil
}

// Option is one named, typed, persisted setting
type Option struct {
	Name string
	Slot Slot
}

// Bool declares a boolean option stored in *v.
func Bool(name string, v *bool) Option {
	return Option{Name: name, Slot: BoolSlot{Ptr: v}}
}

// UInt declares an unsigned integer option stored in *v.
func UInt(name string, v *uint32) Option {
	return Option{Name: name, Slot: UIntSlot{Ptr: v}}
}

// Float declares a floating-point option stored in *v.
func Float(name string, v *float32) Option {
	return Option{Name: name, Slot: FloatSlot{Ptr: v}}
}

// Kind returns the option's value kind
func (o Option) Kind() Kind {
	return o.Slot.Kind()
}

// Format returns the option's current value in file form
func (o Option) Format() string {
	return o.Slot.Format()
}

// Decode parses text into the option's slot
func (o Option) Decode(text string) error {
	return o.Slot.Decode(o.Name, text)
}

// Line renders the option as a single file record without the newline
func (o Option) Line() string {
	return o.Name + " " + o.Slot.Format()
}
