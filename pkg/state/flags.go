// Package state derives the presentation flags of a form field container and
// renders them as class-list deltas. Everything here is pure: the same Props
// always produce the same FlagSet, which makes recomputation after a missed or
// duplicated event safe.
package state

// Flag names a single presentation flag.
type Flag string

const (
	FlagHasValue       Flag = "hasValue"
	FlagIsMultiple     Flag = "isMultiple"
	FlagHasPlaceholder Flag = "hasPlaceholder"
	FlagNotLabel       Flag = "notLabel"
	FlagIsDisabled     Flag = "isDisabled"
	FlagIsSearch       Flag = "isSearch"
	FlagIsDatepicker   Flag = "isDatepicker"
	FlagLarge          Flag = "large"
	FlagSmall          Flag = "small"
	FlagIsFocused      Flag = "isFocused"
	FlagIsValid        Flag = "isValid"
	FlagIsInvalid      Flag = "isInvalid"
)

// AllFlags lists every flag in render order.
var AllFlags = []Flag{
	FlagHasValue,
	FlagIsMultiple,
	FlagHasPlaceholder,
	FlagNotLabel,
	FlagIsDisabled,
	FlagIsSearch,
	FlagIsDatepicker,
	FlagLarge,
	FlagSmall,
	FlagIsFocused,
	FlagIsValid,
	FlagIsInvalid,
}

// FlagSet is the computed presentation state of one container.
type FlagSet struct {
	HasValue       bool
	IsMultiple     bool
	HasPlaceholder bool
	NotLabel       bool
	IsDisabled     bool
	IsSearch       bool
	IsDatepicker   bool
	Large          bool
	Small          bool
	IsFocused      bool
	IsValid        bool
	IsInvalid      bool
}

// Get returns the value of a single flag.
func (f FlagSet) Get(flag Flag) bool {
	switch flag {
	case FlagHasValue:
		return f.HasValue
	case FlagIsMultiple:
		return f.IsMultiple
	case FlagHasPlaceholder:
		return f.HasPlaceholder
	case FlagNotLabel:
		return f.NotLabel
	case FlagIsDisabled:
		return f.IsDisabled
	case FlagIsSearch:
		return f.IsSearch
	case FlagIsDatepicker:
		return f.IsDatepicker
	case FlagLarge:
		return f.Large
	case FlagSmall:
		return f.Small
	case FlagIsFocused:
		return f.IsFocused
	case FlagIsValid:
		return f.IsValid
	case FlagIsInvalid:
		return f.IsInvalid
	default:
		return false
	}
}

// Set returns a copy of f with flag set to value.
func (f FlagSet) Set(flag Flag, value bool) FlagSet {
	switch flag {
	case FlagHasValue:
		f.HasValue = value
	case FlagIsMultiple:
		f.IsMultiple = value
	case FlagHasPlaceholder:
		f.HasPlaceholder = value
	case FlagNotLabel:
		f.NotLabel = value
	case FlagIsDisabled:
		f.IsDisabled = value
	case FlagIsSearch:
		f.IsSearch = value
	case FlagIsDatepicker:
		f.IsDatepicker = value
	case FlagLarge:
		f.Large = value
	case FlagSmall:
		f.Small = value
	case FlagIsFocused:
		f.IsFocused = value
	case FlagIsValid:
		f.IsValid = value
	case FlagIsInvalid:
		f.IsInvalid = value
	}
	return f
}
