package state

import "strings"

// ClassNames maps flags to the container class that encodes them.
type ClassNames map[Flag]string

// DefaultClassNames returns the stock class for every flag.
func DefaultClassNames() ClassNames {
	return ClassNames{
		FlagHasValue:       "has-value",
		FlagIsMultiple:     "is-multiple",
		FlagHasPlaceholder: "has-placeholder",
		FlagNotLabel:       "not-label",
		FlagIsDisabled:     "is-disabled",
		FlagIsSearch:       "is-search",
		FlagIsDatepicker:   "is-datepicker",
		FlagLarge:          "large",
		FlagSmall:          "small",
		FlagIsFocused:      "is-focused",
		FlagIsValid:        "is-valid",
		FlagIsInvalid:      "is-invalid",
	}
}

// Class returns the class for flag, falling back to the default when the map
// has no usable entry.
func (c ClassNames) Class(flag Flag) string {
	if name := strings.TrimSpace(c[flag]); name != "" {
		return name
	}
	return DefaultClassNames()[flag]
}

// Merge returns a copy of c with non-empty overrides applied.
func (c ClassNames) Merge(overrides ClassNames) ClassNames {
	out := make(ClassNames, len(AllFlags))
	for _, flag := range AllFlags {
		out[flag] = c.Class(flag)
	}
	for flag, name := range overrides {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out[flag] = trimmed
		}
	}
	return out
}

// Flag groups toggled by the engine's triggers.
var (
	// StructuralFlags are rendered by the initialization pass. Focus and
	// validity are left alone until a trigger computes them.
	StructuralFlags = []Flag{
		FlagHasValue,
		FlagIsMultiple,
		FlagHasPlaceholder,
		FlagNotLabel,
		FlagIsDisabled,
		FlagIsSearch,
		FlagIsDatepicker,
		FlagLarge,
		FlagSmall,
	}
	ChangeFlags   = []Flag{FlagHasValue, FlagIsDisabled}
	FocusFlags    = []Flag{FlagIsFocused}
	DisableFlags  = []Flag{FlagIsDisabled}
	ValidityFlags = []Flag{FlagIsValid, FlagIsInvalid}
)

// ClassDelta lists the classes to add to and remove from a container.
type ClassDelta struct {
	Add    []string
	Remove []string
}

// Render turns the selected flags of fs into a class delta. Flags outside the
// selection are not mentioned, so their classes are left untouched.
func Render(fs FlagSet, names ClassNames, flags []Flag) ClassDelta {
	var delta ClassDelta
	for _, flag := range flags {
		class := names.Class(flag)
		if class == "" {
			continue
		}
		if fs.Get(flag) {
			delta.Add = append(delta.Add, class)
		} else {
			delta.Remove = append(delta.Remove, class)
		}
	}
	return delta
}
