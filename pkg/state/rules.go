package state

// SearchType is the input type that marks a search field.
const SearchType = "search"

// ValidityRecord is an explicit validity verdict stored on a field by a
// format rule. When present it overrides native constraint validation.
type ValidityRecord struct {
	Rule   string
	Result bool
}

// Props is a read-only snapshot of everything the rules look at for one
// field: its own properties plus the parts of its container that matter.
type Props struct {
	Value       string
	Disabled    bool
	Multiple    bool
	Placeholder string
	Type        string
	LabelCount  int
	Datepicker  bool
	Focused     bool

	ContainerLarge bool
	ContainerSmall bool
	FieldLarge     bool
	FieldSmall     bool

	Record      *ValidityRecord
	NativeValid bool
}

// Rule derives a single flag from a snapshot.
type Rule func(Props) bool

// Rules holds the derivation rule for every flag.
var Rules = map[Flag]Rule{
	FlagHasValue:       func(p Props) bool { return p.Value != "" },
	FlagIsMultiple:     func(p Props) bool { return p.Multiple },
	FlagHasPlaceholder: func(p Props) bool { return p.Placeholder != "" },
	FlagNotLabel:       func(p Props) bool { return p.LabelCount == 0 },
	FlagIsDisabled:     func(p Props) bool { return p.Disabled },
	FlagIsSearch:       func(p Props) bool { return p.Type == SearchType },
	FlagIsDatepicker:   func(p Props) bool { return p.Datepicker },
	FlagLarge:          func(p Props) bool { return p.ContainerLarge || p.FieldLarge },
	FlagSmall:          func(p Props) bool { return p.ContainerSmall || p.FieldSmall },
	FlagIsFocused:      func(p Props) bool { return p.Focused },
	FlagIsValid: func(p Props) bool {
		valid, _ := Validity(p.Record, p.NativeValid)
		return valid
	},
	FlagIsInvalid: func(p Props) bool {
		_, invalid := Validity(p.Record, p.NativeValid)
		return invalid
	},
}

// Derive computes the full FlagSet for a snapshot.
func Derive(p Props) FlagSet {
	var out FlagSet
	for _, flag := range AllFlags {
		out = out.Set(flag, Rules[flag](p))
	}
	return out
}

// Validity resolves the valid/invalid pair. A stored record wins over the
// native result; the two outputs are always complementary.
func Validity(record *ValidityRecord, native bool) (valid, invalid bool) {
	if record != nil {
		return record.Result, !record.Result
	}
	return native, !native
}
