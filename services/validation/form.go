package validation

// Form is the stateful wrapper around one form instance. It tracks current
// values, per-field errors, and which fields the user has touched. Editing a
// field only re-validates it once it has been touched; ValidateAll touches
// everything.
type Form struct {
	rules   RuleSet
	initial map[string]any
	data    map[string]any
	errors  Errors
	touched map[string]bool
}

// NewForm creates a form instance seeded with initial values.
func NewForm(initial map[string]any, rules RuleSet) *Form {
	return &Form{
		rules:   rules,
		initial: cloneMap(initial),
		data:    cloneMap(initial),
		errors:  Errors{},
		touched: map[string]bool{},
	}
}

// UpdateField sets a field value. Validation runs immediately only for
// fields that have already been touched.
func (f *Form) UpdateField(field string, value any) {
	if isDotted(field) {
		SetPath(f.data, field, value)
	} else {
		f.data[field] = value
	}

	if f.touched[field] {
		f.errors[field] = f.validateSingle(field)
	}
}

// TouchField marks a field touched and validates it.
func (f *Form) TouchField(field string) {
	f.touched[field] = true
	f.errors[field] = f.validateSingle(field)
}

// ValidateAll validates every declared field, marks them all touched, and
// returns the aggregate result.
func (f *Form) ValidateAll() Result {
	result := ValidateForm(f.data, f.rules)
	f.errors = result.Errors
	for field := range f.rules {
		f.touched[field] = true
	}
	return result
}

// Reset restores initial values and clears errors and touched flags.
func (f *Form) Reset() {
	f.data = cloneMap(f.initial)
	f.errors = Errors{}
	f.touched = map[string]bool{}
}

// Value returns the current value of a field (dotted paths allowed).
func (f *Form) Value(field string) any {
	if isDotted(field) {
		return GetPath(f.data, field)
	}
	return f.data[field]
}

// Errors returns the current per-field error lists.
func (f *Form) Errors() Errors {
	return f.errors
}

// Touched reports whether a field has been touched.
func (f *Form) Touched(field string) bool {
	return f.touched[field]
}

// IsValid reports whether no field currently has errors.
func (f *Form) IsValid() bool {
	for _, errs := range f.errors {
		if len(errs) > 0 {
			return false
		}
	}
	return true
}

func (f *Form) validateSingle(field string) []string {
	rules, ok := f.rules[field]
	if !ok {
		return nil
	}
	return ValidateField(f.Value(field), rules)
}

func isDotted(field string) bool {
	for i := 0; i < len(field); i++ {
		if field[i] == '.' {
			return true
		}
	}
	return false
}

func cloneMap(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		if nested, ok := v.(map[string]any); ok {
			dst[k] = cloneMap(nested)
			continue
		}
		dst[k] = v
	}
	return dst
}
