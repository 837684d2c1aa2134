// Package errlist provides a small multi-error accumulator used by the
// schema translators and the session driver to collect non-fatal issues
// without aborting a session.
package errlist

// List is a slice of error that itself implements error. A nil List, like a
// nil slice, is the correct representation of "no issues".
type List []error

// Error implements the error interface.
func (l List) Error() string {
	return ToString([]error(l))
}

// String implements the fmt.Stringer interface.
func (l List) String() string {
	return l.Error()
}

// New returns a List containing err, or nil if err is nil.
func New(err error) List {
	if err == nil {
		return nil
	}
	return List{err}
}

// Append appends err to l if it is non-nil, and returns the result.
func Append(l List, err error) List {
	if err == nil {
		return l
	}
	return append(l, err)
}

// AppendAll appends every non-nil error in errs to l, and returns the result.
func AppendAll(l List, errs []error) List {
	for _, e := range errs {
		l = Append(l, e)
	}
	return l
}

// ToString renders a slice of errors as a single comma-separated string,
// skipping nil entries.
func ToString(errs []error) string {
	var out string
	first := true
	for _, e := range errs {
		if e == nil {
			continue
		}
		if !first {
			out += ", "
		}
		out += e.Error()
		first = false
	}
	return out
}
