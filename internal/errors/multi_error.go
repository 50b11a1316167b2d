package errors

// MultiError collects errors so they can be reported together.
type MultiError []error

// Append adds err to the collection. Nil errors are ignored.
func (e MultiError) Append(err error) MultiError {
	if err == nil {
		return e
	}
	return append(e, err)
}

// Appendf wraps err with a formatted message and adds it to the collection.
// Nil errors are ignored.
func (e MultiError) Appendf(err error, msg string, args ...any) MultiError {
	return e.Append(Wrapf(err, msg, args...))
}

// Join combines all errors into a single error.
func (e MultiError) Join() error {
	if len(e) == 0 {
		return nil
	}
	return Join(e...)
}

// Wrap joins errors and then wraps the joined error with a message.
//
// Returns nil if there are no errors.
func (e MultiError) Wrap(msg string) error {
	if len(e) == 0 {
		return nil
	}
	return Wrap(e.Join(), msg)
}
