package primiter

// Error is a string based type that allows you to declare error constant values for your packages.
//
//	const ErrExhausted primiter.Error = "exhausted"
type Error string

// Error implement the error interface, so the Error string type can be used as an error value.
func (err Error) Error() string { return string(err) }
