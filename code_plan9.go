package fhandle

// Code always returns 0; plan9 has no errno numbers.
func (e *Error) Code() int {
	return 0
}
