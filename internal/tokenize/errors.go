package tokenize

// toolError signals a failure of the external segmentation tool: a non-zero
// exit, an unstartable process, or unreadable output.
type toolError struct {
	tool string
	msg  string
}

func (e toolError) Error() string { return e.tool + ": " + e.msg }

// ErrTool constructs a segmentation tool failure.
func ErrTool(tool, msg string) error { return toolError{tool: tool, msg: msg} }

// IsToolFailure reports whether err came from the external segmentation tool.
func IsToolFailure(err error) bool {
	_, ok := err.(toolError)
	return ok
}
