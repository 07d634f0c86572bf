package manifest

// HandlerType enumerates the supported handler kinds.
type HandlerType string

const (
	HandlerInproc   HandlerType = "inproc"
	HandlerRedirect HandlerType = "redirect"
)
