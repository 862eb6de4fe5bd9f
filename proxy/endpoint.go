package proxy

// endpoint is implemented by every call/trigger field of a contract struct;
// bind attaches the field to its contract's descriptor table when a remote
// dispatch proxy is constructed.
type endpoint interface {
	bind(key string, c *caller)
}
