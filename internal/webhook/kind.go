package webhook

// Kind identifies the event category carried in the X-GitHub-Event header.
// GitHub may introduce new kinds at any time, so Kind is open-ended: values
// outside the recognized set flow through the unhandled path instead of
// failing the request.
type Kind string

const (
	KindPush        Kind = "push"
	KindPullRequest Kind = "pull_request"
	KindIssues      Kind = "issues"
	KindPing        Kind = "ping"

	// KindUnknown is used when the event header is missing entirely.
	KindUnknown Kind = "unknown"
)

// KindOf maps a raw header value to a Kind. An empty header becomes
// KindUnknown; every other value is carried through as-is.
func KindOf(header string) Kind {
	if header == "" {
		return KindUnknown
	}
	return Kind(header)
}

// Recognized reports whether the kind has a dedicated handler.
func (k Kind) Recognized() bool {
	switch k {
	case KindPush, KindPullRequest, KindIssues, KindPing:
		return true
	}
	return false
}

func (k Kind) String() string { return string(k) }

// RecognizedKinds lists the kinds with dedicated handlers, for the service
// info endpoint.
func RecognizedKinds() []string {
	return []string{
		KindPush.String(),
		KindPullRequest.String(),
		KindIssues.String(),
		KindPing.String(),
	}
}
