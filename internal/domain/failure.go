package domain

type FailureKind string

const (
	FailureTimeout        FailureKind = "timeout"
	FailureDNS            FailureKind = "dns"
	FailureConnection     FailureKind = "connection"
	FailureTLS            FailureKind = "tls"
	FailureInvalidRequest FailureKind = "invalid_request"
	FailureTransport      FailureKind = "transport"
)

// Failure is a transport-level reason for not getting a response.
type Failure struct {
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return string(f.Kind)
	}
	return f.Err.Error()
}

func (f *Failure) Unwrap() error { return f.Err }
