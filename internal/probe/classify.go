package probe

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"

	"github.com/hamed0406/apphealth/internal/domain"
)

// classify maps a client error to a failure kind. Order matters: a DNS
// timeout is reported as a timeout.
func classify(err error) domain.FailureKind {
	var (
		ne        net.Error
		dnsErr    *net.DNSError
		opErr     *net.OpError
		certErr   *tls.CertificateVerificationError
		recordErr tls.RecordHeaderError
		authErr   x509.UnknownAuthorityError
		hostErr   x509.HostnameError
		invErr    x509.CertificateInvalidError
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.FailureTimeout
	case errors.As(err, &ne) && ne.Timeout():
		return domain.FailureTimeout
	case errors.As(err, &dnsErr):
		return domain.FailureDNS
	case errors.As(err, &certErr), errors.As(err, &recordErr),
		errors.As(err, &authErr), errors.As(err, &hostErr), errors.As(err, &invErr):
		return domain.FailureTLS
	case errors.As(err, &opErr) && opErr.Op == "dial":
		return domain.FailureConnection
	default:
		return domain.FailureTransport
	}
}
