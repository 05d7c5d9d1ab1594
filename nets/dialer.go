package nets

import (
	"context"
	"net"
)

type Dialer interface {
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

type DialerFunc func(ctx context.Context, network, addr string) (net.Conn, error)

var _ Dialer = DialerFunc(nil)

func (d DialerFunc) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return d(ctx, network, addr)
}

// Dialer connects directly to loopback and private hosts and through the
// proxy otherwise.
func (Module) Dialer(
	getProxyDialer GetProxyDialer,
) Dialer {
	var direct net.Dialer
	return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
		if isLocal(addr) {
			return direct.DialContext(ctx, network, addr)
		}
		dialer, err := getProxyDialer()
		if err != nil {
			return nil, err
		}
		return dialer.DialContext(ctx, network, addr)
	})
}

func isLocal(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && (ip.IsLoopback() || ip.IsPrivate())
}
