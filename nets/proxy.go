package nets

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/chrono/configs"
	"github.com/reusee/chrono/logs"
	"github.com/reusee/chrono/modes"
	"github.com/reusee/chrono/vars"
	"golang.org/x/net/proxy"
)

type ProxyAddr string

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) ProxyAddr {
	if mode == modes.ModeDevelopment {
		return ""
	}
	addr := vars.FirstNonZero(
		configs.First[string](loader, "proxy_addr"),
		os.Getenv("ALL_PROXY"),
		os.Getenv("all_proxy"),
		os.Getenv("HTTPS_PROXY"),
		os.Getenv("https_proxy"),
	)
	if addr != "" {
		logger.Info("proxy", "addr", addr)
	}
	return ProxyAddr(addr)
}

type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	addr ProxyAddr,
) GetProxyDialer {
	return sync.OnceValues(func() (Dialer, error) {
		direct := &net.Dialer{}
		if addr == "" {
			return direct, nil
		}
		u, err := url.Parse(string(addr))
		if err != nil {
			return nil, fmt.Errorf("parse proxy address: %w", err)
		}
		if u.Scheme == "socks" {
			u.Scheme = "socks5"
		}
		d, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		ctxDialer, ok := d.(Dialer)
		if !ok {
			return nil, fmt.Errorf("proxy %s cannot dial with context", u.Scheme)
		}
		return ctxDialer, nil
	})
}
