package util

import (
	"net"
	"net/http"
	"net/url"
	"strings"
)

// NewProxyFunc creates a proxy function for outbound interpreter calls.
// If no proxy URLs are provided, falls back to environment variables.
// noProxy is a comma-separated list of hosts or domain suffixes that bypass the proxy.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	bypass := splitNoProxy(noProxy)

	return func(req *http.Request) (*url.URL, error) {
		if bypassesProxy(req.URL.Hostname(), bypass) {
			return nil, nil
		}
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}

func splitNoProxy(noProxy string) []string {
	var hosts []string
	for _, h := range strings.Split(noProxy, ",") {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}

func bypassesProxy(host string, bypass []string) bool {
	host = strings.ToLower(host)
	for _, b := range bypass {
		if b == "*" || host == b {
			return true
		}
		// ".example.com" and "example.com" both cover subdomains
		suffix := b
		if !strings.HasPrefix(suffix, ".") {
			suffix = "." + suffix
		}
		if strings.HasSuffix(host, suffix) {
			return true
		}
		if ip := net.ParseIP(host); ip != nil && ip.String() == b {
			return true
		}
	}
	return false
}
