// Package domain derives registrable-domain and subdomain labels from a
// hostname using a small multi-part TLD table. It is a heuristic, not a
// public-suffix-list lookup.
package domain

import (
	"net/netip"
	"strings"
	"sync"
)

// multiPartTLDs lists the two-label public suffixes the splitter knows
// about. Extra entries can be registered from configuration.
var multiPartTLDs = []string{
	"co.uk", "org.uk", "ac.uk", "gov.uk", "me.uk", "net.uk", "sch.uk",
	"com.au", "net.au", "org.au", "edu.au", "gov.au",
	"co.nz", "net.nz", "org.nz", "govt.nz",
	"co.za", "org.za",
	"com.br", "net.br", "org.br",
	"co.jp", "com.mx", "com.ar", "com.sg", "com.my", "co.id",
	"com.hk", "co.th", "in.th",
}

var (
	extraMu   sync.RWMutex
	extraTLDs []string
)

// RegisterTLDs adds extra multi-part TLDs, typically from the config
// file. Safe for concurrent use with Extract/Subdomain.
func RegisterTLDs(tlds []string) {
	extraMu.Lock()
	defer extraMu.Unlock()
	for _, tld := range tlds {
		tld = strings.TrimPrefix(strings.TrimSpace(tld), ".")
		if tld != "" {
			extraTLDs = append(extraTLDs, tld)
		}
	}
}

func isMultiPartTLD(domain string) bool {
	for _, tld := range multiPartTLDs {
		if strings.HasSuffix(domain, "."+tld) {
			return true
		}
	}
	extraMu.RLock()
	defer extraMu.RUnlock()
	for _, tld := range extraTLDs {
		if strings.HasSuffix(domain, "."+tld) {
			return true
		}
	}
	return false
}

// Extract returns the registrable domain of host. Bracketed IPv6
// literals and IPv4 addresses have no domain.
func Extract(host string) string {
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		return ""
	}
	if addr, err := netip.ParseAddr(host); err == nil && addr.Is4() {
		return ""
	}

	parts := strings.Split(host, ".")
	n := len(parts)
	if n <= 2 {
		return host
	}

	// A three-label tail like example.co.uk is itself the domain when its
	// last two labels form a known multi-part TLD.
	tail := strings.Join(parts[n-3:], ".")
	if isMultiPartTLD(tail) {
		return tail
	}
	return strings.Join(parts[n-2:], ".")
}

// Subdomain returns the labels of host in front of its registrable
// domain, or "" when there are none.
func Subdomain(host string) string {
	dom := Extract(host)
	if host == dom {
		return ""
	}
	sub, found := strings.CutSuffix(host, "."+dom)
	if !found {
		sub, found = strings.CutSuffix(host, dom)
		if !found {
			sub = host
		}
	}
	return strings.TrimRight(sub, ".")
}
