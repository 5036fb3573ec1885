package crawler

import (
	"net"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// SameRegistrableDomain reports whether two hosts share a registrable
// domain (eTLD+1), so blog.example.com and www.example.com count as the
// same site while example.com.evil.test does not.
//
// When a registrable domain cannot be derived (IP literals, localhost,
// single-label hosts) it falls back to case-insensitive equality of the
// full host including any port. That keeps the scoping meaningful against
// local test servers, which differ only by port.
func SameRegistrableDomain(seedHost, targetHost string) bool {
	if strings.EqualFold(seedHost, targetHost) {
		return true
	}

	seedName := stripPort(seedHost)
	targetName := stripPort(targetHost)

	seedDomain, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(seedName))
	if err != nil {
		return false
	}
	targetDomain, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(targetName))
	if err != nil {
		return false
	}

	return seedDomain == targetDomain
}

// stripPort removes a port suffix if present.
func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
