// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// hostProfile applies the lookup mappings of RFC 5891 (case folding,
// width normalization) and enforces STD3 label syntax plus DNS length
// limits.
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.VerifyDNSLength(true),
	idna.Transitional(false),
)

// CanonicalHost checks that host is a bare, syntactically well-formed
// hostname and returns its canonical ASCII form (lower-case, punycode for
// internationalized labels). The canonical form is what duplicate detection
// compares; callers keep the authored spelling.
func CanonicalHost(host string) (string, error) {
	switch {
	case host == "":
		return "", ErrEmptyValue
	case strings.Contains(host, "://"):
		return "", fmt.Errorf("%w: %q", ErrHostScheme, host)
	case strings.ContainsAny(host, "/?#"):
		return "", fmt.Errorf("%w: %q", ErrHostPath, host)
	case strings.ContainsAny(host, "[]") || strings.Count(host, ":") > 1:
		return "", fmt.Errorf("%w: %q is an IPv6 literal", ErrInvalidHost, host)
	case strings.Contains(host, ":"):
		return "", fmt.Errorf("%w: %q", ErrHostPort, host)
	case strings.HasPrefix(host, ".") || strings.HasSuffix(host, "."):
		return "", fmt.Errorf("%w: %q has an empty label", ErrInvalidHost, host)
	}

	ascii, err := hostProfile.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidHost, host, err)
	}
	return ascii, nil
}

// HostList validates an ordered []string allow-list. Every entry must be a
// well-formed hostname, and no two entries may share a canonical form.
// Each duplicate is reported against its later occurrence.
func HostList(value any) error {
	hosts, ok := value.([]string)
	if !ok {
		return ErrUnsupportedType
	}

	var errs []error
	seen := make(map[string]int, len(hosts))
	for i, host := range hosts {
		canonical, err := CanonicalHost(host)
		if err != nil {
			errs = append(errs, AtIndex(i, err))
			continue
		}
		if first, dup := seen[canonical]; dup {
			errs = append(errs, AtIndex(i, fmt.Errorf("%w: %q repeats entry %d (%q)", ErrDuplicateHost, host, first, hosts[first])))
			continue
		}
		seen[canonical] = i
	}
	return errors.Join(errs...)
}
