// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalHost(t *testing.T) {
	tests := []struct {
		name      string
		host      string
		want      string
		wantError error
	}{
		{name: "plain host", host: "vercel.app", want: "vercel.app"},
		{name: "localhost", host: "localhost", want: "localhost"},
		{name: "upper case folds", host: "Images.Example.COM", want: "images.example.com"},
		{name: "ipv4 literal", host: "127.0.0.1", want: "127.0.0.1"},
		{name: "internationalized", host: "bücher.example", want: "xn--bcher-kva.example"},
		{name: "empty", host: "", wantError: ErrEmptyValue},
		{name: "scheme prefix", host: "https://vercel.app", wantError: ErrHostScheme},
		{name: "path segment", host: "vercel.app/images", wantError: ErrHostPath},
		{name: "query", host: "vercel.app?x=1", wantError: ErrHostPath},
		{name: "port", host: "localhost:3000", wantError: ErrHostPort},
		{name: "bracketed ipv6", host: "[::1]", wantError: ErrInvalidHost},
		{name: "bracketed ipv6 with port", host: "[::1]:3000", wantError: ErrInvalidHost},
		{name: "bare ipv6", host: "2001:db8::1", wantError: ErrInvalidHost},
		{name: "trailing dot", host: "vercel.app.", wantError: ErrInvalidHost},
		{name: "leading dot", host: ".vercel.app", wantError: ErrInvalidHost},
		{name: "empty label", host: "a..b", wantError: ErrInvalidHost},
		{name: "wildcard", host: "*.vercel.app", wantError: ErrInvalidHost},
		{name: "whitespace", host: "ver cel.app", wantError: ErrInvalidHost},
		{name: "leading hyphen label", host: "-bad.example", wantError: ErrInvalidHost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonicalHost(tt.host)
			if tt.wantError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalHost_IPv6IsNotAPort(t *testing.T) {
	_, err := CanonicalHost("[::1]")
	assert.NotErrorIs(t, err, ErrHostPort)
	assert.Contains(t, err.Error(), "IPv6 literal")
}

func TestHostList_Valid(t *testing.T) {
	assert.NoError(t, HostList([]string{"localhost", "vercel.app", "cdn.example.com"}))
	assert.NoError(t, HostList([]string{}))
}

func TestHostList_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, HostList("vercel.app"), ErrUnsupportedType)
}

func TestHostList_DuplicateIsCaseInsensitive(t *testing.T) {
	err := HostList([]string{"a.com", "A.COM"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateHost)

	var elemErr *ElementError
	require.True(t, errors.As(err, &elemErr))
	assert.Equal(t, 1, elemErr.Index)
}

func TestHostList_ReportsEveryBadEntry(t *testing.T) {
	err := HostList([]string{"https://a.com", "ok.com", "b.com/x", "OK.com"})
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	errs := joined.Unwrap()
	require.Len(t, errs, 3)

	indexes := make([]int, 0, len(errs))
	for _, e := range errs {
		var elemErr *ElementError
		require.True(t, errors.As(e, &elemErr))
		indexes = append(indexes, elemErr.Index)
	}
	assert.Equal(t, []int{0, 2, 3}, indexes)
	assert.ErrorIs(t, errs[0], ErrHostScheme)
	assert.ErrorIs(t, errs[1], ErrHostPath)
	assert.ErrorIs(t, errs[2], ErrDuplicateHost)
}
