// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strings"
)

// OneOf returns a validator accepting only strings exactly equal to one of
// allowed. Comparison is case-sensitive; no trimming or folding happens.
func OneOf(allowed ...string) Func {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	quoted := make([]string, len(allowed))
	for i, a := range allowed {
		quoted[i] = fmt.Sprintf("%q", a)
	}
	expected := strings.Join(quoted, ", ")

	return func(value any) error {
		s, ok := value.(string)
		if !ok {
			return ErrUnsupportedType
		}
		if _, ok := set[s]; !ok {
			return fmt.Errorf("%w: got %q, expected one of %s", ErrNotAllowed, s, expected)
		}
		return nil
	}
}
