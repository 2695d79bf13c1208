// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"regexp"
)

// maxPackageNameLength mirrors the npm registry limit.
const maxPackageNameLength = 214

// packageNameRe accepts "name" and "@scope/name" identifiers. Upper-case
// letters are allowed since legacy registry names and local native modules
// still use them.
var packageNameRe = regexp.MustCompile(`^(?:@[a-zA-Z0-9~-][a-zA-Z0-9._~-]*/)?[a-zA-Z0-9~-][a-zA-Z0-9._~-]*$`)

// PackageName checks that name is a well-formed package identifier.
func PackageName(name string) error {
	if name == "" {
		return ErrEmptyValue
	}
	if len(name) > maxPackageNameLength {
		return fmt.Errorf("%w: %q exceeds %d characters", ErrInvalidPackageName, name, maxPackageNameLength)
	}
	if !packageNameRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidPackageName, name)
	}
	return nil
}

// PackageSet validates every entry of a []string package set.
func PackageSet(value any) error {
	names, ok := value.([]string)
	if !ok {
		return ErrUnsupportedType
	}

	var errs []error
	for i, name := range names {
		if err := PackageName(name); err != nil {
			errs = append(errs, AtIndex(i, err))
		}
	}
	return errors.Join(errs...)
}
