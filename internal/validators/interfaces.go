// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the semantic predicates attached to option
// descriptors.
//
// Core concepts:
//   - Func: validates a value that has already passed its kind check.
//     A nil return means the value is acceptable.
//   - List validators report one error per offending element, wrapped in
//     [ElementError] and combined with errors.Join, so callers can surface
//     every problem in a single pass.
//
// Validators never coerce or normalize input: a value is either accepted
// as authored or rejected.
package validators

// Func validates an option value after its kind check succeeded.
type Func func(value any) error
