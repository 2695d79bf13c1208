// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrUnresolvedConfig    = errors.New("config has not been resolved")
	ErrUnknownCollaborator = errors.New("unknown collaborator")
)
