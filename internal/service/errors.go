// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrNoSources  = errors.New("no config sources provided")
	ErrNilSource  = errors.New("config source is nil")
	ErrLoadFailed = errors.New("error loading config sources")
)
