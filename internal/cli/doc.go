// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the buildcfg command tree:
//
//	buildcfg resolve [files...]   resolve build options and print them
//	buildcfg schema               describe the recognized options
//	buildcfg version              print build information
//
// Commands write results to stdout, diagnostics and error reports to
// stderr. [Execute] maps failures to process exit codes.
package cli
