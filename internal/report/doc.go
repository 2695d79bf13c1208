// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report renders resolver results for humans and machines:
// resolved configs and collaborator views as JSON, YAML or TOML, the
// option schema as a table, and resolution failures as a styled report.
package report
