// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter projects a resolved configuration onto the option sets
// its downstream collaborators consume: the bundler, the output packager
// and the image optimizer. Collaborators read their view and never the
// resolved config itself.
package adapter
