/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"fmt"
)

var (
	// These variables are set using -ldflags
	kvinspectVersion string
	gitBranch        string
	lastCommitSHA    string
	lastCommitTime   string
)

// BuildDetails returns a string containing details about the kvinspect binary.
func BuildDetails() string {
	return fmt.Sprintf(`
kvinspect version : %v
Commit SHA-1      : %v
Commit timestamp  : %v
Branch            : %v

Licensed under the Apache Public License 2.0.
© Hypermode Inc.

`,
		Version(), lastCommitSHA, lastCommitTime, gitBranch)
}

// Version returns a string containing the kvinspect version.
func Version() string {
	if kvinspectVersion == "" {
		return "dev"
	}
	return kvinspectVersion
}
