/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"runtime"

	"github.com/golang/glog"
	"github.com/pkg/profile"
	"github.com/spf13/viper"
)

type stopper interface {
	Stop()
}

// StartProfile starts the profiler selected by --profile_mode. The returned
// stopper must be stopped before the process exits for the profile to be
// written.
func StartProfile(conf *viper.Viper) stopper {
	profileMode := conf.GetString("profile_mode")
	switch profileMode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.Quiet)
	case "mem":
		return profile.Start(profile.MemProfile, profile.Quiet)
	case "mutex":
		return profile.Start(profile.MutexProfile, profile.Quiet)
	case "block":
		blockRate := conf.GetInt("block_rate")
		runtime.SetBlockProfileRate(blockRate)
		return profile.Start(profile.BlockProfile, profile.Quiet)
	case "":
		// do nothing
		return noOpStopper{}
	default:
		glog.Warningf("Invalid profile mode: %q, profiling disabled", profileMode)
		return noOpStopper{}
	}
}

type noOpStopper struct{}

func (noOpStopper) Stop() {}
