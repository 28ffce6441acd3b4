/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"github.com/golang/glog"
)

// ToGlog is a logger that forwards the output to glog. It satisfies the
// logger interfaces of both badger and pebble.
type ToGlog struct{}

func (rl *ToGlog) Debugf(format string, v ...interface{}) { glog.V(3).Infof(format, v...) }
func (rl *ToGlog) Errorf(format string, v ...interface{}) { glog.Errorf(format, v...) }
func (rl *ToGlog) Infof(format string, v ...interface{}) { glog.Infof(format, v...) }
func (rl *ToGlog) Warningf(format string, v ...interface{}) { glog.Warningf(format, v...) }
func (rl *ToGlog) Fatalf(format string, v ...interface{}) { glog.Fatalf(format, v...) }
