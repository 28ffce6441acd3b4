/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package audit records every attempted mutation as one JSON line.
package audit

import (
	"fmt"
	"os"

	"github.com/dgraph-io/ristretto/v2/z"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/hypermodeinc/kvinspect/codec"
	"github.com/hypermodeinc/kvinspect/x"
)

const (
	// Defaults for the --audit superflag. An empty output disables auditing.
	Defaults = `output=; size=100; days=30; compress=false;`

	defaultFilenameF = "kvinspect_audit_%d.log"

	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Event is one attempted mutation.
type Event struct {
	Database string
	Dir      string
	Column   string
	Family   uint32
	Key      []byte
	ValueLen int
	Status   string
	Err      error
}

// GetConf parses the --audit superflag. It returns nil when auditing is off.
// A malformed flag is fatal, like every other superflag.
func GetConf(conf string) *x.LoggerConf {
	if conf == "" || conf == Defaults {
		return nil
	}
	flag := z.NewSuperFlag(conf).MergeAndCheckDefault(Defaults)
	out := flag.GetString("output")
	if out == "" {
		return nil
	}
	if out != "stdout" {
		out = flag.GetPath("output")
	}
	return &x.LoggerConf{
		Output:     out,
		Compress:   flag.GetBool("compress"),
		Days:       flag.GetInt64("days"),
		Size:       flag.GetInt64("size"),
		MessageKey: "op",
	}
}

// Auditor writes events to an x.Logger. A nil *Auditor drops every event.
type Auditor struct {
	log *x.Logger
}

// New opens the audit log described by conf. A nil conf yields a nil
// Auditor.
func New(conf *x.LoggerConf) (*Auditor, error) {
	if conf == nil {
		return nil, nil
	}
	log, err := x.InitLogger(conf, fmt.Sprintf(defaultFilenameF, os.Getpid()))
	if err != nil {
		return nil, errors.Wrap(err, "while initializing audit log")
	}
	glog.Infoln("audit logs are enabled")
	return &Auditor{log: log}, nil
}

// Audit records e.
func (a *Auditor) Audit(e *Event) {
	if a == nil {
		return
	}
	args := []interface{}{
		"level", "AUDIT",
		"database", e.Database,
		"dir", e.Dir,
		"column", e.Column,
		"family", e.Family,
		"key", codec.EncodeHex(e.Key),
		"value_len", e.ValueLen,
		"status", e.Status,
	}
	if e.Err != nil {
		args = append(args, "error", e.Err.Error())
		a.log.AuditE("mutate", args...)
		return
	}
	a.log.AuditI("mutate", args...)
}

// Close flushes pending entries and closes the audit log.
func (a *Auditor) Close() error {
	if a == nil {
		return nil
	}
	if err := a.log.Close(); err != nil {
		return err
	}
	glog.Infoln("audit logs are closed.")
	return nil
}
