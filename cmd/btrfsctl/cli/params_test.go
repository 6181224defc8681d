// Copyright 2026 The btrfsctl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Aliases  string   `flag:"aliases" desc:"alias file"`
		Verbose  bool     `flag:"verbose,v" desc:"enable verbose output"`
		FD       int64    `flag:"fd" desc:"open descriptor"`
		Transid  uint64   `flag:"transid" desc:"transaction id"`
		Targets  []string `flag:"target" desc:"target list"`
		Untagged string   // no flag tag — should be skipped
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"--aliases", "/etc/btrfsctl/targets.jsonc",
		"-v",
		"--fd", "7",
		"--transid", "18446744073709551615",
		"--target", "a,b",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Aliases != "/etc/btrfsctl/targets.jsonc" {
		t.Errorf("Aliases = %q", p.Aliases)
	}
	if !p.Verbose {
		t.Error("Verbose = false, want true")
	}
	if p.FD != 7 {
		t.Errorf("FD = %d, want 7", p.FD)
	}
	if p.Transid != 18446744073709551615 {
		t.Errorf("Transid = %d, want max uint64", p.Transid)
	}
	if len(p.Targets) != 2 {
		t.Errorf("Targets = %v, want [a b]", p.Targets)
	}
	if flagSet.Lookup("untagged") != nil {
		t.Error("untagged field was bound")
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		FD      int64  `flag:"fd" default:"-1" desc:"open descriptor"`
		Transid uint64 `flag:"transid" default:"0" desc:"transaction id"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.FD != -1 {
		t.Errorf("FD default = %d, want -1", p.FD)
	}
	if p.Transid != 0 {
		t.Errorf("Transid default = %d, want 0", p.Transid)
	}
}

func TestBindFlags_NegativeUint64Rejected(t *testing.T) {
	type params struct {
		Transid uint64 `flag:"transid" desc:"transaction id"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse([]string{"--transid", "-1"}); err == nil {
		t.Fatal("negative value accepted for uint64 flag")
	}
}

func TestBindFlags_EmbeddedJSONOutput(t *testing.T) {
	type params struct {
		JSONOutput
		FD int64 `flag:"fd" desc:"open descriptor"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse([]string{"--json"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.OutputJSON {
		t.Error("embedded --json flag not bound")
	}
}

func TestBindFlags_UnsupportedType(t *testing.T) {
	type params struct {
		Rate float64 `flag:"rate" desc:"unsupported"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(&p, flagSet)
	if err == nil || !strings.Contains(err.Error(), "unsupported type") {
		t.Fatalf("BindFlags error = %v, want unsupported type", err)
	}
}

func TestBindFlags_NonPointerRejected(t *testing.T) {
	type params struct{}
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(params{}, flagSet); err == nil {
		t.Fatal("BindFlags accepted a non-pointer")
	}
}
