// Copyright rvzk Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rvzk/rvzk/pkg/chip"
	"github.com/rvzk/rvzk/pkg/chips/add"
	"github.com/rvzk/rvzk/pkg/chips/cpu"
	"github.com/rvzk/rvzk/pkg/selfcheck"
	"github.com/rvzk/rvzk/pkg/trace"
	tracejson "github.com/rvzk/rvzk/pkg/trace/json"
)

var runCmd = &cobra.Command{
	Use:   "run <execution-block.json>",
	Short: "Fill a trace from a JSON execution block and self-check its constraints.",
	Args:  cobra.ExactArgs(1),
	Run:   runRun,
}

func init() {
	runCmd.Flags().Uint("log-size", trace.LogLanes, "log2 of the trace's row count")
}

func runRun(cmd *cobra.Command, args []string) {
	logSize := getFlagUint(cmd, "log-size")

	if getFlagBool(cmd, "verbose") {
		log.SetLevel(logrus.DebugLevel)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		log.WithError(err).Fatal("rvzkctl: reading execution block")
	}

	steps, err := tracejson.Decode(data)
	if err != nil {
		log.WithError(err).Fatal("rvzkctl: decoding execution block")
	}

	tbl, err := trace.NewTable(logSize)
	if err != nil {
		log.WithError(err).Fatal("rvzkctl: constructing trace table")
	}

	tracejson.BuildProgramTable(tbl, steps)

	registry := chip.NewRegistry(cpu.New(), add.New())
	if err := registry.FillSteps(tbl, steps); err != nil {
		log.WithError(err).Fatal("rvzkctl: filling trace")
	}

	report := selfcheck.Run(tbl, registry, log)

	printProgress(len(steps), tbl.NumRows())

	if !report.Passed() {
		log.WithFields(logrus.Fields{
			"row":        report.Violation.Row,
			"constraint": report.Violation.ConstraintName,
			"residual":   report.Violation.Residual,
		}).Error("rvzkctl: self-check failed")
		os.Exit(1)
	}

	fmt.Printf("self-check passed: %d steps, %d constraints tracked across %d rows\n",
		len(steps), report.Coverage.Len(), tbl.NumRows())
}

// printProgress prints a terminal-width-aware one-line summary when stdout
// is an interactive terminal, and stays silent otherwise (e.g. piped in
// CI). Mirrors the teacher's termio width probe (golang.org/x/term) rather
// than assuming a fixed line width.
func printProgress(steps int, rows uint) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return
	}

	line := fmt.Sprintf("filled %d/%d rows", steps, rows)
	if len(line) > width {
		line = line[:width]
	}

	fmt.Println(line)
}
