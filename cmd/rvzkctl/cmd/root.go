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

// Package cmd implements rvzkctl's cobra command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but not when installing via
// "go install".
var Version string

// log is the structured logger shared by every subcommand.
var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "rvzkctl",
	Short: "Driver for the rvzk constraint-trace core.",
	Long:  "Fills and self-checks execution traces against the registered instruction chips.",
}

// Execute runs the root command. Called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// getFlagBool gets an expected bool flag, or exits if the flag is
// misconfigured; mirrors the teacher's cmd.GetFlag helper.
func getFlagBool(cmd *cobra.Command, flag string) bool {
	v, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return v
}

// getFlagUint gets an expected uint flag, or exits if the flag is
// misconfigured.
func getFlagUint(cmd *cobra.Command, flag string) uint {
	v, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return v
}
