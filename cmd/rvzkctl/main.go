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

// Command rvzkctl drives the constraint-trace core end-to-end: it reads a
// JSON-encoded execution block, fills a trace through the CPU and ADD/ADDI
// chips, and self-checks the result. It is not the prover; it is the
// ambient CLI/tooling surface around the core, the way a real zkVM's
// toolbox wraps its constraint system (see the teacher's pkg/cmd).
package main

import "github.com/rvzk/rvzk/cmd/rvzkctl/cmd"

func main() {
	cmd.Execute()
}
