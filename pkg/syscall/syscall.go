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

// Package syscall declares the guest-runtime's host-call surface (§6): a
// small fixed set of calls identified by integer codes in register a7.
// These constants are documentation only — the constraint-trace core never
// executes a syscall, it only ever observes the resulting opcode stream
// the upstream VM interpreter reports. The runtime that actually services
// these calls is an external collaborator specified only by interface.
package syscall

// Code identifies one guest-runtime host call.
type Code uint32

// The closed set of host-call codes this core is aware of.
const (
	// WriteLog writes len bytes starting at ptr to file descriptor fd,
	// returning a status code.
	WriteLog Code = 512
	// Exit terminates the guest program with the given exit code.
	Exit Code = 513
	// ReadPrivateIn reads one byte of private input, returning the
	// sentinel 0xFFFF_FFFF once none remains.
	ReadPrivateIn Code = 1024
	// CycleCount writes the current cycle count to ptr/len.
	CycleCount Code = 1025
)

// ReadPrivateInSentinel is returned by ReadPrivateIn once no private input
// remains.
const ReadPrivateInSentinel uint32 = 0xFFFF_FFFF

var names = map[Code]string{
	WriteLog:      "write_log",
	Exit:          "exit",
	ReadPrivateIn: "read_private_in",
	CycleCount:    "cycle_count",
}

// String returns the host call's mnemonic, or "unknown_syscall" for a code
// outside the closed set above.
func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}

	return "unknown_syscall"
}
