package syscall

import "testing"

func TestStringKnownCodes(t *testing.T) {
	cases := map[Code]string{
		WriteLog:      "write_log",
		Exit:          "exit",
		ReadPrivateIn: "read_private_in",
		CycleCount:    "cycle_count",
	}

	for code, want := range cases {
		if got := code.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", code, got, want)
		}
	}
}

func TestStringUnknownCode(t *testing.T) {
	if got := Code(9999).String(); got != "unknown_syscall" {
		t.Fatalf("unknown code String() = %q, want %q", got, "unknown_syscall")
	}
}
