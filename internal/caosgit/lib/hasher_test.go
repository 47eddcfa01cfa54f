package lib

import (
	"strings"
	"testing"
)

func TestHashing(t *testing.T) {
	// Known SHA-256 hash for the string "hello world"
	const helloWorldHash = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	// Known SHA-256 hash for an empty input
	const emptyHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

	t.Run("GetHash for in-memory content", func(t *testing.T) {
		hash := GetHash([]byte("hello world"))
		if hash != helloWorldHash {
			t.Errorf("GetHash() for 'hello world' was incorrect, got: %s, want: %s", hash, helloWorldHash)
		}
	})

	t.Run("GetHash for empty content", func(t *testing.T) {
		hash := GetHash([]byte{})
		if hash != emptyHash {
			t.Errorf("GetHash() for empty content was incorrect, got: %s, want: %s", hash, emptyHash)
		}
	})

	t.Run("GetHash is deterministic and distinguishes inputs", func(t *testing.T) {
		a := []byte("parent \nmessage m1\n\n")
		b := []byte("parent \nmessage m2\n\n")
		if GetHash(a) != GetHash(a) {
			t.Error("GetHash() returned different values for the same input")
		}
		if GetHash(a) == GetHash(b) {
			t.Error("GetHash() returned the same value for different inputs")
		}
	})
}

func TestIsValidHash(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "real hash", input: GetHash([]byte("x")), want: true},
		{name: "empty", input: "", want: false},
		{name: "too short", input: "abc123", want: false},
		{name: "uppercase", input: strings.ToUpper(GetHash([]byte("x"))), want: false},
		{name: "non hex", input: strings.Repeat("g", HashLength), want: false},
		{name: "path traversal", input: "../HEAD", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidHash(tc.input); got != tc.want {
				t.Errorf("IsValidHash(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
