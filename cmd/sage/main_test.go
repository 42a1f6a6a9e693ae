package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAsk_FromArgs(t *testing.T) {
	out, err := execute(t, "", "ask", "what did krishna say about duty")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "You asked: what did krishna say about duty\n"))
	assert.Contains(t, out, "• Bhagavad Gita 2.47: ")
	assert.Contains(t, out, "• Dhammapada 1.1: ")
}

func TestAsk_FromStdin(t *testing.T) {
	out, err := execute(t, "  krishna duty  \n", "ask", "--tone", "scientific")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Question: krishna duty\n"))
	assert.Contains(t, out, "1. Bhagavad Gita 2.47: ")
}

func TestAsk_Explain(t *testing.T) {
	out, err := execute(t, "", "ask", "--explain", "--limit", "1", "krishna")
	require.NoError(t, err)

	assert.Contains(t, out, "SCORE")
	assert.Regexp(t, `(?m)^\s*2\s+Bhagavad Gita 2\.47\s+krishna,duty,`, out)
	assert.Regexp(t, `(?m)^\s*0\s+Dhammapada 1\.1\s+buddha,`, out)
}

func TestAsk_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"empty prompt", []string{"ask", ""}},
		{"unknown tone", []string{"ask", "--tone", "sarcastic", "hello"}},
		{"negative limit", []string{"ask", "--limit", "-1", "hello"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, "", tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestAsk_TooLong(t *testing.T) {
	_, err := execute(t, strings.Repeat("a", 4001), "ask")
	assert.Error(t, err)
}

func TestTones(t *testing.T) {
	out, err := execute(t, "", "tones")
	require.NoError(t, err)
	assert.Equal(t, "neutral (default)\npoetic\nscientific\ntraditional\n", out)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "sage dev (commit unknown, built unknown)\n", out)
}
