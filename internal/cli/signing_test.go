package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()

	// Capture os.Stdout since the CLI uses fmt.Printf directly
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	rootCmd.SetArgs(args)
	err = rootCmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), err
}

func writeGitConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootCommand_Help(t *testing.T) {
	stdout, err := executeCommand(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "typed configuration snapshots")
}

func TestSigningCommand_Text(t *testing.T) {
	path := writeGitConfig(t, `
[gpg]
	format = ssh
[gpg "ssh"]
	program = ssh-keygen
[tag]
	gpgSign = true
`)

	stdout, err := executeCommand(t, "signing", "--json=false", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Format: ssh")
	assert.Contains(t, stdout, "Program: ssh-keygen")
	assert.Contains(t, stdout, "Sign all tags: true")
	assert.Contains(t, stdout, "Signing key: (unset)")
}

func TestSigningCommand_JSON(t *testing.T) {
	path := writeGitConfig(t, `
[user]
	signingKey = ABCD1234
[commit]
	gpgSign = true
[gpg]
	program = gpg2
`)

	stdout, err := executeCommand(t, "signing", "--json", "--config", path)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))

	assert.Equal(t, "openpgp", payload["format"])
	assert.Equal(t, "ABCD1234", payload["signing_key"])
	assert.Equal(t, "gpg2", payload["program"])
	assert.Equal(t, true, payload["sign_commits"])
	assert.Equal(t, false, payload["sign_all_tags"])
	// Unset optionals are omitted from the JSON payload.
	_, present := payload["ssh_revocation_file"]
	assert.False(t, present)
}

func TestSigningCommand_MissingConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-config")

	stdout, err := executeCommand(t, "signing", "--json=false", "--config", path)
	require.NoError(t, err)

	// A missing config file resolves to all defaults.
	assert.Contains(t, stdout, "Format: openpgp")
	assert.Contains(t, stdout, "Sign commits: false")
	assert.Contains(t, stdout, "Program: (unset)")
}

func TestSigningCommand_MalformedConfigFile(t *testing.T) {
	path := writeGitConfig(t, "[unterminated\n")

	_, err := executeCommand(t, "signing", "--json=false", "--config", path)
	require.Error(t, err)
}
