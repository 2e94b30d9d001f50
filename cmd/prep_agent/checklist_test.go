package main

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistCommand_ToggleAndReset(t *testing.T) {
	binaryPath := getBinaryPath(t)
	dataFile := filepath.Join(t.TempDir(), "prep_data.json")

	// Empty checklist
	cmd := exec.Command(binaryPath, "checklist", "--data-file", dataFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "0/10 passed")

	// Check one item
	cmd = exec.Command(binaryPath, "checklist", "toggle", "3", "--data-file", dataFile)
	output, err = cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "1/10 passed")

	// Reset clears it
	cmd = exec.Command(binaryPath, "checklist", "reset", "--data-file", dataFile)
	output, err = cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Checklist cleared")
}

func TestChecklistCommand_UnknownItem(t *testing.T) {
	binaryPath := getBinaryPath(t)
	dataFile := filepath.Join(t.TempDir(), "prep_data.json")

	cmd := exec.Command(binaryPath, "checklist", "toggle", "99", "--data-file", dataFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unknown test item")
}

func TestShipCommand_StatusAndSubmit(t *testing.T) {
	binaryPath := getBinaryPath(t)
	dataFile := filepath.Join(t.TempDir(), "prep_data.json")

	cmd := exec.Command(binaryPath, "ship", "status", "--data-file", dataFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Not shipped yet")

	cmd = exec.Command(binaryPath, "ship", "submit",
		"--data-file", dataFile,
		"--github", "https://github.com/u/r")
	output, err = cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "https://github.com/u/r")

	// Invalid link is stored but flagged
	cmd = exec.Command(binaryPath, "ship", "submit",
		"--data-file", dataFile,
		"--deploy", "not a url")
	output, err = cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Invalid URL format")
}
