// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/require"
)

const sampleJob = `
points:
  - [0, 0, 0]
  - [1, 1, 1]
steps:
  - scale: [2, 2, 2]
  - translate: [1, 0, 0]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestBounds(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "job.yaml", sampleJob)
	out, err := runCmd(t, "bounds", "--job", path, "--log-level", "error")
	require.NoError(t, err)
	require.Equal(t, "min (1, 0, 0)\nmax (3, 2, 2)\nsize (2, 2, 2)\n", out)
}

func TestBounds_PrintPoints(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "job.yaml", sampleJob)
	out, err := runCmd(t, "bounds", "--job", path, "--print-points", "--workers", "2", "--chunk-size", "1")
	require.NoError(t, err)
	require.Equal(t, "(1, 0, 0)\n(3, 2, 2)\nmin (1, 0, 0)\nmax (3, 2, 2)\nsize (2, 2, 2)\n", out)
}

func TestBounds_EmptyJob(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "job.yaml", "steps:\n  - rotate_z: 90\n")
	out, err := runCmd(t, "bounds", "--job", path)
	require.NoError(t, err)
	require.Equal(t, "empty\n", out)
}

func TestBounds_Model(t *testing.T) {
	t.Parallel()

	doc := gltf.NewDocument()
	idx := modeler.WritePosition(doc, [][3]float32{{-1, 0, 0}, {0, 4, 0}})
	doc.Meshes = []*gltf.Mesh{{Primitives: []*gltf.Primitive{{Attributes: map[string]int{gltf.POSITION: idx}}}}}
	model := filepath.Join(t.TempDir(), "m.glb")
	require.NoError(t, gltf.SaveBinary(doc, model))

	path := writeFile(t, "job.yaml", "steps:\n  - translate: [0, 0, 5]\n")
	out, err := runCmd(t, "bounds", "--job", path, model)
	require.NoError(t, err)
	require.Equal(t, "min (-1, 0, 5)\nmax (0, 4, 5)\nsize (1, 4, 0)\n", out)
}

func TestBounds_Errors(t *testing.T) {
	t.Parallel()

	_, err := runCmd(t, "bounds")
	require.Error(t, err)

	_, err = runCmd(t, "bounds", "--job", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	bad := writeFile(t, "bad.yaml", "steps:\n  - {}\n")
	_, err = runCmd(t, "bounds", "--job", bad)
	require.ErrorContains(t, err, "exactly one transform")

	ok := writeFile(t, "job.yaml", sampleJob)
	_, err = runCmd(t, "bounds", "--job", ok, "--log-level", "chatty")
	require.Error(t, err)

	_, err = runCmd(t, "bounds", "--job", ok, "--chunk-size", "0")
	require.Error(t, err)
}
