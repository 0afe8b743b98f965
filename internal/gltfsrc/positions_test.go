// SPDX-License-Identifier: MIT
package gltfsrc_test

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/internal/gltfsrc"
	"github.com/katalvlaran/lvmath/vector"
)

// triangleDoc builds a single-triangle document with embedded buffers.
func triangleDoc() *gltf.Document {
	doc := gltf.NewDocument()
	idx := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 2, -1}})
	doc.Meshes = []*gltf.Mesh{{
		Name: "tri",
		Primitives: []*gltf.Primitive{
			{Attributes: map[string]int{gltf.POSITION: idx}},
			{Attributes: map[string]int{}},
		},
	}}

	return doc
}

func TestPositions(t *testing.T) {
	t.Parallel()

	got, err := gltfsrc.Positions(triangleDoc())
	require.NoError(t, err)
	require.Equal(t, []vector.Vec3[float64]{
		vector.V3(0.0, 0, 0),
		vector.V3(1.0, 0, 0),
		vector.V3(0.0, 2, -1),
	}, got)
}

func TestPositions_BadAccessor(t *testing.T) {
	t.Parallel()

	doc := triangleDoc()
	doc.Meshes[0].Primitives[0].Attributes[gltf.POSITION] = 42
	_, err := gltfsrc.Positions(doc)
	require.Error(t, err)
}

func TestLoad_GLB(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tri.glb")
	require.NoError(t, gltf.SaveBinary(triangleDoc(), path))

	got, err := gltfsrc.Load(path)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, vector.V3(0.0, 2, -1), got[2])

	_, err = gltfsrc.Load(filepath.Join(t.TempDir(), "missing.glb"))
	require.Error(t, err)
}
