// SPDX-License-Identifier: MIT

// Package gltfsrc extracts vertex positions from glTF and GLB files.
package gltfsrc

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/katalvlaran/lvmath/vector"
)

// Load opens a .gltf or .glb file and returns the positions of every mesh
// primitive.
func Load(path string) ([]vector.Vec3[float64], error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	return Positions(doc)
}

// Positions reads the POSITION attribute of every primitive in doc, in mesh
// then primitive order. Primitives without positions are skipped. Node
// transforms are not applied.
func Positions(doc *gltf.Document) ([]vector.Vec3[float64], error) {
	var out []vector.Vec3[float64]
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			if posIdx < 0 || posIdx >= len(doc.Accessors) {
				return nil, fmt.Errorf("mesh %q: accessor %d out of range", m.Name, posIdx)
			}

			acr := doc.Accessors[posIdx]
			if acr.Type != gltf.AccessorVec3 {
				return nil, fmt.Errorf("mesh %q: expected VEC3, got %v", m.Name, acr.Type)
			}

			pos, err := modeler.ReadPosition(doc, acr, nil)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: read positions: %w", m.Name, err)
			}
			for _, p := range pos {
				out = append(out, vector.V3(float64(p[0]), float64(p[1]), float64(p[2])))
			}
		}
	}

	return out, nil
}
