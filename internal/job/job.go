// SPDX-License-Identifier: MIT

// Package job reads transform jobs from YAML and turns them into matrices.
//
// A job lists points and an ordered chain of steps:
//
//	points:
//	  - [0, 0, 0]
//	  - [1, 1, 1]
//	steps:
//	  - scale: [2, 2, 2]
//	  - rotate_z: 90
//	  - translate: [1, 0, 0]
//
// Steps are applied in the order written. Angles are degrees.
package job

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

// ErrInvalidStep is returned for a step that sets no transform or more
// than one.
var ErrInvalidStep = errors.New("job: step must set exactly one transform")

// Job is the decoded job file.
type Job struct {
	Points      [][3]float64 `yaml:"points"`
	Steps       []Step       `yaml:"steps"`
	Workers     int          `yaml:"workers"`
	PrintPoints bool         `yaml:"print_points"`
}

// Step is one transform in the chain. Exactly one field is set.
type Step struct {
	Translate   *[3]float64  `yaml:"translate"`
	Scale       *[3]float64  `yaml:"scale"`
	RotateX     *float64     `yaml:"rotate_x"`
	RotateY     *float64     `yaml:"rotate_y"`
	RotateZ     *float64     `yaml:"rotate_z"`
	AxisAngle   *AxisAngle   `yaml:"axis_angle"`
	Quat        *[4]float64  `yaml:"quat"`
	LookAt      *LookAt      `yaml:"look_at"`
	Perspective *Perspective `yaml:"perspective"`
}

// AxisAngle rotates Degrees about Axis.
type AxisAngle struct {
	Axis    [3]float64 `yaml:"axis"`
	Degrees float64    `yaml:"degrees"`
}

// LookAt is a view transform.
type LookAt struct {
	Eye    [3]float64 `yaml:"eye"`
	Target [3]float64 `yaml:"target"`
	Up     [3]float64 `yaml:"up"`
}

// Perspective is a symmetric projection; FovY is in degrees.
type Perspective struct {
	FovY   float64 `yaml:"fovy"`
	Aspect float64 `yaml:"aspect"`
	Near   float64 `yaml:"near"`
	Far    float64 `yaml:"far"`
}

// Load decodes a job, rejecting unknown keys.
func Load(r io.Reader) (*Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var j Job
	if err := dec.Decode(&j); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("job: decode: %w", err)
	}
	for i := range j.Steps {
		if _, err := j.Steps[i].Matrix(); err != nil {
			return nil, fmt.Errorf("job: step %d: %w", i, err)
		}
	}

	return &j, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("job: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Vectors returns the job's points.
func (j *Job) Vectors() []vector.Vec3[float64] {
	out := make([]vector.Vec3[float64], len(j.Points))
	for i, p := range j.Points {
		out[i] = v3(p)
	}

	return out
}

// Matrix composes every step in order. No steps give the identity.
func (j *Job) Matrix() (matrix.Mat4[float64], error) {
	m := matrix.Identity4[float64]()
	for i := range j.Steps {
		sm, err := j.Steps[i].Matrix()
		if err != nil {
			return matrix.Mat4[float64]{}, fmt.Errorf("job: step %d: %w", i, err)
		}
		m = matrix.Mul(m, sm)
	}

	return m, nil
}

// Kind names the transform the step sets, or "" if it sets none.
func (s *Step) Kind() string {
	kinds := s.kinds()
	if len(kinds) != 1 {
		return ""
	}

	return kinds[0]
}

func (s *Step) kinds() []string {
	var k []string
	if s.Translate != nil {
		k = append(k, "translate")
	}
	if s.Scale != nil {
		k = append(k, "scale")
	}
	if s.RotateX != nil {
		k = append(k, "rotate_x")
	}
	if s.RotateY != nil {
		k = append(k, "rotate_y")
	}
	if s.RotateZ != nil {
		k = append(k, "rotate_z")
	}
	if s.AxisAngle != nil {
		k = append(k, "axis_angle")
	}
	if s.Quat != nil {
		k = append(k, "quat")
	}
	if s.LookAt != nil {
		k = append(k, "look_at")
	}
	if s.Perspective != nil {
		k = append(k, "perspective")
	}

	return k
}

func v3(a [3]float64) vector.Vec3[float64] { return vector.V3(a[0], a[1], a[2]) }
