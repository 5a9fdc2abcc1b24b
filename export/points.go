// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goparam/gm"
)

// ScalePoints returns a copy of points, each scaled by scale.
func ScalePoints(points []gm.Point3, scale F) []gm.Point3 {
	out := make([]gm.Point3, len(points))
	for i, p := range points {
		out[i] = p.Scale(scale)
	}
	return out
}

// LoadPointCloud reads whitespace/comma/tab-delimited "x y z" lines,
// skipping lines starting with '#'. A leading label field is tolerated:
// a 4-field line is read as "label x y z".
func LoadPointCloud(filename string) ([]gm.Point3, error) {
	data, err := io.ReadFile(filename)
	if err != nil {
		return nil, chk.Err("export.LoadPointCloud: cannot read %q: %v", filename, err)
	}
	var points []gm.Point3
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == ',' || r == '\t'
		})
		var x, y, z string
		switch len(fields) {
		case 3:
			x, y, z = fields[0], fields[1], fields[2]
		case 4:
			x, y, z = fields[1], fields[2], fields[3]
		default:
			continue
		}
		px, errX := strconv.ParseFloat(x, 64)
		py, errY := strconv.ParseFloat(y, 64)
		pz, errZ := strconv.ParseFloat(z, 64)
		if errX != nil || errY != nil || errZ != nil {
			return nil, chk.Err("export.LoadPointCloud: malformed line %q in %q", line, filename)
		}
		points = append(points, gm.NewVec3(px, py, pz))
	}
	return points, nil
}

// SavePointCloud writes one "x y z" line per point.
func SavePointCloud(filename string, points []gm.Point3) error {
	var buf strings.Builder
	for _, p := range points {
		buf.WriteString(io.Sf("%v %v %v\n", p.X, p.Y, p.Z))
	}
	return writeString(filename, buf.String())
}

// SavePointCloudWithNormal writes one "x y z nx ny nz" line per
// point/normal pair.
func SavePointCloudWithNormal(filename string, points []gm.Point3, normals []gm.Vec3) error {
	if len(points) != len(normals) {
		chk.Panic("export.SavePointCloudWithNormal: len(points)=%d != len(normals)=%d", len(points), len(normals))
	}
	var buf strings.Builder
	for i, p := range points {
		n := normals[i]
		buf.WriteString(io.Sf("%v %v %v %v %v %v\n", p.X, p.Y, p.Z, n.X, n.Y, n.Z))
	}
	return writeString(filename, buf.String())
}

// SavePoints writes one "x,y" line per 2D point.
func SavePoints(filename string, points []gm.Vec2) error {
	var buf strings.Builder
	for _, p := range points {
		buf.WriteString(io.Sf("%v,%v\n", p.X, p.Y))
	}
	return writeString(filename, buf.String())
}

func writeString(filename, content string) error {
	file, err := os.Create(filename)
	if err != nil {
		return chk.Err("export: cannot create %q: %v", filename, err)
	}
	defer file.Close()
	if _, err = file.WriteString(content); err != nil {
		return chk.Err("export: %v", err)
	}
	return nil
}
