// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package step

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// rectangularPlaneStep is a hand-written ISO-10303-21 physical file
// describing a single planar ADVANCED_FACE bounded by a 10x10 square, in
// the XY plane, traversed A(0,0,0)->B(10,0,0)->C(10,10,0)->D(0,10,0)->A.
const rectangularPlaneStep = `ISO-10303-21;
HEADER;
ENDSEC;
DATA;
#1=CARTESIAN_POINT('',(0.,0.,0.));
#2=DIRECTION('',(0.,0.,1.));
#3=DIRECTION('',(1.,0.,0.));
#4=AXIS2_PLACEMENT_3D('',#1,#2,#3);
#5=PLANE('',#4);

#6=CARTESIAN_POINT('',(0.,0.,0.));
#7=CARTESIAN_POINT('',(10.,0.,0.));
#8=CARTESIAN_POINT('',(10.,10.,0.));
#9=CARTESIAN_POINT('',(0.,10.,0.));
#10=VERTEX_POINT('',#6);
#11=VERTEX_POINT('',#7);
#12=VERTEX_POINT('',#8);
#13=VERTEX_POINT('',#9);

#14=DIRECTION('',(1.,0.,0.));
#15=VECTOR('',#14,10.);
#16=LINE('',#6,#15);

#17=DIRECTION('',(0.,1.,0.));
#18=VECTOR('',#17,10.);
#19=LINE('',#7,#18);

#20=DIRECTION('',(-1.,0.,0.));
#21=VECTOR('',#20,10.);
#22=LINE('',#8,#21);

#23=DIRECTION('',(0.,-1.,0.));
#24=VECTOR('',#23,10.);
#25=LINE('',#9,#24);

#26=EDGE_CURVE('',#10,#11,#16,.T.);
#27=EDGE_CURVE('',#11,#12,#19,.T.);
#28=EDGE_CURVE('',#12,#13,#22,.T.);
#29=EDGE_CURVE('',#13,#10,#25,.T.);

#30=ORIENTED_EDGE('',*,*,#26,.T.);
#31=ORIENTED_EDGE('',*,*,#27,.T.);
#32=ORIENTED_EDGE('',*,*,#28,.T.);
#33=ORIENTED_EDGE('',*,*,#29,.T.);

#34=EDGE_LOOP('',(#30,#31,#32,#33));
#35=FACE_BOUND('',#34,.T.);
#36=ADVANCED_FACE('',(#35),#5,.T.);
ENDSEC;
END-ISO-10303-21;
`

func Test_read_model_planar_face01(tst *testing.T) {

	chk.PrintTitle("read_model_planar_face01")

	dir := tst.TempDir()
	filename := filepath.Join(dir, "rectangle.step")
	if err := os.WriteFile(filename, []byte(rectangularPlaneStep), 0644); err != nil {
		tst.Fatalf("WriteFile failed: %v", err)
	}

	m, err := ReadModel(filename)
	if err != nil {
		tst.Fatalf("ReadModel failed: %v", err)
	}
	if len(m.Faces) != 1 {
		tst.Fatalf("want 1 face, got %d", len(m.Faces))
	}

	mesh := m.Faces[0].GetTriangleMesh()
	if len(mesh.Triangles) == 0 {
		tst.Fatalf("expected a non-empty triangulation of the rectangular face")
	}
	if len(mesh.Triangles)%3 != 0 {
		tst.Fatalf("triangle index count must be a multiple of 3, got %d", len(mesh.Triangles))
	}
}

func Test_read_model_unsupported_entity_is_skipped01(tst *testing.T) {

	chk.PrintTitle("read_model_unsupported_entity_is_skipped01")

	source := `DATA;
#1=CARTESIAN_POINT('',(0.,0.,0.));
#2=DIRECTION('',(0.,0.,1.));
#3=DIRECTION('',(1.,0.,0.));
#4=AXIS2_PLACEMENT_3D('',#1,#2,#3);
#5=SPHERICAL_SURFACE('',#4,5.);
#6=EDGE_LOOP('',());
#7=FACE_BOUND('',#6,.T.);
#8=ADVANCED_FACE('',(#7),#5,.T.);
ENDSEC;
`
	dir := tst.TempDir()
	filename := filepath.Join(dir, "unsupported.step")
	if err := os.WriteFile(filename, []byte(source), 0644); err != nil {
		tst.Fatalf("WriteFile failed: %v", err)
	}

	m, err := ReadModel(filename)
	if err != nil {
		tst.Fatalf("ReadModel should not fail the whole import: %v", err)
	}
	if len(m.Faces) != 0 {
		tst.Fatalf("want the unsupported face skipped, got %d faces", len(m.Faces))
	}
}
