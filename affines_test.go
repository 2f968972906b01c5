package svgr

import "testing"

func TestComputeAffinesTopmost(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"uniform scale", Scale(2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ComputeAffines(tt.m, tt.m, 0)
			if !matrixNear(a.ForTemporarySurface, tt.m) {
				t.Errorf("ForTemporarySurface = %+v, want %+v", a.ForTemporarySurface, tt.m)
			}
			if !matrixNear(a.Compositing, Identity()) {
				t.Errorf("Compositing = %+v, want identity", a.Compositing)
			}
			if !matrixNear(a.ForSnapshot, Identity()) {
				t.Errorf("ForSnapshot = %+v, want identity", a.ForSnapshot)
			}
			if !matrixNear(a.OutsideTemporarySurface, tt.m) {
				t.Errorf("OutsideTemporarySurface = %+v, want %+v", a.OutsideTemporarySurface, tt.m)
			}
		})
	}
}

func TestComputeAffinesTopmostFactorsDeviceScale(t *testing.T) {
	initial := Scale(2, 2)
	current := initial.PreTransform(Translate(5, 5))

	a := ComputeAffines(current, initial, 0)

	// Drawing into the temporary surface must land on the same device
	// pixels after compositing as drawing directly would.
	direct := current.TransformPoint(Pt(1, 1))
	viaTemp := a.Compositing.TransformPoint(a.ForTemporarySurface.TransformPoint(Pt(1, 1)))
	if !matrixNear(Translate(direct.X, direct.Y), Translate(viaTemp.X, viaTemp.Y)) {
		t.Errorf("composited point %+v differs from direct %+v", viaTemp, direct)
	}
}

func TestComputeAffinesNested(t *testing.T) {
	initial := Scale(2, 2)
	current := initial.PreTransform(Translate(3, 4))

	a := ComputeAffines(current, initial, 1)
	if !matrixNear(a.ForTemporarySurface, current) {
		t.Errorf("nested ForTemporarySurface = %+v, want current", a.ForTemporarySurface)
	}
	if !matrixNear(a.Compositing, Identity()) {
		t.Errorf("nested Compositing = %+v, want identity", a.Compositing)
	}
}

func TestComputeAffinesSnapshotInvertsCompositing(t *testing.T) {
	initial := Scale(3, 3)
	a := ComputeAffines(initial, initial, 0)
	round := a.Compositing.Multiply(a.ForSnapshot)
	if !matrixNear(round, Identity()) {
		t.Errorf("Compositing * ForSnapshot = %+v, want identity", round)
	}
}
