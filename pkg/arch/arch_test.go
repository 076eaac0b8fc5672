package arch

import (
	"errors"
	"testing"

	"github.com/chazu/boxy/pkg/box"
	"github.com/chazu/boxy/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNear(t *testing.T, want, got geom.Point3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, want.ApproxEqual(got, 1e-9), "want %v, got %v %v", want, got, msgAndArgs)
}

func doorway(t *testing.T, rot geom.Point3) box.BoxData {
	t.Helper()
	bd, err := box.NewBoxData(geom.P3(100, 210, 20), geom.Origin, rot, box.AnchorF2)
	require.NoError(t, err)
	return bd
}

// ---------------------------------------------------------------------------
// Door
// ---------------------------------------------------------------------------

func TestDoorLayout(t *testing.T) {
	asm, err := DoorCreator{Params: DefaultDoorParams()}.Create(doorway(t, geom.Origin))
	require.NoError(t, err)
	require.Len(t, asm.Parts, 2)
	assert.Equal(t, KindDoor, asm.Kind())

	frame := asm.Part("frame")
	require.NotNil(t, frame)
	assertNear(t, geom.P3(116, 218, 24), frame.Bounds.Size)
	assertNear(t, geom.P3(0, 109, 0), frame.Bounds.Position)
	require.Len(t, frame.Cutouts, 1)
	// The doorway cut runs through the floor line and both frame faces.
	assert.InDelta(t, 96, frame.Cutouts[0].Size.X, 1e-9)
	assert.Less(t, frame.Cutouts[0].AxisAligned().A.Y, 0.0)
	assert.Greater(t, frame.Cutouts[0].Size.Z, frame.Bounds.Size.Z)

	leaf := asm.Part("leaf")
	require.NotNil(t, leaf)
	assertNear(t, geom.P3(96, 208, 5), leaf.Bounds.Size)
	assertNear(t, geom.P3(0, 104, 7.5), leaf.Bounds.Position)

	assertNear(t, geom.P3(-48, 104, 10), asm.Markers["hinge"])
}

func TestDoorHingeAndOpening(t *testing.T) {
	tests := []struct {
		hinge, opening box.Side
		wantX, wantZ   float64
	}{
		{box.SideLeft, box.SideFront, -48, 10},
		{box.SideLeft, box.SideBack, -48, -10},
		{box.SideRight, box.SideFront, 48, 10},
		{box.SideRight, box.SideBack, 48, -10},
	}
	for _, tt := range tests {
		t.Run(tt.hinge.String()+"-"+tt.opening.String(), func(t *testing.T) {
			p := DefaultDoorParams()
			p.Hinge, p.Opening = tt.hinge, tt.opening
			asm, err := DoorCreator{Params: p}.Create(doorway(t, geom.Origin))
			require.NoError(t, err)
			assertNear(t, geom.P3(tt.wantX, 104, tt.wantZ), asm.Markers["hinge"])
		})
	}
}

func TestDoorFollowsRotation(t *testing.T) {
	rot := geom.P3(0, 90, 0)
	asm, err := DoorCreator{Params: DefaultDoorParams()}.Create(doorway(t, rot))
	require.NoError(t, err)

	center := geom.P3(0, 105, 0)
	want := center.Add(geom.ApplyEulerXYZRotation(geom.P3(-48, -1, 10), rot))
	assertNear(t, want, asm.Markers["hinge"])
	assert.Equal(t, rot, asm.Part("leaf").Bounds.Rotation)
}

func TestDoorRepivotsToBottom(t *testing.T) {
	bd, err := box.NewBoxData(geom.P3(100, 210, 20), geom.P3(0, 105, 0), geom.Origin, box.AnchorC)
	require.NoError(t, err)
	asm, err := DoorCreator{Params: DefaultDoorParams()}.Create(bd)
	require.NoError(t, err)
	assert.Equal(t, box.AnchorF2, asm.Box().PivotAnchor)
	assertNear(t, geom.Origin, asm.Box().Translation)
}

func TestDoorValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DoorParams)
		anchor bool
	}{
		{"hinge front", func(p *DoorParams) { p.Hinge = box.SideFront }, true},
		{"opening top", func(p *DoorParams) { p.Opening = box.SideTop }, true},
		{"zero frame", func(p *DoorParams) { p.Frame = 0 }, false},
		{"negative skirt", func(p *DoorParams) { p.Skirt = -1 }, false},
		{"zero depth", func(p *DoorParams) { p.Depth = 0 }, false},
		{"skirt too wide", func(p *DoorParams) { p.Skirt = 50 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultDoorParams()
			tt.mutate(&p)
			_, err := DoorCreator{Params: p}.Create(doorway(t, geom.Origin))
			require.Error(t, err)
			var ae *geom.InvalidAnchorError
			var re *geom.InvalidRangeError
			if tt.anchor {
				assert.True(t, errors.As(err, &ae), "got %v", err)
			} else {
				assert.True(t, errors.As(err, &re), "got %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Window
// ---------------------------------------------------------------------------

func TestWindowLayout(t *testing.T) {
	bd, err := box.NewBoxData(geom.P3(150, 90, 25), geom.P3(0, 100, 0), geom.Origin, box.AnchorF2)
	require.NoError(t, err)
	p := WindowParams{Frame: 20, Skirt: 2, SillThickness: 2, SillDepth: 4}
	asm, err := WindowCreator{Params: p}.Create(bd)
	require.NoError(t, err)

	sill := asm.Part("sill")
	require.NotNil(t, sill)
	assertNear(t, geom.P3(150, 2, 33), sill.Bounds.Size)
	aabb := sill.Bounds.AxisAligned()
	assert.InDelta(t, 100, aabb.A.Y, 1e-9)
	assert.InDelta(t, 18.5, aabb.B.Z, 1e-9)
	assertNear(t, geom.P3(0, 102, 2), asm.Markers["sill"])

	frame := asm.Part("frame")
	require.NotNil(t, frame)
	assertNear(t, geom.P3(150, 88, 29), frame.Bounds.Size)
	require.Len(t, frame.Cutouts, 1)
	assertNear(t, geom.P3(110, 48, 69), frame.Cutouts[0].Size)
	assert.InDelta(t, 146, frame.Cutouts[0].Position.Y, 1e-9)

	assert.Equal(t, 20.0, asm.Attributes.Params["frame"])
	assert.Equal(t, 4.0, asm.Attributes.Params["sill_depth"])
}

func TestWindowValidation(t *testing.T) {
	bd, err := box.NewBoxData(geom.P3(30, 30, 10), geom.Origin, geom.Origin, box.AnchorF2)
	require.NoError(t, err)
	_, err = WindowCreator{Params: WindowParams{Frame: 15, Skirt: 1, SillThickness: 1, SillDepth: 1}}.Create(bd)
	var re *geom.InvalidRangeError
	assert.True(t, errors.As(err, &re), "got %v", err)
}

// ---------------------------------------------------------------------------
// Staircase
// ---------------------------------------------------------------------------

func TestStairLayout(t *testing.T) {
	tests := []struct {
		name string
		size geom.Point3
		rise float64
		want StairLayout
	}{
		{"even", geom.P3(100, 200, 180), 20, StairLayout{Count: 10, Rise: 20, Tread: 20}},
		{"rounded", geom.P3(95, 205, 240), 15, StairLayout{Count: 14, Rise: 205.0 / 14, Tread: 240.0 / 13}},
		// Exact halves round to the even count.
		{"half down to even", geom.P3(100, 50, 90), 20, StairLayout{Count: 2, Rise: 25, Tread: 90}},
		{"half down to even twelve", geom.P3(100, 250, 90), 20, StairLayout{Count: 12, Rise: 250.0 / 12, Tread: 90.0 / 11}},
		{"half up to even", geom.P3(100, 70, 90), 20, StairLayout{Count: 4, Rise: 17.5, Tread: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StaircaseParams{TargetRise: tt.rise, Axis: geom.AxisZ}.Layout(tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Count, got.Count)
			assert.InDelta(t, tt.want.Rise, got.Rise, 1e-12)
			assert.InDelta(t, tt.want.Tread, got.Tread, 1e-12)
		})
	}

	_, err := StaircaseParams{TargetRise: 20, Axis: geom.AxisZ}.Layout(geom.P3(10, 25, 10))
	var re *geom.InvalidRangeError
	assert.True(t, errors.As(err, &re))

	_, err = StaircaseParams{TargetRise: 20, Axis: geom.AxisY}.Layout(geom.P3(10, 200, 10))
	var ae *geom.InvalidAxisError
	assert.True(t, errors.As(err, &ae))
}

func TestStaircaseSteps(t *testing.T) {
	bd, err := box.NewBoxData(geom.P3(100, 200, 180), geom.Origin, geom.Origin, box.AnchorF2)
	require.NoError(t, err)
	asm, err := StaircaseCreator{Params: DefaultStaircaseParams()}.Create(bd)
	require.NoError(t, err)
	require.Len(t, asm.Parts, 9)

	first := asm.Parts[0].Bounds.AxisAligned()
	assertNear(t, geom.P3(-50, 0, 70), first.A)
	assertNear(t, geom.P3(50, 20, 90), first.B)

	last := asm.Parts[8].Bounds.AxisAligned()
	assertNear(t, geom.P3(-50, 0, -90), last.A)
	assertNear(t, geom.P3(50, 180, -70), last.B)

	assertNear(t, geom.P3(0, 200, 0), asm.Markers["landing"])
	assert.Equal(t, 10.0, asm.Attributes.Params["count"])
	assert.Equal(t, "z", asm.Attributes.Labels["axis"])
}

func TestStaircaseAlongX(t *testing.T) {
	bd, err := box.NewBoxData(geom.P3(90, 60, 40), geom.Origin, geom.Origin, box.AnchorF2)
	require.NoError(t, err)
	asm, err := StaircaseCreator{Params: StaircaseParams{TargetRise: 20, Axis: geom.AxisX}}.Create(bd)
	require.NoError(t, err)
	require.Len(t, asm.Parts, 2)

	first := asm.Parts[0].Bounds.AxisAligned()
	assertNear(t, geom.P3(0, 0, -20), first.A)
	assertNear(t, geom.P3(45, 20, 20), first.B)
}

// ---------------------------------------------------------------------------
// Conversions and attributes
// ---------------------------------------------------------------------------

func TestAttributesRoundTrip(t *testing.T) {
	bd := doorway(t, geom.P3(0, 30, 0))
	door := DefaultDoorParams()
	door.Hinge = box.SideRight
	creators := []Creator{
		DoorCreator{Params: door},
		WindowCreator{Params: DefaultWindowParams()},
		StaircaseCreator{Params: StaircaseParams{TargetRise: 25, Axis: geom.AxisX}},
		CubeCreator{},
		BoxyCreator{},
	}
	for _, c := range creators {
		t.Run(c.Kind().String(), func(t *testing.T) {
			asm, err := c.Create(bd)
			require.NoError(t, err)
			assert.Equal(t, c.Kind(), asm.Attributes.CustomType)

			rep, err := FromAttributes(asm.Attributes, asm.Box().Translation)
			require.NoError(t, err)
			assert.Equal(t, asm.Representation, rep)

			again, err := Rebuild(rep)
			require.NoError(t, err)
			assert.Equal(t, asm.Parts, again.Parts)
		})
	}
}

func TestDoorAttributeNames(t *testing.T) {
	door := DefaultDoorParams()
	door.Depth = 7
	door.Hinge = box.SideRight
	door.Opening = box.SideBack
	asm, err := DoorCreator{Params: door}.Create(doorway(t, geom.Origin))
	require.NoError(t, err)
	assert.Equal(t, []string{"door_depth", "frame", "skirt"}, asm.Attributes.ParamNames())
	assert.Equal(t, "right", asm.Attributes.Labels["hinge_side"])
	assert.Equal(t, "back", asm.Attributes.Labels["opening_side"])

	pivot, err := box.AnchorF2.Index()
	require.NoError(t, err)
	attrs := Attributes{
		CustomType: KindDoor,
		Size:       geom.P3(100, 210, 20),
		Pivot:      pivot,
		Params:     map[string]float64{"frame": 12, "skirt": 3, "door_depth": 7},
		Labels:     map[string]string{"hinge_side": "right", "opening_side": "back"},
	}
	rep, err := FromAttributes(attrs, geom.Origin)
	require.NoError(t, err)
	got, ok := rep.(Door)
	require.True(t, ok)
	assert.Equal(t, DoorParams{Frame: 12, Skirt: 3, Depth: 7, Hinge: box.SideRight, Opening: box.SideBack}, got.Params)
}

func TestFromAttributesErrors(t *testing.T) {
	pivot, err := box.AnchorC.Index()
	require.NoError(t, err)
	base := Attributes{CustomType: KindDoor, Size: geom.P3(1, 1, 1), Pivot: pivot}

	bad := base
	bad.CustomType = Kind(42)
	_, err = FromAttributes(bad, geom.Origin)
	assert.ErrorContains(t, err, "unknown custom type")

	bad = base
	bad.Labels = map[string]string{"hinge_side": "sideways"}
	_, err = FromAttributes(bad, geom.Origin)
	assert.Error(t, err)

	_, err = CreatorFor(nil)
	assert.ErrorContains(t, err, "unsupported representation")
}

func TestConversionsKeepBox(t *testing.T) {
	asm, err := DoorCreator{Params: DefaultDoorParams()}.Create(doorway(t, geom.P3(0, 45, 0)))
	require.NoError(t, err)
	want := asm.Box().Center()

	boxy, err := ToBoxy(asm.Representation, box.AnchorF2)
	require.NoError(t, err)
	assertNear(t, asm.Box().Translation, boxy.Box.Translation)

	for _, a := range []box.Anchor{box.AnchorC, box.AnchorV3, box.AnchorE9} {
		cube, err := ToCube(asm.Representation, a)
		require.NoError(t, err)
		assert.Equal(t, a, cube.Box.PivotAnchor)
		assertNear(t, want, cube.Box.Center())
	}
}

func TestCubeKeepsPivot(t *testing.T) {
	bd, err := box.NewBoxData(geom.P3(1, 2, 3), geom.P3(4, 5, 6), geom.Origin, box.AnchorV7)
	require.NoError(t, err)
	asm, err := CubeCreator{}.Create(bd)
	require.NoError(t, err)
	assert.Equal(t, box.AnchorV7, asm.Box().PivotAnchor)
	assert.Equal(t, 26, asm.Attributes.Pivot)
	assertNear(t, bd.Center(), asm.Parts[0].Bounds.Position)
}

func TestKindNames(t *testing.T) {
	for _, k := range []Kind{KindBoxy, KindDoor, KindWindow, KindStaircase, KindCube} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("arch")
	assert.Error(t, err)
	_, err = Kind(9).MarshalText()
	assert.Error(t, err)
}
