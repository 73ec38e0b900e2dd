// hitomezashi-stitch - Hitomezashi stitch patterns
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package hitomezashi_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	hitomezashi "github.com/toolbarthomas/hitomezashi-stitch"
	"github.com/toolbarthomas/hitomezashi-stitch/testcases"
)

const consonantsPath = "M -5,-5 L 5,-5 z M 15,-5 L 25,-5 z M -5,5 L 5,5 z M 15,5 L 25,5 z " +
	"M -5,-5 L -5,5 z M 5,-5 L 5,5 z M 15,-5 L 15,5 z"

func TestNewConsonants(t *testing.T) {
	p, err := hitomezashi.New([]string{"bcd", "bcdf"},
		hitomezashi.WithSize(10), hitomezashi.WithOffset(0))
	require.NoError(t, err)

	g := p.Geometry()
	assert.Equal(t, 40.0, g.Width)
	assert.Equal(t, 30.0, g.Height)
	assert.Equal(t, 10.0, g.Cell)
	w, h := g.PixelSize()
	assert.Equal(t, 20, w)
	assert.Equal(t, 10, h)

	assert.Equal(t, consonantsPath, p.PathData())
	assert.Len(t, p.PathCommands(), 7)
	assert.Len(t, p.Segments(), 7)
}

func TestNewVowelsOnly(t *testing.T) {
	p, err := hitomezashi.New([]string{"io", "ea"},
		hitomezashi.WithSize(20), hitomezashi.WithOffset(0))
	require.NoError(t, err)

	st := p.Stitches()
	assert.Equal(t, []hitomezashi.Bit{0, 0}, st[0].Pattern)
	assert.Equal(t, []hitomezashi.Bit{0, 0}, st[1].Pattern)
	assert.Equal(t, 40.0, p.Geometry().Width)
	assert.Equal(t, 40.0, p.Geometry().Height)
	assert.Empty(t, p.Segments())
	assert.Equal(t, "", p.PathData())
}

func TestNewStitchCount(t *testing.T) {
	inputs := []any{
		[]string{"abc"},
		[]string{"abc", "def", "ghi"},
		[]string{},
		"single",
		nil,
	}
	for _, in := range inputs {
		p, err := hitomezashi.New(in)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, hitomezashi.ErrStitchCount, "input %#v", in)
		assert.ErrorIs(t, err, hitomezashi.ErrConfig, "input %#v", in)
	}
}

func TestNewEmptyPattern(t *testing.T) {
	inputs := []any{
		[]string{"", "abc"},
		[]any{"abc", 17},
		[]any{[]string{" ", ""}, []bool{true}},
	}
	for _, in := range inputs {
		p, err := hitomezashi.New(in)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, hitomezashi.ErrEmptyPattern, "input %#v", in)
		assert.ErrorIs(t, err, hitomezashi.ErrConfig, "input %#v", in)
	}
}

func TestNewCellSize(t *testing.T) {
	cases := []struct {
		size any
		dpi  float64
		want float64
	}{
		{10, 0, 10},
		{"10", 144, 20},
		{"huge", 72, hitomezashi.DefaultSize},
		{0, 72, hitomezashi.DefaultSize},
		{nil, 96, hitomezashi.DefaultSize / 72 * 96},
		{15, 96, 20},
	}
	for _, c := range cases {
		t.Run(fmt.Sprint(c.size, "@", c.dpi), func(t *testing.T) {
			p, err := hitomezashi.New([]string{"ab", "cd"},
				hitomezashi.WithSize(c.size),
				hitomezashi.WithDPI(c.dpi),
				hitomezashi.WithPreventRender())
			require.NoError(t, err)
			assert.InDelta(t, c.want, p.Geometry().Cell, 1e-9)
		})
	}

	for _, size := range []any{-1, math.Inf(1), "-3"} {
		_, err := hitomezashi.New([]string{"ab", "cd"}, hitomezashi.WithSize(size))
		assert.ErrorIs(t, err, hitomezashi.ErrConfig, "size %v", size)
	}
}

func TestNewHugeCell(t *testing.T) {
	for _, size := range []any{1e20, "1e20", 1e300} {
		p, err := hitomezashi.New([]string{"abcde", "abcdef"}, hitomezashi.WithSize(size))
		assert.Nil(t, p)
		assert.ErrorIs(t, err, hitomezashi.ErrSurfaceSize, "size %v", size)
		assert.ErrorIs(t, err, hitomezashi.ErrConfig, "size %v", size)
	}
}

func TestPatternUseDPI(t *testing.T) {
	p, err := hitomezashi.New([]string{"ab", "cd"},
		hitomezashi.WithDPI(144), hitomezashi.WithPreventRender())
	require.NoError(t, err)

	v, ok := p.UseDPI("36")
	assert.True(t, ok)
	assert.Equal(t, 72.0, v)

	_, ok = p.UseDPI("wide")
	assert.False(t, ok)
}

func TestRenderDeterministic(t *testing.T) {
	for category, list := range testcases.All {
		for _, tc := range list {
			if !tc.Deterministic() {
				continue
			}
			t.Run(category+"/"+tc.Name, func(t *testing.T) {
				a, err := hitomezashi.New(tc.Stitchings, tc.Options()...)
				require.NoError(t, err)
				b, err := hitomezashi.New(tc.Stitchings, tc.Options()...)
				require.NoError(t, err)
				assert.Equal(t, a.PathData(), b.PathData())

				before := a.PathData()
				require.NoError(t, a.Render())
				assert.Equal(t, before, a.PathData())
			})
		}
	}
}

func TestRenderSeeded(t *testing.T) {
	for _, tc := range testcases.All["random"] {
		t.Run(tc.Name, func(t *testing.T) {
			a, err := hitomezashi.New(tc.Stitchings, tc.Options()...)
			require.NoError(t, err)
			b, err := hitomezashi.New(tc.Stitchings, tc.Options()...)
			require.NoError(t, err)
			assert.Equal(t, a.PathData(), b.PathData())
			assert.Equal(t, a.Segments(), b.Segments())
		})
	}
}

func TestRenderOffsetAboveOne(t *testing.T) {
	seeds := []string{"hitomezashi sashiko", "running stitch"}
	plain, err := hitomezashi.New(seeds, hitomezashi.WithOffset(0))
	require.NoError(t, err)
	always, err := hitomezashi.New(seeds, hitomezashi.WithOffset(3))
	require.NoError(t, err)
	assert.Equal(t, plain.PathData(), always.PathData())
}

func TestRenderReplacesPath(t *testing.T) {
	p, err := hitomezashi.New([]string{"bcd", "bcdf"},
		hitomezashi.WithSize(10), hitomezashi.WithOffset(0))
	require.NoError(t, err)

	for range 3 {
		require.NoError(t, p.Render())
	}
	assert.Equal(t, consonantsPath, p.PathData())
	assert.Len(t, p.PathCommands(), 7)
}

func TestSegmentProperties(t *testing.T) {
	for category, list := range testcases.All {
		for _, tc := range list {
			t.Run(category+"/"+tc.Name, func(t *testing.T) {
				p, err := hitomezashi.New(tc.Stitchings, tc.Options()...)
				require.NoError(t, err)

				g := p.Geometry()
				bx, by := g.Bounds()
				segs := p.Segments()
				require.Len(t, p.PathCommands(), len(segs))
				for _, s := range segs {
					d := s.End.Sub(s.Start)
					assert.True(t, d.X == 0 || d.Y == 0, "segment %v not axis-aligned", s)
					assert.InDelta(t, g.Cell, d.Length(), 1e-9)
					assert.LessOrEqual(t, s.End.X, bx+1e-9)
					assert.LessOrEqual(t, s.End.Y, by+1e-9)
					assert.GreaterOrEqual(t, s.Start.X, -g.Cell/2-1e-9)
					assert.GreaterOrEqual(t, s.Start.Y, -g.Cell/2-1e-9)
				}
			})
		}
	}
}

func TestPathCommandsAreCopies(t *testing.T) {
	p, err := hitomezashi.New([]string{"bcd", "bcdf"},
		hitomezashi.WithSize(10), hitomezashi.WithOffset(0))
	require.NoError(t, err)

	cmds := p.PathCommands()
	cmds[0] = "M 0,0"
	segs := p.Segments()
	segs[0] = hitomezashi.Segment{}
	assert.Equal(t, consonantsPath, p.PathData())
	assert.Equal(t, vec.Vec2{X: -5, Y: -5}, p.Segments()[0].Start)
}

func TestPreventRender(t *testing.T) {
	p, err := hitomezashi.New([]string{"bcd", "bcdf"},
		hitomezashi.WithSize(10), hitomezashi.WithOffset(0),
		hitomezashi.WithPreventRender())
	require.NoError(t, err)
	assert.Empty(t, p.PathData())
	assert.Empty(t, p.Segments())

	require.NoError(t, p.Render())
	assert.Equal(t, consonantsPath, p.PathData())
}

// recorder is a surface which remembers all drawing calls.
type recorder struct {
	fail    bool
	width   float64
	lineCap graphics.LineCapStyle
	lines   [][2]vec.Vec2
}

func (r *recorder) Context() (hitomezashi.StrokeContext, error) {
	if r.fail {
		return nil, errors.New("context lost")
	}
	return r, nil
}

func (r *recorder) SetLineWidth(w float64)             { r.width = w }
func (r *recorder) SetLineCap(c graphics.LineCapStyle) { r.lineCap = c }
func (r *recorder) StrokeLine(a, b vec.Vec2)           { r.lines = append(r.lines, [2]vec.Vec2{a, b}) }

type recorderProvider struct {
	surface *recorder
	err     error
	ids     []string
}

func (p *recorderProvider) Surface(id string, width, height int) (hitomezashi.Surface, error) {
	p.ids = append(p.ids, id)
	if p.err != nil {
		return nil, p.err
	}
	return p.surface, nil
}

func TestRenderStrokes(t *testing.T) {
	rec := &recorder{}
	p, err := hitomezashi.New([]string{"bcd", "bcdf"},
		hitomezashi.WithSize(10), hitomezashi.WithOffset(0),
		hitomezashi.WithLineWidth(3), hitomezashi.WithLineCap("round"),
		hitomezashi.WithProvider(&recorderProvider{surface: rec}))
	require.NoError(t, err)

	assert.Equal(t, 3.0, rec.width)
	assert.Equal(t, graphics.LineCapRound, rec.lineCap)
	require.Len(t, rec.lines, 7)
	for i, s := range p.Segments() {
		assert.Equal(t, [2]vec.Vec2{s.Start, s.End}, rec.lines[i])
	}
}

func TestLineCapOption(t *testing.T) {
	cases := map[string]graphics.LineCapStyle{
		"round":  graphics.LineCapRound,
		"square": graphics.LineCapSquare,
		"butt":   graphics.LineCapSquare,
		"Round":  graphics.LineCapSquare,
		"":       graphics.LineCapSquare,
	}
	for name, want := range cases {
		rec := &recorder{}
		_, err := hitomezashi.New([]string{"ab", "cd"},
			hitomezashi.WithLineCap(name),
			hitomezashi.WithProvider(&recorderProvider{surface: rec}))
		require.NoError(t, err)
		assert.Equal(t, want, rec.lineCap, "cap %q", name)
	}
}

func TestLineWidthDefault(t *testing.T) {
	for _, w := range []float64{0, -2} {
		rec := &recorder{}
		_, err := hitomezashi.New([]string{"ab", "cd"},
			hitomezashi.WithLineWidth(w),
			hitomezashi.WithProvider(&recorderProvider{surface: rec}))
		require.NoError(t, err)
		assert.Equal(t, hitomezashi.DefaultLineWidth, rec.width)
	}
}

func TestRenderWithoutProvider(t *testing.T) {
	p, err := hitomezashi.New([]string{"bcd", "bcdf"}, hitomezashi.WithProvider(nil))
	require.NotNil(t, p)
	assert.ErrorIs(t, err, hitomezashi.ErrCapabilityUnavailable)
	assert.Nil(t, p.Surface())
	assert.Empty(t, p.PathData())

	assert.ErrorIs(t, p.Render(), hitomezashi.ErrCapabilityUnavailable)
}

func TestRenderProviderFailure(t *testing.T) {
	prov := &recorderProvider{err: errors.New("out of memory")}
	p, err := hitomezashi.New([]string{"bcd", "bcdf"}, hitomezashi.WithProvider(prov))
	require.NotNil(t, p)
	assert.ErrorIs(t, err, hitomezashi.ErrCapabilityUnavailable)
	assert.Nil(t, p.Surface())
	assert.Len(t, prov.ids, 1)
}

func TestRenderContextLost(t *testing.T) {
	rec := &recorder{}
	p, err := hitomezashi.New([]string{"bcd", "bcdf"},
		hitomezashi.WithSize(10), hitomezashi.WithOffset(0),
		hitomezashi.WithProvider(&recorderProvider{surface: rec}))
	require.NoError(t, err)
	require.Equal(t, consonantsPath, p.PathData())

	rec.fail = true
	rec.lines = nil
	err = p.Render()
	assert.ErrorIs(t, err, hitomezashi.ErrCapabilityUnavailable)
	assert.ErrorContains(t, err, "context lost")
	assert.Equal(t, consonantsPath, p.PathData())
	assert.Len(t, p.Segments(), 7)
	assert.Empty(t, rec.lines)
}

func TestRandomID(t *testing.T) {
	id := hitomezashi.RandomID("Hitomezashi")
	require.True(t, strings.HasPrefix(id, "Hitomezashi-"), id)
	suffix := strings.TrimPrefix(id, "Hitomezashi-")
	assert.Len(t, suffix, 9)
	assert.Equal(t, -1, strings.IndexFunc(suffix, func(r rune) bool {
		return !strings.ContainsRune("0123456789abcdef", r)
	}), suffix)
	assert.NotEqual(t, id, hitomezashi.RandomID("Hitomezashi"))
}

func TestPatternID(t *testing.T) {
	p, err := hitomezashi.New([]string{"ab", "cd"}, hitomezashi.WithNamespace("Sashiko"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p.ID(), "Sashiko-"), p.ID())

	q, err := hitomezashi.New([]string{"ab", "cd"}, hitomezashi.WithNamespace(""))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(q.ID(), hitomezashi.DefaultNamespace+"-"), q.ID())
}

func TestPatternIDCollision(t *testing.T) {
	prov := hitomezashi.NewImageProvider()
	_, err := prov.Surface("ns-a", 1, 1)
	require.NoError(t, err)

	ids := []string{"ns-a", "ns-a", "ns-b"}
	gen := func(ns string) string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	p, err := hitomezashi.New([]string{"ab", "cd"},
		hitomezashi.WithProvider(prov), hitomezashi.WithIDGenerator(gen))
	require.NoError(t, err)
	assert.Equal(t, "ns-b", p.ID())
	assert.True(t, prov.Exists("ns-b"))

	stuck := func(string) string { return "ns-a" }
	_, err = hitomezashi.New([]string{"ab", "cd"},
		hitomezashi.WithProvider(prov), hitomezashi.WithIDGenerator(stuck))
	assert.ErrorIs(t, err, hitomezashi.ErrConfig)
}

func TestPatternReuseID(t *testing.T) {
	prov := hitomezashi.NewImageProvider()
	a, err := hitomezashi.New([]string{"bcd", "bcdf"},
		hitomezashi.WithProvider(prov), hitomezashi.WithID("canvas"))
	require.NoError(t, err)
	b, err := hitomezashi.New([]string{"hitomezashi", "kogin"},
		hitomezashi.WithProvider(prov), hitomezashi.WithID("canvas"))
	require.NoError(t, err)

	assert.Equal(t, "canvas", a.ID())
	assert.Equal(t, "canvas", b.ID())
	assert.Same(t, a.Surface(), b.Surface())

	s, ok := prov.Lookup("canvas")
	require.True(t, ok)
	w, h := b.Geometry().PixelSize()
	assert.Equal(t, w, s.Image().Bounds().Dx())
	assert.Equal(t, h, s.Image().Bounds().Dy())
}
