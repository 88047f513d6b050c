package assets

import (
	"context"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func fakeGeometry(path string) *Geometry {
	g := &Geometry{Path: path, Vertices: []float32{1, 1, 1, 3, 1, 1, 1, 2, 4}}
	g.Rebase()
	return g
}

func waitCompleted(t *testing.T, l *Loader) *Request {
	t.Helper()
	select {
	case r := <-l.Completed():
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for completion")
		return nil
	}
}

func TestLoadReady(t *testing.T) {
	l := NewLoader(func(path string) (*Geometry, error) { return fakeGeometry(path), nil }, 1)
	req := l.Load(context.Background(), "bricks/1x1.stl")
	got := waitCompleted(t, l)
	if got != req {
		t.Fatal("completion channel delivered a different request")
	}
	if req.State() != Ready {
		t.Fatalf("state = %v, want ready", req.State())
	}
	g, err := req.Result()
	if err != nil || g == nil {
		t.Fatalf("Result = %v, %v", g, err)
	}
	if _, ok := l.Cached("bricks/1x1.stl"); !ok {
		t.Fatal("expected geometry to be cached")
	}
}

func TestLoadFailedTravelsSamePath(t *testing.T) {
	boom := errors.New("boom")
	l := NewLoader(func(string) (*Geometry, error) { return nil, boom }, 1)
	req := l.Load(context.Background(), "missing.stl")
	waitCompleted(t, l)
	if req.State() != Failed {
		t.Fatalf("state = %v, want failed", req.State())
	}
	if _, err := req.Result(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestLoadDeduplicatesByPath(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	l := NewLoader(func(path string) (*Geometry, error) {
		calls.Add(1)
		<-release
		return fakeGeometry(path), nil
	}, 4)
	ctx := context.Background()
	reqs := []*Request{l.Load(ctx, "a.stl"), l.Load(ctx, "a.stl"), l.Load(ctx, "a.stl")}
	time.Sleep(50 * time.Millisecond)
	close(release)
	for range reqs {
		waitCompleted(t, l)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("parser called %d times, want 1", n)
	}
	l.Load(ctx, "a.stl")
	waitCompleted(t, l)
	if n := calls.Load(); n != 1 {
		t.Fatalf("cached load parsed again (%d calls)", n)
	}
}

func TestLoadCancelled(t *testing.T) {
	block := make(chan struct{})
	entered := make(chan struct{}, 1)
	var once sync.Once
	l := NewLoader(func(path string) (*Geometry, error) {
		entered <- struct{}{}
		<-block
		return fakeGeometry(path), nil
	}, 1)
	defer once.Do(func() { close(block) })

	ctx, cancel := context.WithCancel(context.Background())
	l.Load(ctx, "first.stl")
	<-entered
	second := l.Load(ctx, "second.stl")
	time.Sleep(20 * time.Millisecond)
	cancel()
	if _, err := second.Wait(context.Background()); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if second.State() != Failed {
		t.Fatalf("state = %v, want failed", second.State())
	}
}

func TestRebase(t *testing.T) {
	g := fakeGeometry("x")
	if g.Bounds.Min != [3]float32{} || g.Bounds.Max != [3]float32{2, 1, 3} {
		t.Fatalf("bounds = %+v", g.Bounds)
	}
	if g.Vertices[0] != 0 || g.Vertices[3] != 2 || g.Vertices[8] != 3 {
		t.Fatalf("vertices not rebased: %v", g.Vertices)
	}
	if g.TriangleCount() != 1 {
		t.Fatalf("TriangleCount = %d", g.TriangleCount())
	}
}

func writeBinarySTL(t *testing.T, path string, tris [][9]float32) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	header := make([]byte, 80)
	copy(header, "brick")
	if _, err := f.Write(header); err != nil {
		t.Fatalf("write header: %v", err)
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(len(tris))); err != nil {
		t.Fatalf("write count: %v", err)
	}
	for _, tri := range tris {
		rec := make([]float32, 0, 12)
		rec = append(rec, 0, 0, 1)
		rec = append(rec, tri[:]...)
		for _, v := range rec {
			if err := binary.Write(f, binary.LittleEndian, math.Float32bits(v)); err != nil {
				t.Fatalf("write float: %v", err)
			}
		}
		if err := binary.Write(f, binary.LittleEndian, uint16(0)); err != nil {
			t.Fatalf("write attr: %v", err)
		}
	}
}

func TestParseSTLRebasesToOrigin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1x1.stl")
	writeBinarySTL(t, path, [][9]float32{
		{-4, -4, 2, 4, -4, 2, 4, 4, 2},
		{-4, -4, 2, 4, 4, 2, -4, 4, 11.6},
	})
	g, err := ParseSTL(path)
	if err != nil {
		t.Fatalf("ParseSTL: %v", err)
	}
	if g.TriangleCount() != 2 {
		t.Fatalf("TriangleCount = %d", g.TriangleCount())
	}
	if g.Bounds.Min != [3]float32{} {
		t.Fatalf("min = %v", g.Bounds.Min)
	}
	if g.Bounds.Max[0] != 8 || g.Bounds.Max[1] != 8 {
		t.Fatalf("max = %v", g.Bounds.Max)
	}
}

func TestParseSTLRejectsOtherFormats(t *testing.T) {
	if _, err := ParseSTL("model.obj"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}
