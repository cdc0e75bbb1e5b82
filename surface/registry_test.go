// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"
	"reflect"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/tierbar"
)

// fakeTarget records into a tierbar.Scene.
type fakeTarget struct {
	*tierbar.Scene
	name   string
	closed bool
}

func (*fakeTarget) Clear(gg.RGBA) {}

func (*fakeTarget) Snapshot() (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

func (f *fakeTarget) Close() error {
	f.closed = true
	return nil
}

func factory(name string) Factory {
	return func(opts Options) (Target, error) {
		if err := opts.Validate(); err != nil {
			return nil, err
		}
		return &fakeTarget{Scene: tierbar.NewScene(nil), name: name}, nil
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, factory("first"), nil)
	r.Register("test", 50, factory("second"), nil)

	if got := r.List(); !reflect.DeepEqual(got, []string{"test"}) {
		t.Fatalf("List() = %v, want [test]", got)
	}
	tg, err := r.NewTargetByName("test", Options{Width: 1, Height: 1})
	if err != nil {
		t.Fatalf("NewTargetByName() error = %v", err)
	}
	if name := tg.(*fakeTarget).name; name != "second" {
		t.Errorf("re-registering kept %s, want second", name)
	}
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, factory("low"), nil)
	r.Register("high", 100, factory("high"), nil)
	r.Register("mid", 50, factory("mid"), func() bool { return false })

	if got, want := r.List(), []string{"high", "mid", "low"}; !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestRegistryNewTarget(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, factory("low"), nil)
	r.Register("high", 100, factory("high"), func() bool { return false })

	tg, err := r.NewTarget(Options{Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("NewTarget() error = %v", err)
	}
	if name := tg.(*fakeTarget).name; name != "low" {
		t.Errorf("NewTarget() picked %s, want low", name)
	}
}

func TestRegistryNewTarget_AllFail(t *testing.T) {
	r := NewRegistry()
	r.Register("a", 10, factory("a"), nil)

	_, err := r.NewTarget(Options{})
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewTarget() error = %v, want ErrInvalidDimensions", err)
	}
}

func TestRegistryNewTarget_Empty(t *testing.T) {
	if _, err := NewRegistry().NewTarget(Options{Width: 1, Height: 1}); !errors.Is(err, ErrNoTargetAvailable) {
		t.Errorf("NewTarget() error = %v, want ErrNoTargetAvailable", err)
	}
}

func TestRegistryNewTargetByName(t *testing.T) {
	r := NewRegistry()
	r.Register("on", 10, factory("on"), nil)
	r.Register("off", 10, factory("off"), func() bool { return false })

	tg, err := r.NewTargetByName("on", Options{Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("NewTargetByName() error = %v", err)
	}
	if err := tg.Close(); err != nil || !tg.(*fakeTarget).closed {
		t.Errorf("Close() = %v", err)
	}

	_, err = r.NewTargetByName("missing", Options{Width: 4, Height: 4})
	var notFound *TargetNotFoundError
	if !errors.As(err, &notFound) || notFound.Name != "missing" {
		t.Errorf("error = %v, want TargetNotFoundError for missing", err)
	}

	_, err = r.NewTargetByName("off", Options{Width: 4, Height: 4})
	var unavailable *TargetUnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("error = %v, want TargetUnavailableError", err)
	}
}

func TestGlobalRegistry(t *testing.T) {
	Register("global-test", -1, factory("global-test"), nil)

	found := false
	for _, n := range List() {
		found = found || n == "global-test"
	}
	if !found {
		t.Fatalf("List() = %v, missing global-test", List())
	}
	tg, err := NewTargetByName("global-test", Options{Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("NewTargetByName() error = %v", err)
	}
	tg.StrokeLine(0, 0, 1, 1, tierbar.LineStyle{})
	if tg.(*fakeTarget).Len() != 1 {
		t.Error("target did not record the draw call")
	}
}
