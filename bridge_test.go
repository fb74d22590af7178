// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"context"
	"errors"
	"testing"

	"code.hybscloud.com/eff"
)

func TestTaskGoAwait(t *testing.T) {
	task := eff.Go(func() (int, error) { return 41, nil })

	got, err := task.Await(context.Background())
	if err != nil {
		t.Fatalf("Await: %v", err)
	}
	if got != 41 {
		t.Errorf("got %d, want 41", got)
	}
}

func TestTaskAwaitIdempotent(t *testing.T) {
	task := eff.Go(func() (string, error) { return "done", nil })

	for i := 0; i < 3; i++ {
		got, err := task.Await(context.Background())
		if err != nil || got != "done" {
			t.Fatalf("Await = %q, %v, want done, nil", got, err)
		}
	}
}

func TestTaskAwaitCancellation(t *testing.T) {
	release := make(chan struct{})
	task := eff.Go(func() (int, error) {
		<-release
		return 1, nil
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := task.Await(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Await on canceled ctx = %v, want context.Canceled", err)
	}
}

func TestSettledTask(t *testing.T) {
	boom := errors.New("boom")
	_, err := eff.Settled(0, boom).Await(context.Background())
	if err != boom {
		t.Fatalf("Await = %v, want %v", err, boom)
	}

	got, err := eff.Settled("ok", nil).Await(context.Background())
	if err != nil || got != "ok" {
		t.Fatalf("Await = %q, %v, want ok, nil", got, err)
	}
}

func TestBridgeEffectAwaitSuccess(t *testing.T) {
	e := eff.Bridge(eff.Settled(41, nil))

	if err := e.Await(context.Background()); err != nil {
		t.Fatalf("Await: %v", err)
	}
	if !e.HasResult() {
		t.Fatal("bridge effect not completed after Await")
	}
	if got := e.Result(); got != 41 {
		t.Errorf("Result() = %d, want 41", got)
	}
}

func TestBridgeEffectAwaitFailureLeavesPending(t *testing.T) {
	boom := errors.New("boom")
	e := eff.Bridge(eff.Settled(0, boom))

	err := e.Await(context.Background())
	if err != boom {
		t.Fatalf("Await = %v, want %v", err, boom)
	}
	// The dispatcher owns failure recording; Await reports it only.
	if e.Completed() {
		t.Error("bridge effect transitioned on primitive failure")
	}
}

func TestBridgeEffectKind(t *testing.T) {
	e := eff.Bridge(eff.Settled(0, nil))
	if got := e.Kind(); got != eff.KindBridge {
		t.Errorf("Kind() = %q, want %q", got, eff.KindBridge)
	}
}
