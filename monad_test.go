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

func TestBindPure(t *testing.T) {
	c := eff.Bind(eff.Pure(21), func(x int) eff.Computation[int] {
		return eff.Pure(x * 2)
	})

	got, err := eff.RunPure[int](c)
	if err != nil {
		t.Fatalf("RunPure: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestMapPure(t *testing.T) {
	c := eff.Map(eff.Pure(21), func(x int) int { return x * 2 })

	got, err := eff.RunPure[int](c)
	if err != nil {
		t.Fatalf("RunPure: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestThenDiscardsFirst(t *testing.T) {
	c := eff.Then[int, int](eff.Pure(999), eff.Pure(42))

	got, err := eff.RunPure[int](c)
	if err != nil {
		t.Fatalf("RunPure: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestBindFailureShortCircuits(t *testing.T) {
	boom := errors.New("boom")
	called := false
	c := eff.Bind(eff.Fail[int](boom), func(int) eff.Computation[int] {
		called = true
		return eff.Pure(0)
	})

	_, err := eff.RunPure[int](c)
	if err != boom {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if called {
		t.Error("bind function ran after failure")
	}
}

func TestBindDeepChain(t *testing.T) {
	c := eff.Pure(0)
	for i := 0; i < 10_000; i++ {
		c = eff.Bind(c, func(x int) eff.Computation[int] {
			return eff.Pure(x + 1)
		})
	}

	got, err := eff.RunPure[int](c)
	if err != nil {
		t.Fatalf("RunPure: %v", err)
	}
	if got != 10_000 {
		t.Errorf("got %d, want 10000", got)
	}
}

// askEffect is a test-defined synchronous effect kind.
type askEffect struct {
	eff.Op[int]
}

func newAsk() *askEffect {
	return &askEffect{Op: eff.NewOp[int]("test.ask")}
}

func askHandler(answer int) eff.Handler {
	return eff.HandleSyncFunc(eff.Options{}, func(e eff.Effect) error {
		if op, ok := e.(*askEffect); ok {
			op.SetResult(answer)
		}
		return nil
	})
}

func TestPerformFeedsResult(t *testing.T) {
	c := eff.Perform(newAsk(), nil, func(x int) eff.Computation[int] {
		return eff.Pure(x * 2)
	})

	got, err := eff.Run[int](context.Background(), c, askHandler(21))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestPerformPropagatesFailure(t *testing.T) {
	boom := errors.New("ask failed")
	h := eff.HandleSyncFunc(eff.Options{}, func(e eff.Effect) error {
		return boom
	})
	called := false
	c := eff.Perform(newAsk(), nil, func(int) eff.Computation[int] {
		called = true
		return eff.Pure(0)
	})

	_, err := eff.Run[int](context.Background(), c, h)
	if err != boom {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if called {
		t.Error("continuation ran after effect failure")
	}
}

func TestBindOverSuspended(t *testing.T) {
	c := eff.Bind(
		eff.Perform(newAsk(), nil, func(x int) eff.Computation[int] {
			return eff.Pure(x + 1)
		}),
		func(x int) eff.Computation[int] {
			return eff.Pure(x * 2)
		},
	)

	got, err := eff.Run[int](context.Background(), c, askHandler(20))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestBindSequencesTwoEffects(t *testing.T) {
	c := eff.Perform(newAsk(), nil, func(x int) eff.Computation[int] {
		return eff.Perform(newAsk(), nil, func(y int) eff.Computation[int] {
			return eff.Pure(x + y)
		})
	})

	got, err := eff.Run[int](context.Background(), c, askHandler(21))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}
