package pipeline_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/sarchlab/zfunge/pipeline"
)

func TestThenChainsStagesOnSuccess(t *testing.T) {
	parse := pipeline.Stage[string, int](func(s string) (int, error) {
		return strconv.Atoi(s)
	})
	double := pipeline.Stage[int, int](func(n int) (int, error) {
		return n * 2, nil
	})

	combined := pipeline.Then(parse, double)
	got, err := combined.Run("21")
	if err != nil {
		t.Fatal(err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestThenShortCircuitsOnFirstStageError(t *testing.T) {
	failing := pipeline.Stage[string, int](func(string) (int, error) {
		return 0, errors.New("boom")
	})
	neverRuns := pipeline.Stage[int, int](func(int) (int, error) {
		t.Fatal("second stage must not run when the first fails")
		return 0, nil
	})

	combined := pipeline.Then(failing, neverRuns)
	_, err := combined.Run("anything")
	if err == nil {
		t.Fatal("expected the first stage's error to propagate")
	}
}

func TestConstIgnoresInputAndNeverFails(t *testing.T) {
	seed := pipeline.Const[string, int](7)
	got, err := seed.Run("ignored")
	if err != nil {
		t.Fatal(err)
	}
	if got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}
