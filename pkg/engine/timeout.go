package engine

import (
	"time"

	"github.com/chazu/boxy/pkg/scene"
	"github.com/pkg/errors"
)

// evalResult carries one evaluation's output back to the caller.
type evalResult struct {
	scene  *scene.Scene
	errors []EvalError
	err    error
}

// errSuperseded is returned when a newer evaluation started while this
// one was running.
var errSuperseded = errors.New("evaluation superseded by newer request")

// current reports whether gen is still the latest generation.
func (e *Engine) current(gen uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation == gen
}

// await blocks until ch delivers or the engine's timeout passes. A
// script that never returns keeps its goroutine; once a later Evaluate
// bumps the generation, whatever it eventually sends is dropped.
func (e *Engine) await(ch <-chan evalResult, gen uint64) (*scene.Scene, []EvalError, error) {
	timeout := e.timeout
	if timeout <= 0 {
		timeout = EvalTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if !e.current(gen) {
			return nil, nil, errSuperseded
		}
		return res.scene, res.errors, res.err
	case <-timer.C:
		return nil, nil, errors.Errorf("evaluation timed out after %s", timeout)
	}
}
