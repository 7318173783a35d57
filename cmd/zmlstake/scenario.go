package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	gomath "math"
	"strings"

	"github.com/holiman/uint256"

	"github.com/VlodkoMr/zomland-ft/common"
	"github.com/VlodkoMr/zomland-ft/common/math"
	"github.com/VlodkoMr/zomland-ft/contract"
	"github.com/VlodkoMr/zomland-ft/params"
	"github.com/VlodkoMr/zomland-ft/sysaction"
)

// maxSeconds is the largest second count the nanosecond clock can hold.
const maxSeconds = uint64(gomath.MaxUint64 / params.NanosPerSecond)

var errTimeRange = errors.New("time out of range")

// scenarioStep is one line of a scenario file: a system action plus the
// environment of the call. At is in seconds after genesis; Deposit is in
// whole tokens.
type scenarioStep struct {
	At      uint64 `json:"at"`
	Caller  string `json:"caller"`
	Deposit string `json:"deposit,omitempty"`
	sysaction.SysAction
}

// stepResult is the outcome of replaying one step.
type stepResult struct {
	Step   scenarioStep
	Result *uint256.Int
	Err    error
}

// parseScenario reads JSON lines. Blank lines and lines starting with '#'
// are skipped. Steps must be in non-decreasing time order.
func parseScenario(r io.Reader) ([]scenarioStep, error) {
	var (
		steps   []scenarioStep
		scanner = bufio.NewScanner(r)
		lineNo  int
	)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var step scenarioStep
		if err := json.Unmarshal([]byte(line), &step); err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
		if step.Action == "" {
			return nil, fmt.Errorf("line %d: missing action", lineNo)
		}
		if step.At > maxSeconds {
			return nil, fmt.Errorf("line %d: %w: %d", lineNo, errTimeRange, step.At)
		}
		if n := len(steps); n > 0 && step.At < steps[n-1].At {
			return nil, fmt.Errorf("line %d: time %d goes back from %d", lineNo, step.At, steps[n-1].At)
		}
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}

// toNanos converts whole seconds to the contract clock.
func toNanos(secs uint64) (uint64, error) {
	if secs > maxSeconds {
		return 0, fmt.Errorf("%w: %d s", errTimeRange, secs)
	}
	return secs * params.NanosPerSecond, nil
}

// timestamp converts a step time to the contract clock.
func timestamp(genesis, at uint64) (uint64, error) {
	offset, err := toNanos(at)
	if err != nil {
		return 0, err
	}
	if genesis > gomath.MaxUint64-offset {
		return 0, fmt.Errorf("%w: genesis %d + %d s", errTimeRange, genesis, at)
	}
	return genesis + offset, nil
}

// runScenario replays steps against c. Failed calls are recorded and the
// replay continues.
func runScenario(c *contract.Contract, steps []scenarioStep, genesis uint64) ([]stepResult, error) {
	results := make([]stepResult, 0, len(steps))
	for i, step := range steps {
		now, err := timestamp(genesis, step.At)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		call := contract.Call{
			Predecessor: common.AccountID(step.Caller),
			Timestamp:   now,
		}
		if step.Deposit != "" {
			deposit, err := math.ParseToken(step.Deposit)
			if err != nil {
				return nil, fmt.Errorf("step %d: deposit: %w", i+1, err)
			}
			call.Deposit = deposit
		}
		data, err := sysaction.Encode(&step.SysAction)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		res, err := c.Execute(call, data)
		results = append(results, stepResult{Step: step, Result: res, Err: err})
	}
	return results, nil
}
