// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

package fixtures

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/holiman/uint256"

	"github.com/n42blockchain/N42/common/block"
	"github.com/n42blockchain/N42/internal/vm"
	"github.com/n42blockchain/N42/internal/vm/evmtypes"
)

// Outcome is the per-fixture verdict the runner produces: whether it
// passed, and if not, the human-readable reason why.
type Outcome struct {
	Fixture Fixture
	Passed  bool
	Reason  string
}

// Run executes a single fixture and checks its expectation. It never
// returns an error for an EVM-level failure (a HardFail is itself a valid,
// checkable outcome) — only a malformed fixture (bad hex, bad env) yields
// one.
func Run(f Fixture) (Outcome, error) {
	code, err := f.Bytecode()
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: bad bytecode: %w", f.Name, err)
	}
	env, err := f.Environment()
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: bad environment: %w", f.Name, err)
	}

	res := vm.Execute(code, env.Tx.Data, &env)

	if res.Success != f.Expect.Success {
		reason := fmt.Sprintf("success = %v, want %v", res.Success, f.Expect.Success)
		if res.Err != nil {
			reason = fmt.Sprintf("%s (%v)", reason, res.Err)
		}
		return Outcome{Fixture: f, Reason: reason}, nil
	}
	if !f.Expect.Success {
		return Outcome{Fixture: f, Passed: true}, nil
	}

	switch {
	case len(f.Expect.Stack) > 0:
		if reason := compareStack(f.Expect.Stack, res.Stack); reason != "" {
			return Outcome{Fixture: f, Reason: reason}, nil
		}
	case len(f.Expect.Logs) > 0:
		if reason := compareLogs(f.Expect.Logs, res.Logs); reason != "" {
			return Outcome{Fixture: f, Reason: reason}, nil
		}
	case f.Expect.Return != "":
		want, err := decodeHex(f.Expect.Return)
		if err != nil {
			return Outcome{}, fmt.Errorf("%s: bad expect.return: %w", f.Name, err)
		}
		if !bytes.Equal(res.ReturnData, want) {
			return Outcome{Fixture: f, Reason: fmt.Sprintf(
				"return = %x, want %x", res.ReturnData, want)}, nil
		}
	}

	return Outcome{Fixture: f, Passed: true}, nil
}

func compareStack(want []string, got []*uint256.Int) string {
	if len(want) != len(got) {
		return fmt.Sprintf("stack has %d element(s), want %d", len(got), len(want))
	}
	for i, w := range want {
		wv, err := decodeU256(w)
		if err != nil {
			return fmt.Sprintf("expect.stack[%d] = %q is not valid hex", i, w)
		}
		if !got[i].Eq(wv) {
			return fmt.Sprintf("stack[%d] = %s, want %s", i, got[i].Hex(), wv.Hex())
		}
	}
	return ""
}

func compareLogs(want []LogEntry, got block.Logs) string {
	if len(want) != len(got) {
		return fmt.Sprintf("logs has %d entry(ies), want %d", len(got), len(want))
	}
	for i, w := range want {
		g := got[i]
		if w.Address != "" {
			wantAddr, err := decodeAddress(w.Address)
			if err != nil {
				return fmt.Sprintf("expect.logs[%d].address = %q is not valid hex", i, w.Address)
			}
			if g.Address != wantAddr {
				return fmt.Sprintf("logs[%d].address = %s, want %s", i, g.Address.Hex(), wantAddr.Hex())
			}
		}
		wantData, err := decodeHex(w.Data)
		if err != nil {
			return fmt.Sprintf("expect.logs[%d].data = %q is not valid hex", i, w.Data)
		}
		if !bytes.Equal(g.Data, wantData) {
			return fmt.Sprintf("logs[%d].data = %x, want %x", i, g.Data, wantData)
		}
		if len(w.Topics) != len(g.Topics) {
			return fmt.Sprintf("logs[%d] has %d topic(s), want %d", i, len(g.Topics), len(w.Topics))
		}
		for j, wt := range w.Topics {
			wantTopic, err := decodeHex(wt)
			if err != nil {
				return fmt.Sprintf("expect.logs[%d].topics[%d] = %q is not valid hex", i, j, wt)
			}
			if !bytes.Equal(g.Topics[j].Bytes(), wantTopic) {
				return fmt.Sprintf("logs[%d].topics[%d] = %s, want %x", i, j, g.Topics[j].Hex(), wantTopic)
			}
		}
	}
	return ""
}

// RunAll executes every fixture in order, writing a "✓ name" line per
// success and, on failure, the failing name, the expected/actual
// mismatch, the disassembly and the hint, to w. A failure does not stop
// the run. It returns the number of fixtures that passed and the number
// that failed.
func RunAll(fixtures []Fixture, w io.Writer) (passed int, failed int) {
	for _, f := range fixtures {
		outcome, err := Run(f)
		if err != nil {
			fmt.Fprintf(w, "✗ %s\n  error: %v\n", f.Name, err)
			failed++
			continue
		}
		if outcome.Passed {
			fmt.Fprintf(w, "✓ %s\n", f.Name)
			passed++
			continue
		}
		failed++
		fmt.Fprintf(w, "✗ %s\n", f.Name)
		fmt.Fprintf(w, "  reason: %s\n", outcome.Reason)
		fmt.Fprintf(w, "  asm:    %s\n", f.Code.Asm)
		fmt.Fprintf(w, "  bin:    %s\n", f.Code.Bin)
		if f.Hint != "" {
			fmt.Fprintf(w, "  hint:   %s\n", f.Hint)
		}
	}
	return passed, failed
}

// RunHex executes raw bytecode once against an empty environment — the
// `test=<hex>` CLI surface. It reports the stack top-of-stack first as
// hex strings, the emitted logs and any returned bytes.
func RunHex(codeHex string) (success bool, stack []string, logs []LogEntry, returnData string, err error) {
	code, err := decodeHex(codeHex)
	if err != nil {
		return false, nil, nil, "", fmt.Errorf("bad hex: %w", err)
	}
	env := evmtypes.Empty()
	res := vm.Execute(code, nil, &env)

	stack = make([]string, len(res.Stack))
	for i, v := range res.Stack {
		stack[i] = v.Hex()
	}
	logs = make([]LogEntry, len(res.Logs))
	for i, l := range res.Logs {
		topics := make([]string, len(l.Topics))
		for j, t := range l.Topics {
			topics[j] = t.Hex()
		}
		logs[i] = LogEntry{Address: l.Address.Hex(), Data: hex.EncodeToString(l.Data), Topics: topics}
	}
	return res.Success, stack, logs, hex.EncodeToString(res.ReturnData), nil
}
