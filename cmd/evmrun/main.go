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

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/n42blockchain/N42/internal/fixtures"
	"github.com/n42blockchain/N42/log"
	"github.com/n42blockchain/N42/params"
)

var fixturesFlag = &cli.StringFlag{
	Name:    "fixtures",
	Aliases: []string{"f"},
	Usage:   "path to the JSON fixture file",
	Value:   "testdata/fixtures.json",
}

func main() {
	app := &cli.App{
		Name:      "evmrun",
		Usage:     "run EVM bytecode against the execution engine's test fixtures",
		UsageText: "evmrun [N] | evmrun test=<hex> | evmrun",
		Version:   params.VersionWithMeta,
		Flags:     []cli.Flag{fixturesFlag},
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Error("evmrun failed", "err", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	arg := c.Args().First()

	if strings.HasPrefix(arg, "test=") {
		return runHex(strings.TrimPrefix(arg, "test="))
	}

	all, err := fixtures.Load(c.String("fixtures"))
	if err != nil {
		return err
	}

	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("argument %q is neither test=<hex> nor an integer", arg)
		}
		if n < len(all) {
			all = all[:n]
		}
	}

	passed, failed := fixtures.RunAll(all, os.Stdout)
	fmt.Printf("%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func runHex(codeHex string) error {
	success, stack, logs, returnData, err := fixtures.RunHex(codeHex)
	if err != nil {
		return err
	}

	fmt.Printf("success: %v\n", success)
	fmt.Printf("stack:   %v\n", stack)
	if len(logs) > 0 {
		fmt.Printf("logs:    %v\n", logs)
	}
	if returnData != "" {
		fmt.Printf("return:  0x%s\n", returnData)
	}

	if !success {
		return cli.Exit("", 1)
	}
	return nil
}
