// Copyright 2024 The MoveChain Authors
// This file is part of the MoveChain library.
//
// The MoveChain library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// movec is a command-line front end for the type-tag and transaction-argument
// parser. It reads literal text, parses it, and prints the canonical
// rendering, exiting nonzero with the parser's message on malformed input.
package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/urfave/cli.v1"

	"github.com/movechain/go-move/lang/parser"
)

var app = cli.NewApp()

func init() {
	app.Name = "movec"
	app.Usage = "parse and canonicalize type tags and transaction arguments"
	app.Commands = []cli.Command{
		{
			Name:      "type",
			Usage:     "Parse a comma-separated list of type tags",
			ArgsUsage: "<type-tags>",
			Action:    parseTypeTags,
			Description: `Parses a comma-separated list of type tags, e.g.

    movec type 'vector<u8>, 0x1::Coin::Coin<bool>'

and prints each tag in canonical form, one per line.`,
		},
		{
			Name:      "struct",
			Usage:     "Parse a single struct tag",
			ArgsUsage: "<struct-tag>",
			Action:    parseStructTag,
			Description: `Parses one struct-shaped type tag, e.g.

    movec struct '0x1::Coin::Coin<u64>'

and prints its canonical form and full publishing address.`,
		},
		{
			Name:      "arg",
			Usage:     "Parse a comma-separated list of transaction arguments",
			ArgsUsage: "<arguments>",
			Action:    parseArguments,
			Description: `Parses a comma-separated list of transaction-argument
literals, e.g.

    movec arg '255u8, true, 0x1, x"deadbeef"'

and prints each argument in canonical form, one per line.`,
		},
	}
}

func inputText(ctx *cli.Context) (string, error) {
	if ctx.NArg() == 0 {
		return "", fmt.Errorf("no input given")
	}
	return strings.Join(ctx.Args(), " "), nil
}

func parseTypeTags(ctx *cli.Context) error {
	text, err := inputText(ctx)
	if err != nil {
		return err
	}
	tags, err := parser.ParseTypeTagList(text)
	if err != nil {
		return err
	}
	for _, tag := range tags {
		fmt.Println(tag)
	}
	return nil
}

func parseStructTag(ctx *cli.Context) error {
	text, err := inputText(ctx)
	if err != nil {
		return err
	}
	st, err := parser.ParseStructTag(text)
	if err != nil {
		return err
	}
	fmt.Println(st)
	fmt.Printf("address: %s\n", st.Address.Hex())
	return nil
}

func parseArguments(ctx *cli.Context) error {
	text, err := inputText(ctx)
	if err != nil {
		return err
	}
	args, err := parser.ParseTransactionArgumentList(text)
	if err != nil {
		return err
	}
	for _, arg := range args {
		fmt.Println(arg)
	}
	return nil
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
