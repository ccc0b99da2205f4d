// SPDX-License-Identifier: MIT
// Package: lvkd/cmd/kdtool
//
// print.go — "print" command: render the tree shape with treeprint.

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"
)

var cmdPrint = &cli.Command{
	Name:      "print",
	Usage:     "render the bulk-loaded tree shape",
	ArgsUsage: `<file>`,
	Action: func(cctx *cli.Context) error {
		tr, err := loadTree(cctx.Args().First())
		if err != nil {
			return err
		}
		fmt.Fprint(cctx.App.Writer, renderTree(tr))
		return nil
	},
}

func renderTree(tr *pointTree) string {
	root := tr.Root()
	if !root.Valid() {
		return "(empty)\n"
	}
	tree := treeprint.NewWithRoot(nodeLabel("", root))
	addChildren(tree, root)
	return tree.String()
}

func addChildren(branch treeprint.Tree, it cursor) {
	children := []struct {
		side string
		node cursor
	}{
		{"L", it.Left()},
		{"R", it.Right()},
	}
	for _, c := range children {
		if !c.node.Valid() {
			continue
		}
		label := nodeLabel(c.side, c.node)
		if c.node.Left().Valid() || c.node.Right().Valid() {
			addChildren(branch.AddBranch(label), c.node)
		} else {
			branch.AddNode(label)
		}
	}
}

func nodeLabel(side string, it cursor) string {
	label := fmt.Sprintf("%s split=%d %s", formatKey(it.Key()), it.Dim(), it.Value())
	if side != "" {
		label = side + " " + label
	}
	return label
}
