package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/truemedian/zig/zir"
)

func main() {
	headerCmd := &cli.Command{
		Name:   "header",
		Action: headerAct,
		Args:   cli.Args{},
	}

	dumpCmd := &cli.Command{
		Name:   "dump",
		Action: dumpAct,
		Args:   cli.Args{},
	}

	app := &cli.Command{
		Name:        "zirdump",
		Description: "zirdump inspects serialized instruction containers",
		Commands: []*cli.Command{
			headerCmd,
			dumpCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func headerAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		_, h, err := loadFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "load %v", a)
		}

		printHeader(a, h)
	}

	return nil
}

func dumpAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		code, h, err := loadFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "load %v", a)
		}

		printHeader(a, h)

		if code.HasCompileErrors() {
			fmt.Printf("has compile errors\n")
		}

		if at := code.Extra[zir.ExtraImports]; at != 0 {
			rec, i := zir.ExtraData[zir.Imports](code, at)

			for n := uint32(0); n < rec.ImportsLen; n++ {
				var item zir.ImportItem

				item, i = zir.ExtraData[zir.ImportItem](code, i)

				fmt.Printf("import %q\n", code.NullTerminatedString(item.Name))
			}
		}

		var dc zir.DeclContents

		code.FindTrackableRoot(&dc)
		printContents("root", &dc)

		it := code.DeclIterator(zir.MainStructInst)

		for {
			decl, ok := it.Next()
			if !ok {
				break
			}

			d := code.GetDeclaration(decl)

			name := "_"
			if d.ID.HasName() {
				name = code.NullTerminatedString(d.Name)
			}

			fmt.Printf("%%%d %v %v at %d:%d  type %d align %d section %d addrspace %d value %d",
				decl, d.ID, name, d.SrcLine+1, d.SrcColumn+1,
				len(d.TypeBody), len(d.AlignBody), len(d.LinksectionBody), len(d.AddrspaceBody), len(d.ValueBody))

			if d.ID.Linkage() == zir.LinkageExtern {
				fmt.Printf("  extern %q", code.NullTerminatedString(d.LibName))
			}

			fmt.Printf("\n")

			code.FindTrackable(&dc, decl)
			printContents("  ", &dc)
		}
	}

	return nil
}

func loadFile(ctx context.Context, name string) (*zir.Code, zir.Header, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, zir.Header{}, errors.Wrap(err, "open")
	}

	defer f.Close()

	return zir.LoadCode(ctx, f)
}

func printHeader(name string, h zir.Header) {
	fmt.Printf("%v: insts %d  string bytes %d  extra %d  stat %d/%d/%d\n",
		name, h.InstLen, h.StringBytesLen, h.ExtraLen, h.StatInode, h.StatSize, h.StatMtime)
}

func printContents(prefix string, dc *zir.DeclContents) {
	if fn, ok := dc.FuncDecl.Unwrap(); ok {
		fmt.Printf("%v fn %%%d\n", prefix, fn)
	}

	for _, inst := range dc.ExplicitTypes {
		fmt.Printf("%v type %%%d\n", prefix, inst)
	}

	for _, inst := range dc.Other {
		fmt.Printf("%v other %%%d\n", prefix, inst)
	}
}
