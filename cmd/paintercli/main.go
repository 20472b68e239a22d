// Command paintercli is a thin command-line harness over paintercore:
// create a document, render it with the software backend, inspect its
// operation graph, or round-trip it through the codec.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/sveg/paintercore"
	"github.com/sveg/paintercore/backend/software"
	"github.com/sveg/paintercore/document/template"
	"github.com/sveg/paintercore/editcontext"
	"github.com/sveg/paintercore/render"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "new":
		err = runNew(os.Args[2:])
	case "render":
		err = runRender(os.Args[2:])
	case "dotgraph":
		err = runDotgraph(os.Args[2:])
	case "save":
		err = runSave(os.Args[2:])
	case "load":
		err = runLoad(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "paintercli:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: paintercli <new|render|dotgraph|save|load> [flags]")
}

func runNew(args []string) error {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	out := fs.String("out", "painting.sveg", "path to write the new document to")
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc := paintercore.NewDocument()

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer f.Close()

	if err := paintercore.Save(f, doc); err != nil {
		return fmt.Errorf("save %s: %w", *out, err)
	}
	fmt.Println("wrote", *out)
	return nil
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	in := fs.String("in", "painting.sveg", "path to the document to render")
	out := fs.String("out", "painting.png", "path to write the rendered PNG to")
	width := fs.Int("width", template.DefaultCanvasWidth, "canvas width in pixels")
	height := fs.Int("height", template.DefaultCanvasHeight, "canvas height in pixels")
	registers := fs.Int("registers", 8, "register budget the scheduler may use")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := os.Open(*in)
	if err != nil {
		return fmt.Errorf("open %s: %w", *in, err)
	}
	doc, err := paintercore.Load(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("load %s: %w", *in, err)
	}

	ctx := editcontext.New(doc)
	be := software.New(doc, *width, *height)

	reg, err := paintercore.Render(ctx, be, *registers, nil)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	target := render.NewPixmapTarget(*width, *height)
	if err := render.Present(reg, target); err != nil {
		return fmt.Errorf("present: %w", err)
	}

	outFile, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer outFile.Close()

	if err := png.Encode(outFile, target.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	fmt.Println("wrote", *out)
	return nil
}

func runDotgraph(args []string) error {
	fs := flag.NewFlagSet("dotgraph", flag.ExitOnError)
	in := fs.String("in", "painting.sveg", "path to the document to inspect")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := os.Open(*in)
	if err != nil {
		return fmt.Errorf("open %s: %w", *in, err)
	}
	doc, err := paintercore.Load(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("load %s: %w", *in, err)
	}

	ctx := editcontext.New(doc)
	fmt.Println(paintercore.GenerateDotgraph(ctx))
	return nil
}

func runSave(args []string) error {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	out := fs.String("out", "painting.sveg", "path to write the document to")
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc := paintercore.NewDocument()
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer f.Close()
	return paintercore.Save(f, doc)
}

func runLoad(args []string) error {
	fs := flag.NewFlagSet("load", flag.ExitOnError)
	in := fs.String("in", "painting.sveg", "path to the document to load")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := os.Open(*in)
	if err != nil {
		return fmt.Errorf("open %s: %w", *in, err)
	}
	defer f.Close()

	doc, err := paintercore.Load(f)
	if err != nil {
		return fmt.Errorf("load %s: %w", *in, err)
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("document failed validation: %w", err)
	}
	fmt.Println("loaded ok:", *in)
	return nil
}
