// Package main provides the ndarray CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/ndarray/dtype"
	"github.com/born-ml/ndarray/memory"
	"github.com/born-ml/ndarray/ndarray"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("ndarray: ")

	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("ndarray %s\n", version)
	case "inspect":
		if err := inspect(os.Args[2:]); err != nil {
			log.Fatal(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("ndarray - multi-dimensional arrays over managed buffers")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  inspect    Allocate an array and print its layout")
}

func inspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	dtypeName := fs.String("dtype", "float32", "element type (float32, f64, int, long, ...)")
	shapeArg := fs.String("shape", "2,3", "comma-separated extents, at least two")
	layoutArg := fs.String("layout", "C", "C (row-major) or F (column-major)")
	indexArg := fs.String("index", "", "optional comma-separated index to resolve")
	providerArg := fs.String("provider", "mmap", "buffer provider: mmap, heap or a file path prefixed with file:")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dt, err := dtype.Parse(*dtypeName)
	if err != nil {
		return err
	}
	shape, err := parseInts(*shapeArg)
	if err != nil {
		return fmt.Errorf("invalid -shape: %w", err)
	}
	layout, err := ndarray.ParseLayout(*layoutArg)
	if err != nil {
		return err
	}
	provider, err := parseProvider(*providerArg)
	if err != nil {
		return err
	}

	a, err := ndarray.New(dt, shape, ndarray.WithLayout(layout), ndarray.WithProvider(provider))
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}()

	fmt.Println(a)
	fmt.Printf("rank:     %d\n", a.Rank())
	fmt.Printf("shape:    %v\n", a.Shape())
	fmt.Printf("strides:  %v\n", a.Strides())
	fmt.Printf("bytes:    %d\n", a.ByteSize())
	fmt.Printf("pointer:  %#x\n", a.Pointer())

	if *indexArg == "" {
		return nil
	}
	idx, err := parseInts(*indexArg)
	if err != nil {
		return fmt.Errorf("invalid -index: %w", err)
	}
	off, err := a.ByteOffset(idx...)
	if err != nil {
		return err
	}
	x, err := a.At(idx...)
	if err != nil {
		return err
	}
	fmt.Printf("offset:   %d bytes\n", off)
	fmt.Printf("value:    %v\n", x)
	return nil
}

func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func parseProvider(s string) (memory.Provider, error) {
	switch {
	case s == "mmap":
		return memory.Mmap{}, nil
	case s == "heap":
		return memory.Heap{}, nil
	case strings.HasPrefix(s, "file:"):
		return memory.File{Path: strings.TrimPrefix(s, "file:")}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", s)
	}
}
