// meshtool is a CLI utility for inspecting and exporting the terrain grid.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"

	"github.com/Faultbox/terrainscroll/internal/engine/terrain"
)

const (
	defaultSize       = 100
	defaultResolution = 100
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "dump":
		cmdDump(args)
	case "export", "x":
		cmdExport(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - terrain grid utility

Usage:
  meshtool <command> [options]

Commands:
  info   [-size N] [-res N]                  Show counts, buffer sizes and bounds
  dump   [-size N] [-res N] [-n K]           Print vertex positions and texcoords
  export [-size N] [-res N] [-binary] <out>  Write the grid as glTF 2.0

Examples:
  meshtool info -res 200
  meshtool dump -size 2 -res 2
  meshtool export -binary terrain.glb`)
}

// gridFlags registers the flags shared by every command.
func gridFlags(fs *flag.FlagSet) (*float64, *int) {
	size := fs.Float64("size", defaultSize, "Terrain edge length")
	res := fs.Int("res", defaultResolution, "Samples per edge")
	return size, res
}

func buildMesh(size float64, res int) *terrain.Mesh {
	if err := terrain.Validate(float32(size), res); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return terrain.GenerateMesh(float32(size), res)
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	size, res := gridFlags(fs)
	fs.Parse(args)

	m := buildMesh(*size, *res)
	positions, texCoords := m.Flatten()
	b := m.Bounds()

	fmt.Printf("Size:       %g\n", m.Size)
	fmt.Printf("Resolution: %d\n", m.Resolution)
	fmt.Printf("Cells:      %d\n", m.CellCount())
	fmt.Printf("Triangles:  %d\n", m.VertexCount()/3)
	fmt.Printf("Vertices:   %d\n", m.VertexCount())
	fmt.Println()
	fmt.Println("Buffers:")
	fmt.Printf("  aVertex     %d floats  %s\n", len(positions), formatBytes(len(positions)*4))
	fmt.Printf("  aTexCoords  %d floats  %s\n", len(texCoords), formatBytes(len(texCoords)*4))
	fmt.Println()
	fmt.Printf("Bounds: (%g, %g, %g) - (%g, %g, %g)\n",
		b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
}

func cmdDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	size, res := gridFlags(fs)
	limit := fs.Int("n", 0, "Limit output to N vertices (0 = all)")
	fs.Parse(args)

	m := buildMesh(*size, *res)

	count := m.VertexCount()
	if *limit > 0 && *limit < count {
		count = *limit
	}

	for i := 0; i < count; i++ {
		p := m.Positions[i]
		t := m.TexCoords[i]
		fmt.Printf("%6d  pos (%8.3f, %8.3f, %8.3f)  uv (%6.4f, %6.4f)\n",
			i, p[0], p[1], p[2], t[0], t[1])
	}
	if count < m.VertexCount() {
		fmt.Printf("... and %d more\n", m.VertexCount()-count)
	}
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	size, res := gridFlags(fs)
	binary := fs.Bool("binary", false, "Write a binary .glb")
	name := fs.String("name", "terrain", "Mesh and node name")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool export [-size N] [-res N] [-binary] <out.gltf|out.glb>")
		os.Exit(1)
	}
	out := fs.Arg(0)

	// A .glb extension implies binary output.
	if strings.EqualFold(filepath.Ext(out), ".glb") {
		*binary = true
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
			os.Exit(1)
		}
	}

	m := buildMesh(*size, *res)
	doc := m.Document(*name)

	var err error
	if *binary {
		err = gltf.SaveBinary(doc, out)
	} else {
		err = gltf.Save(doc, out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out, err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d vertices to %s\n", m.VertexCount(), out)
}

func formatBytes(n int) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.2f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
