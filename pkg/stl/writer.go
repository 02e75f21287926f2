package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/gotri/pkg/geometry"
)

// WriteASCII encodes the model as ASCII STL
func WriteASCII(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "solid %s\n", m.Name)
	for _, f := range m.Facets {
		fmt.Fprintf(bw, "  facet normal %s\n", formatVector(f.Normal))
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range []geometry.Vector3{f.V1, f.V2, f.V3} {
			fmt.Fprintf(bw, "      vertex %s\n", formatVector(v))
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", m.Name)

	return bw.Flush()
}

func formatVector(v geometry.Vector3) string {
	return fmt.Sprintf("%e %e %e", v.X, v.Y, v.Z)
}

// WriteBinary encodes the model as binary STL
func WriteBinary(w io.Writer, m *Model) error {
	var header [headerSize]byte
	copy(header[:], m.Name)

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Facets))); err != nil {
		return fmt.Errorf("failed to write facet count: %w", err)
	}
	for i, f := range m.Facets {
		rec := binaryFacet{
			Normal: toFloat32(f.Normal),
			V1:     toFloat32(f.V1),
			V2:     toFloat32(f.V2),
			V3:     toFloat32(f.V3),
		}
		if err := binary.Write(bw, binary.LittleEndian, rec); err != nil {
			return fmt.Errorf("failed to write facet %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// Save writes the model to filename in the chosen encoding
func Save(filename string, m *Model, asBinary bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	write := WriteASCII
	if asBinary {
		write = WriteBinary
	}
	if err := write(file, m); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
