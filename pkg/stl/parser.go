package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gotri/pkg/geometry"
)

// ErrMalformed is returned for STL data that cannot be decoded
var ErrMalformed = errors.New("malformed STL")

const (
	headerSize = 80
	facetSize  = 50
)

// Parse reads an STL file and returns a Model
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read decodes STL data. ASCII and binary encodings are told apart by the
// size a binary file would need, since binary headers may also start with
// "solid".
func Read(reader io.Reader) (*Model, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL data: %w", err)
	}

	if isBinary(data) {
		return parseBinary(data)
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("solid")) {
		return parseASCII(bytes.NewReader(data))
	}
	return nil, fmt.Errorf("neither ASCII nor binary STL: %w", ErrMalformed)
}

func isBinary(data []byte) bool {
	if len(data) < headerSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(data[headerSize : headerSize+4])
	return uint64(len(data)) == uint64(headerSize+4)+uint64(count)*facetSize
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var normal geometry.Vector3
	var vertices []geometry.Vector3
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) != 5 || fields[1] != "normal" {
				return nil, fmt.Errorf("line %d: expected facet normal: %w", lineNo, ErrMalformed)
			}
			v, err := parseVector(fields[2:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			normal = v

		case "vertex":
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: expected 3 vertex coordinates: %w", lineNo, ErrMalformed)
			}
			v, err := parseVector(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) != 3 {
				return nil, fmt.Errorf("line %d: facet with %d vertices: %w", lineNo, len(vertices), ErrMalformed)
			}
			model.AddFacet(geometry.Facet{Normal: normal, V1: vertices[0], V2: vertices[1], V3: vertices[2]})
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var xyz [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("coordinate %q: %w", f, ErrMalformed)
		}
		xyz[i] = v
	}
	return geometry.NewVector3(xyz[0], xyz[1], xyz[2]), nil
}

// binaryFacet mirrors the 50-byte binary facet record
type binaryFacet struct {
	Normal     [3]float32
	V1, V2, V3 [3]float32
	Attribute  uint16
}

// parseBinary parses a binary STL file
func parseBinary(data []byte) (*Model, error) {
	model := NewModel(string(bytes.TrimRight(data[:headerSize], "\x00 ")))

	reader := bytes.NewReader(data[headerSize:])
	var count uint32
	if err := binary.Read(reader, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read facet count: %w", err)
	}

	for i := uint32(0); i < count; i++ {
		var rec binaryFacet
		if err := binary.Read(reader, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to read facet %d: %w", i, err)
		}
		model.AddFacet(geometry.Facet{
			Normal: fromFloat32(rec.Normal),
			V1:     fromFloat32(rec.V1),
			V2:     fromFloat32(rec.V2),
			V3:     fromFloat32(rec.V3),
		})
	}

	return model, nil
}

func fromFloat32(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}

func toFloat32(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
