package main

import (
	"io"
	"os"

	"go.dw1.io/mmapfile"
)

// input is the read-only content of a file. The file is memory-mapped when
// possible and read into memory otherwise, e.g. when it is empty or mmap is
// unavailable on the platform.
type input struct {
	name string
	mm   *mmapfile.MmapFile
	data []byte
}

// openInput opens name, or reads stdin when name is "-".
func openInput(name string, stdin io.Reader) (*input, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}

		return &input{name: name, data: data}, nil
	}

	if mf, err := mmapfile.Open(name); err == nil {
		return &input{name: name, mm: mf, data: mf.Bytes()}, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	return &input{name: name, data: data}, nil
}

// Bytes returns the content. It must not be modified or used after Close.
func (in *input) Bytes() []byte {
	return in.data
}

// Close releases the mapping, if any.
func (in *input) Close() error {
	in.data = nil
	if in.mm != nil {
		return in.mm.Close()
	}

	return nil
}
