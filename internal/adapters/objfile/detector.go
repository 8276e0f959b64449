// Package objfile recognizes dynamically loadable object files by their header.
package objfile

import (
	"debug/elf"
	"encoding/binary"
	"errors"
	"io"
	"os"

	"go.trai.ch/lddgraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// headerSize covers e_ident and e_type.
const headerSize = elf.EI_NIDENT + 2

// Detector implements ports.BinaryDetector for ELF objects.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// IsLoadable reports whether the file at path is an ELF shared object.
func (d *Detector) IsLoadable(path string) (bool, error) {
	// #nosec G304 -- path is an input argument
	f, err := os.Open(path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrInputUnreadable.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	var hdr [headerSize]byte
	if _, err := io.ReadFull(f, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrInputUnreadable.Error()), "path", path)
	}

	return IsLoadableHeader(hdr[:]), nil
}

// IsLoadableHeader checks an ELF identification block followed by the object type.
func IsLoadableHeader(hdr []byte) bool {
	if len(hdr) < headerSize {
		return false
	}
	if string(hdr[:len(elf.ELFMAG)]) != elf.ELFMAG {
		return false
	}

	switch elf.Class(hdr[elf.EI_CLASS]) {
	case elf.ELFCLASS32, elf.ELFCLASS64:
	default:
		return false
	}

	var order binary.ByteOrder
	switch elf.Data(hdr[elf.EI_DATA]) {
	case elf.ELFDATA2LSB:
		order = binary.LittleEndian
	case elf.ELFDATA2MSB:
		order = binary.BigEndian
	default:
		return false
	}

	if elf.Version(hdr[elf.EI_VERSION]) != elf.EV_CURRENT {
		return false
	}

	return elf.Type(order.Uint16(hdr[elf.EI_NIDENT:])) == elf.ET_DYN
}
