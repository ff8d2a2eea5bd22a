// Package loader reads MIPS instruction streams for the ALU simulator.
//
// Two input forms are accepted:
//   - a 32-bit MIPS ELF file, whose .text section is read as instruction
//     words in the file's byte order. Without section headers the words
//     run from the entry point to the end of its executable segment;
//   - a text listing with one hexadecimal word per line. Blank lines and
//     anything after '#' or "//" are ignored.
package loader

import (
	"bufio"
	"bytes"
	"debug/elf"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var elfMagic = []byte{0x7f, 'E', 'L', 'F'}

// Program represents a loaded instruction stream.
type Program struct {
	// Words holds the instruction words in execution order.
	Words []uint32
	// EntryPoint is the ELF entry address, or 0 for text listings.
	EntryPoint uint64
	// Source is the path the program was loaded from.
	Source string
}

// Load reads the program at path, choosing the format from its content.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program: %w", err)
	}

	var prog *Program
	if bytes.HasPrefix(data, elfMagic) {
		prog, err = parseELF(bytes.NewReader(data))
	} else {
		prog, err = ParseText(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	prog.Source = path
	return prog, nil
}

func parseELF(r io.ReaderAt) (*Program, error) {
	f, err := elf.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	// Validate ELF class (must be 32-bit)
	if f.Class != elf.ELFCLASS32 {
		return nil, fmt.Errorf("not a 32-bit ELF file")
	}

	// Validate machine type (must be MIPS)
	if f.Machine != elf.EM_MIPS {
		return nil, fmt.Errorf("not a MIPS ELF file (machine type: %v)", f.Machine)
	}

	prog := &Program{EntryPoint: f.Entry}

	code, err := textBytes(f)
	if err != nil {
		return nil, err
	}

	if len(code)%4 != 0 {
		return nil, fmt.Errorf("code is not word aligned (%d bytes)", len(code))
	}

	for i := 0; i < len(code); i += 4 {
		prog.Words = append(prog.Words, f.ByteOrder.Uint32(code[i:i+4]))
	}

	if len(prog.Words) == 0 {
		return nil, fmt.Errorf("no instructions found")
	}

	return prog, nil
}

// textBytes returns the contents of the .text section. Files without
// section headers fall back to the executable PT_LOAD segment holding the
// entry point, read from the entry point to the end of the segment.
func textBytes(f *elf.File) ([]byte, error) {
	if sec := f.Section(".text"); sec != nil && sec.Type != elf.SHT_NOBITS {
		data, err := sec.Data()
		if err != nil {
			return nil, fmt.Errorf("failed to read .text: %w", err)
		}
		return data, nil
	}

	for _, phdr := range f.Progs {
		if phdr.Type != elf.PT_LOAD || phdr.Flags&elf.PF_X == 0 {
			continue
		}
		if f.Entry < phdr.Vaddr || f.Entry >= phdr.Vaddr+phdr.Filesz {
			continue
		}

		data := make([]byte, phdr.Filesz)
		n, err := phdr.ReadAt(data, 0)
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read segment at 0x%x: %w", phdr.Vaddr, err)
		}
		if uint64(n) != phdr.Filesz {
			return nil, fmt.Errorf("short read for segment at 0x%x: got %d bytes, expected %d",
				phdr.Vaddr, n, phdr.Filesz)
		}

		return data[f.Entry-phdr.Vaddr:], nil
	}

	return nil, fmt.Errorf("no .text section and no executable segment contains entry point 0x%x", f.Entry)
}

// ParseText parses a hexadecimal listing, one word per line.
func ParseText(r io.Reader) (*Program, error) {
	prog := &Program{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}

		hex := strings.TrimPrefix(strings.TrimPrefix(line, "0x"), "0X")
		word, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid instruction word %q: %w", lineNo, line, err)
		}

		prog.Words = append(prog.Words, uint32(word))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listing: %w", err)
	}

	return prog, nil
}

func stripComment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
