// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package assembler turns assembly source into a ROM ready for attachment.
//
// The dialect is the classic one: CLS, RET, SYS, JP, CALL, SE, SNE, LD, ADD,
// OR, AND, XOR, SUB, SHR, SUBN, SHL, RND, DRW, SKP and SKNP, with the special
// operands I, [I], DT, ST, K, F and B selecting among the LD and ADD forms.
// The DB and DW directives emit raw data. Numbers are decimal, or hexadecimal
// with a # prefix. Comments run from a semicolon to the end of the line.
//
// A label is an identifier ending with a colon, alone on its line. Label
// references may appear before the definition; resolution happens in a second
// pass once every address is known.
package assembler

import (
	"io"
	"strings"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/memory"
)

// Sentinal errors raised by the assembler.
const (
	DuplicateLabel = "assembler: line %d: duplicate label (%s)"
	UndefinedLabel = "assembler: line %d: undefined label (%s)"
	InvalidAddress = "assembler: line %d: invalid address (%d)"
	InvalidByte    = "assembler: line %d: invalid byte (%d)"
	InvalidNibble  = "assembler: line %d: invalid nibble (%d)"
	InvalidLine    = "assembler: line %d: invalid statement"
	ProgramTooBig  = "assembler: program too big (%d bytes, %d bytes available)"
)

// Assemble the source read from input and write the ROM to output.
func Assemble(input io.Reader, output io.Writer) error {
	src, err := io.ReadAll(input)
	if err != nil {
		return curated.Errorf("assembler: %v", err)
	}

	rom, err := AssembleSource(string(src))
	if err != nil {
		return err
	}

	if _, err := output.Write(rom); err != nil {
		return curated.Errorf("assembler: %v", err)
	}

	return nil
}

// AssembleSource assembles the source string and returns the ROM data.
func AssembleSource(src string) ([]byte, error) {
	lines, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	// first pass measures every statement so that label addresses are known
	// before any encoding happens
	labels := make(map[string]uint16)
	address := uint16(memory.Origin)

	for _, line := range lines {
		if len(line.Tokens) == 1 && line.Tokens[0].Type == TokenLabel {
			name := line.Tokens[0].Text
			if _, ok := labels[name]; ok {
				return nil, curated.Errorf(DuplicateLabel, line.Num, name)
			}
			labels[name] = address
			continue
		}
		address += statementSize(line)
	}

	if int(address)-memory.Origin > memory.MaxROMSize {
		return nil, curated.Errorf(ProgramTooBig, int(address)-memory.Origin, memory.MaxROMSize)
	}

	// second pass encodes
	rom := make([]byte, 0, int(address)-memory.Origin)

	for _, line := range lines {
		b, err := encode(line, labels)
		if err != nil {
			return nil, err
		}
		rom = append(rom, b...)
	}

	return rom, nil
}

// statementSize returns the number of bytes the statement will occupy.
// Statements that will fail to encode are sized as instructions; the error
// surfaces in the second pass before anything is emitted.
func statementSize(line Line) uint16 {
	if len(line.Tokens) == 0 {
		return 0
	}
	if line.Tokens[0].Type == TokenIdentifier && strings.EqualFold(line.Tokens[0].Text, "DB") {
		return 1
	}
	return 2
}

// shorthand predicates for the encode patterns.

func ident(tok Token, name string) bool {
	return tok.Type == TokenIdentifier && strings.EqualFold(tok.Text, name)
}

func reg(tok Token) bool {
	return tok.Type == TokenRegister
}

func num(tok Token) bool {
	return tok.Type == TokenNumber
}

func comma(tok Token) bool {
	return tok.Type == TokenComma
}

// target is a numeric address or a label reference.
func target(tok Token) bool {
	return tok.Type == TokenNumber || tok.Type == TokenIdentifier
}

// encode one statement. Empty lines and label definitions encode to nothing.
func encode(line Line, labels map[string]uint16) ([]byte, error) {
	t := line.Tokens

	if len(t) == 0 || (len(t) == 1 && t[0].Type == TokenLabel) {
		return nil, nil
	}

	if t[0].Type != TokenIdentifier {
		return nil, curated.Errorf(InvalidLine, line.Num)
	}

	nibble := func(v uint16) (uint16, error) {
		if v > 0xf {
			return 0, curated.Errorf(InvalidNibble, line.Num, v)
		}
		return v, nil
	}

	byt := func(v uint16) (uint16, error) {
		if v > 0xff {
			return 0, curated.Errorf(InvalidByte, line.Num, v)
		}
		return v, nil
	}

	// resolve a numeric address or label reference
	addr := func(tok Token) (uint16, error) {
		if tok.Type == TokenIdentifier {
			a, ok := labels[tok.Text]
			if !ok {
				return 0, curated.Errorf(UndefinedLabel, line.Num, tok.Text)
			}
			return a, nil
		}
		if tok.Value > 0x0fff {
			return 0, curated.Errorf(InvalidAddress, line.Num, tok.Value)
		}
		return tok.Value, nil
	}

	word := func(w uint16) ([]byte, error) {
		return []byte{uint8(w >> 8), uint8(w)}, nil
	}

	// sNNN instructions: the high nibble and an address or label
	snnn := func(s uint16, tok Token) ([]byte, error) {
		a, err := addr(tok)
		if err != nil {
			return nil, err
		}
		return word(s<<12 | a)
	}

	// sXKK instructions: register and byte operands
	sxkk := func(s uint16, x uint16, kk uint16) ([]byte, error) {
		kk, err := byt(kk)
		if err != nil {
			return nil, err
		}
		return word(s<<12 | x<<8 | kk)
	}

	// sXYN instructions: two registers and a nibble
	sxyn := func(s uint16, x uint16, y uint16, n uint16) ([]byte, error) {
		n, err := nibble(n)
		if err != nil {
			return nil, err
		}
		return word(s<<12 | x<<8 | y<<4 | n)
	}

	mnemonic := strings.ToUpper(t[0].Text)
	rest := t[1:]

	switch mnemonic {
	case "CLS":
		if len(rest) == 0 {
			return word(0x00e0)
		}

	case "RET":
		if len(rest) == 0 {
			return word(0x00ee)
		}

	case "SYS":
		if len(rest) == 1 && target(rest[0]) {
			return snnn(0x0, rest[0])
		}

	case "JP":
		if len(rest) == 1 && target(rest[0]) {
			return snnn(0x1, rest[0])
		}
		// JP V0, target is the jump-with-offset form
		if len(rest) == 3 && reg(rest[0]) && rest[0].Value == 0 && comma(rest[1]) && target(rest[2]) {
			return snnn(0xb, rest[2])
		}

	case "CALL":
		if len(rest) == 1 && target(rest[0]) {
			return snnn(0x2, rest[0])
		}

	case "SE":
		if len(rest) == 3 && reg(rest[0]) && comma(rest[1]) && num(rest[2]) {
			return sxkk(0x3, rest[0].Value, rest[2].Value)
		}
		if len(rest) == 3 && reg(rest[0]) && comma(rest[1]) && reg(rest[2]) {
			return sxyn(0x5, rest[0].Value, rest[2].Value, 0x0)
		}

	case "SNE":
		if len(rest) == 3 && reg(rest[0]) && comma(rest[1]) && num(rest[2]) {
			return sxkk(0x4, rest[0].Value, rest[2].Value)
		}
		if len(rest) == 3 && reg(rest[0]) && comma(rest[1]) && reg(rest[2]) {
			return sxyn(0x9, rest[0].Value, rest[2].Value, 0x0)
		}

	case "LD":
		if len(rest) != 3 || !comma(rest[1]) {
			break
		}
		dst, src := rest[0], rest[2]
		switch {
		case reg(dst) && num(src):
			return sxkk(0x6, dst.Value, src.Value)
		case reg(dst) && reg(src):
			return sxyn(0x8, dst.Value, src.Value, 0x0)
		case ident(dst, "I") && target(src):
			return snnn(0xa, src)
		case reg(dst) && ident(src, "DT"):
			return sxyn(0xf, dst.Value, 0x0, 0x7)
		case reg(dst) && ident(src, "K"):
			return sxyn(0xf, dst.Value, 0x0, 0xa)
		case ident(dst, "DT") && reg(src):
			return sxyn(0xf, src.Value, 0x1, 0x5)
		case ident(dst, "ST") && reg(src):
			return sxyn(0xf, src.Value, 0x1, 0x8)
		case ident(dst, "F") && reg(src):
			return sxyn(0xf, src.Value, 0x2, 0x9)
		case ident(dst, "B") && reg(src):
			return sxyn(0xf, src.Value, 0x3, 0x3)
		case ident(dst, "[I]") && reg(src):
			return sxyn(0xf, src.Value, 0x5, 0x5)
		case reg(dst) && ident(src, "[I]"):
			return sxyn(0xf, dst.Value, 0x6, 0x5)
		}

	case "ADD":
		if len(rest) != 3 || !comma(rest[1]) {
			break
		}
		switch {
		case reg(rest[0]) && num(rest[2]):
			return sxkk(0x7, rest[0].Value, rest[2].Value)
		case reg(rest[0]) && reg(rest[2]):
			return sxyn(0x8, rest[0].Value, rest[2].Value, 0x4)
		case ident(rest[0], "I") && reg(rest[2]):
			return sxyn(0xf, rest[2].Value, 0x1, 0xe)
		}

	case "OR":
		if len(rest) == 3 && reg(rest[0]) && comma(rest[1]) && reg(rest[2]) {
			return sxyn(0x8, rest[0].Value, rest[2].Value, 0x1)
		}

	case "AND":
		if len(rest) == 3 && reg(rest[0]) && comma(rest[1]) && reg(rest[2]) {
			return sxyn(0x8, rest[0].Value, rest[2].Value, 0x2)
		}

	case "XOR":
		if len(rest) == 3 && reg(rest[0]) && comma(rest[1]) && reg(rest[2]) {
			return sxyn(0x8, rest[0].Value, rest[2].Value, 0x3)
		}

	case "SUB":
		if len(rest) == 3 && reg(rest[0]) && comma(rest[1]) && reg(rest[2]) {
			return sxyn(0x8, rest[0].Value, rest[2].Value, 0x5)
		}

	case "SUBN":
		if len(rest) == 3 && reg(rest[0]) && comma(rest[1]) && reg(rest[2]) {
			return sxyn(0x8, rest[0].Value, rest[2].Value, 0x7)
		}

	case "SHR":
		// the single-register form leaves the Y nibble as a copy of X so the
		// instruction behaves the same under either shift quirk
		if len(rest) == 1 && reg(rest[0]) {
			return sxyn(0x8, rest[0].Value, rest[0].Value, 0x6)
		}
		if len(rest) == 3 && reg(rest[0]) && comma(rest[1]) && reg(rest[2]) {
			return sxyn(0x8, rest[0].Value, rest[2].Value, 0x6)
		}

	case "SHL":
		if len(rest) == 1 && reg(rest[0]) {
			return sxyn(0x8, rest[0].Value, rest[0].Value, 0xe)
		}
		if len(rest) == 3 && reg(rest[0]) && comma(rest[1]) && reg(rest[2]) {
			return sxyn(0x8, rest[0].Value, rest[2].Value, 0xe)
		}

	case "RND":
		if len(rest) == 3 && reg(rest[0]) && comma(rest[1]) && num(rest[2]) {
			return sxkk(0xc, rest[0].Value, rest[2].Value)
		}

	case "DRW":
		if len(rest) == 5 && reg(rest[0]) && comma(rest[1]) && reg(rest[2]) && comma(rest[3]) && num(rest[4]) {
			n, err := nibble(rest[4].Value)
			if err != nil {
				return nil, err
			}
			return word(0xd000 | rest[0].Value<<8 | rest[2].Value<<4 | n)
		}

	case "SKP":
		if len(rest) == 1 && reg(rest[0]) {
			return sxyn(0xe, rest[0].Value, 0x9, 0xe)
		}

	case "SKNP":
		if len(rest) == 1 && reg(rest[0]) {
			return sxyn(0xe, rest[0].Value, 0xa, 0x1)
		}

	case "DB":
		if len(rest) == 1 && num(rest[0]) {
			b, err := byt(rest[0].Value)
			if err != nil {
				return nil, err
			}
			return []byte{uint8(b)}, nil
		}

	case "DW":
		if len(rest) == 1 && num(rest[0]) {
			return word(rest[0].Value)
		}
	}

	return nil, curated.Errorf(InvalidLine, line.Num)
}
