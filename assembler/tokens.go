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

package assembler

import (
	"strconv"
	"strings"

	"github.com/gopher8/gopher8/curated"
)

// TokenType classifies a token of assembly source.
type TokenType int

// List of valid TokenType values.
const (
	// an identifier ending with a colon. the colon is stripped from the text.
	TokenLabel TokenType = iota

	// a mnemonic, a special operand (I, DT, ST, K, F, B, [I]) or a label
	// reference.
	TokenIdentifier

	// one of the V registers. the register number is in the value field.
	TokenRegister

	// a numeric literal. decimal, or hexadecimal with a # prefix.
	TokenNumber

	TokenComma
)

// Token is one token of assembly source.
type Token struct {
	Type  TokenType
	Text  string
	Value uint16
}

// Line is one source line tokenized. Empty and comment-only lines produce a
// Line with no tokens, keeping line numbers in errors aligned with the file.
type Line struct {
	Tokens []Token
	Num    int
}

// Sentinal errors raised by the tokenizer.
const (
	InvalidNumber   = "assembler: line %d: invalid number (%s)"
	InvalidRegister = "assembler: line %d: invalid register (%s)"
	InvalidToken    = "assembler: line %d: invalid token (%s)"
)

// isRegister matches the V0 to VF register names, case insensitively.
func isRegister(field string) (uint8, bool) {
	if len(field) != 2 || (field[0] != 'V' && field[0] != 'v') {
		return 0, false
	}
	v, err := strconv.ParseUint(field[1:], 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

// tokenize the assembly source into lines of tokens.
func tokenize(src string) ([]Line, error) {
	lines := make([]Line, 0, strings.Count(src, "\n")+1)

	for num, raw := range strings.Split(src, "\n") {
		num++ // editors number from one

		if idx := strings.IndexRune(raw, ';'); idx >= 0 {
			raw = raw[:idx]
		}

		// commas are token separators in their own right
		raw = strings.ReplaceAll(raw, ",", " , ")

		line := Line{Num: num}

		for _, field := range strings.Fields(raw) {
			switch {
			case field == ",":
				line.Tokens = append(line.Tokens, Token{Type: TokenComma})

			case strings.HasSuffix(field, ":"):
				name := strings.TrimSuffix(field, ":")
				if name == "" {
					return nil, curated.Errorf(InvalidToken, num, field)
				}
				line.Tokens = append(line.Tokens, Token{Type: TokenLabel, Text: name})

			case strings.HasPrefix(field, "#"):
				v, err := strconv.ParseUint(field[1:], 16, 16)
				if err != nil {
					return nil, curated.Errorf(InvalidNumber, num, field)
				}
				line.Tokens = append(line.Tokens, Token{Type: TokenNumber, Value: uint16(v)})

			case field[0] >= '0' && field[0] <= '9':
				v, err := strconv.ParseUint(field, 10, 16)
				if err != nil {
					return nil, curated.Errorf(InvalidNumber, num, field)
				}
				line.Tokens = append(line.Tokens, Token{Type: TokenNumber, Value: uint16(v)})

			default:
				if v, ok := isRegister(field); ok {
					line.Tokens = append(line.Tokens, Token{Type: TokenRegister, Value: uint16(v)})
					continue
				}
				// case is preserved. mnemonics are matched case
				// insensitively by the assembler; label references are not
				line.Tokens = append(line.Tokens, Token{Type: TokenIdentifier, Text: field})
			}
		}

		lines = append(lines, line)
	}

	return lines, nil
}
