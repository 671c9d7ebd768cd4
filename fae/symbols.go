// This file is part of elf2fae.
//
// elf2fae is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// elf2fae is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with elf2fae.  If not, see <https://www.gnu.org/licenses/>.

package fae

import (
	"debug/elf"

	"github.com/elf2fae/elf2fae/curated"
	"github.com/elf2fae/elf2fae/logger"
)

// symbolTable returns all the symbols in the SymbolTable section.
func symbolTable(ef *elf.File) ([]elf.Symbol, error) {
	sec := ef.Section(SymbolTable)
	if sec == nil {
		return nil, curated.Errorf(NoSection, SymbolTable)
	}
	if sec.Type != elf.SHT_SYMTAB {
		return nil, curated.Errorf(NotSymbolTable, SymbolTable)
	}

	symbols, err := ef.Symbols()
	if err != nil {
		return nil, curated.Errorf("%s: %v", SymbolTable, err)
	}

	return symbols, nil
}

// LookupSymbols returns the values of the named symbols in the same order as
// the names. Each name must match exactly one symbol.
func LookupSymbols(ef *elf.File, names []string) ([]uint64, error) {
	symbols, err := symbolTable(ef)
	if err != nil {
		return nil, err
	}

	values := make([]uint64, 0, len(names))

	for _, name := range names {
		var found []elf.Symbol
		for _, s := range symbols {
			if s.Name == name {
				found = append(found, s)
			}
		}

		switch len(found) {
		case 0:
			return nil, curated.Errorf(NoSymbol, SymbolTable, name)
		case 1:
			values = append(values, found[0].Value)
		default:
			return nil, curated.Errorf(AmbiguousSymbol, SymbolTable, name)
		}
	}

	return values, nil
}

// AppendSymbols appends the values of the named symbols to buf, one word per
// symbol in the order of the names.
func AppendSymbols(buf []byte, ef *elf.File, names []string) ([]byte, error) {
	values, err := LookupSymbols(ef, names)
	if err != nil {
		return nil, curated.Errorf("symbols: %v", err)
	}

	for i, v := range values {
		buf, err = AppendWord(buf, v)
		if err != nil {
			return nil, curated.Errorf("symbols: %s: %v", names[i], err)
		}
		logger.Logf("symbols", "%s = %#08x", names[i], v)
	}

	return buf, nil
}
