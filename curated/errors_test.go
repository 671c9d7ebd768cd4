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

package curated_test

import (
	"fmt"
	"testing"

	"github.com/elf2fae/elf2fae/curated"
	"github.com/elf2fae/elf2fae/test"
)

const testPattern = "test error: %s"
const wrapPattern = "wrapped: %v"

func TestPlainErrors(t *testing.T) {
	e := fmt.Errorf("plain error")
	test.ExpectFailure(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.Is(e, "plain error"))
	test.ExpectFailure(t, curated.Has(e, "plain error"))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestCuratedErrors(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectEquality(t, e.Error(), "test error: foo")

	f := curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))
	test.ExpectEquality(t, f.Error(), "wrapped: test error: foo")
}

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("fae: %v", curated.Errorf("fae: %s", "bad input"))
	test.ExpectEquality(t, e.Error(), "fae: bad input")

	// duplicates deeper in the chain are also removed
	e = curated.Errorf("a: %v", curated.Errorf("b: %v", curated.Errorf("b: %s", "c")))
	test.ExpectEquality(t, e.Error(), "a: b: c")
}
