// This file is part of Gpucanny.
//
// Gpucanny is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gpucanny is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gpucanny.  If not, see <https://www.gnu.org/licenses/>.
// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is what distinguishes one curated error from another. Patterns
// that need to be tested for should be stored as an exported const string,
// suitably named and commented:
//
//	const CompileError = "compile error: %s: %s"
//
//	err := curated.Errorf(CompileError, "blur.frag", log)
//	if curated.Is(err, CompileError) {
//		...
//	}
//
// The Has() function is similar to Is() but checks if the pattern occurs
// somewhere in the error chain. Curated errors that are passed as placeholder
// values are part of the chain:
//
//	e := curated.Errorf(CompileError, "blur.frag", log)
//	f := curated.Errorf("pipeline: %v", e)
//
//	curated.Is(f, CompileError)  // false
//	curated.Has(f, CompileError) // true
//
// The Error() function normalises the message by removing duplicate adjacent
// parts of the chain, where parts are separated by the sub-string ": ". This
// means that wrapping an error with a pattern that begins with the same word
// as the wrapped error does not result in a stuttering message.
package curated
