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
// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error but allow the test to continue.
// The Demand*() functions are fatal to the test on failure. Demand functions
// are useful when the values being tested are used in further tests and so
// must be correct. For example, testing that the lengths of two slices are
// equal before iterating over them in unison.
//
// Success and failure depend on the type of the value being tested:
//
//	bool -> true is success
//	error -> nil is success
//
// An untyped nil is considered a success. This is because of how errors
// usually work (nil to indicate no error).
//
// The optional tags arguments are prepended to any failure message and are
// useful for identifying which iteration of a loop has failed.
package test
