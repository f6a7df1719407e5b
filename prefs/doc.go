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
// Package prefs facilitates the storage of preference values on disk. Values
// are represented by the Bool, Int and Float types. Each type can be given a
// hook function that is called before and after the value is set, allowing
// values to be validated or reacted to.
//
// Values are associated with a Disk instance using Disk.Add(), which takes a
// unique key. The Disk file is human readable. Each line is a key/value pair
// separated by the " :: " sub-string:
//
//	canny.threshold.low :: 0.100
//	canny.threshold.high :: 0.300
//
// Entries in the file that are not known to a Disk instance are preserved
// when that Disk is saved. This means that more than one Disk instance can
// share the same file.
//
// Preference values can be overridden from the command line. The
// PushCommandLineStack() function parses a string of key/value pairs and any
// subsequent call to Disk.Add() for a matching key will take the value from
// the top of the stack rather than from disk.
package prefs
