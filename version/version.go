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
// Package version reports the version of the program. The version number is
// set at link time with -ldflags "-X github.com/jetsetilly/gpucanny/version.number=v0.1.0".
// Without it the version is taken from the VCS information embedded by the Go
// toolchain, if there is any.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "Gpucanny"

// set by the linker
var number string

// Info describes the build.
type Info struct {
	// "unreleased" if there is VCS information but no version number. "local"
	// if there is neither
	Version string

	// VCS revision, suffixed with "+dirty" if the working tree was modified
	Revision string

	// true if the version number was set by the linker
	Release bool
}

func (i Info) String() string {
	if i.Release {
		return fmt.Sprintf("%s %s", ApplicationName, i.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, i.Version, i.Revision)
}

var info Info

// Version returns the Info for the running binary.
func Version() Info {
	return info
}

func init() {
	info = fromBuildInfo(number)
}

func fromBuildInfo(number string) Info {
	var i Info
	var vcs bool
	var modified bool

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				i.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if i.Revision == "" {
		i.Revision = "no revision information"
	} else if modified {
		i.Revision = fmt.Sprintf("%s+dirty", i.Revision)
	}

	switch {
	case number != "":
		i.Version = number
		i.Release = true
	case vcs:
		i.Version = "unreleased"
	default:
		i.Version = "local"
	}

	return i
}
