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
// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the idea of modes: the first non-flag argument on the
// command line may select a sub-mode, each with its own set of flags.
//
//	gpucanny [-log] HEADLESS -out edges.png photo.jpg
//
// Parsing happens in stages. NewArgs() starts with the full argument list.
// Flags and sub-modes for the current stage are added and Parse() is called.
// If a sub-mode was selected, NewMode() starts the next stage with the
// remaining arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS")
//	log := md.AddBool("log", false, "echo log to stderr")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "HEADLESS":
//		md.NewMode()
//		out := md.AddString("out", "edges.png", "output file")
//		...
//	}
//
// The first sub-mode added is the default and is selected when the argument
// does not name a sub-mode. Sub-modes are case insensitive.
//
// Help is requested with -help or -h as usual and lists the flags and the
// available sub-modes for the current stage.
package modalflag
