// Copyright (C) 2025 Mitchell Amasia
//
// This file is part of plaza-api-clients.
//
// plaza-api-clients is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// plaza-api-clients is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with plaza-api-clients.  If not, see <https://www.gnu.org/licenses/>.

// Package plaza provides version information for plaza-api-clients and the
// marketplace API revisions it targets.
package plaza

const (
	// Version is the current version of plaza-api-clients
	Version = "1.0.0"

	// PlazaAPIVersion is the marketplace Plaza API revision this library targets
	PlazaAPIVersion = "v2.1"

	// SigningScheme is the request-signing scheme implemented by pkg/signer
	// and expected by pkg/verifier
	SigningScheme = "hmac-sha256"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	LibraryVersion  string
	PlazaAPIVersion string
	SigningScheme   string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		LibraryVersion:  Version,
		PlazaAPIVersion: PlazaAPIVersion,
		SigningScheme:   SigningScheme,
	}
}
