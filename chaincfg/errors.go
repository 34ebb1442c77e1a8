// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// UnknownNetworkError describes an attempt to select or look up a network by
// a name that does not identify one of the defined networks.  It is a
// configuration error and the caller may retry with a valid name.
type UnknownNetworkError struct {
	Name string
}

// Error satisfies the error interface and prints human-readable errors.
func (e *UnknownNetworkError) Error() string {
	return fmt.Sprintf("unknown network %q (valid networks: %s, %s, %s)",
		e.Name, MainNet, TestNet, RegTest)
}

// ParameterIntegrityError describes a violated startup invariant of the chain
// parameters, such as a genesis block that does not hash to its hardcoded
// value, or a read of the active network before one was selected.  These
// indicate a defect in the build or in the program's initialization order and
// the process must not continue with the affected parameters.
type ParameterIntegrityError struct {
	// Network is the network whose parameters failed the check.  It is
	// empty when no network is involved.
	Network string

	// Field names the parameter that failed the check.
	Field string

	// Description is a human-readable explanation of the failure.
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e *ParameterIntegrityError) Error() string {
	if e.Network == "" {
		return fmt.Sprintf("parameter integrity: %s: %s", e.Field,
			e.Description)
	}
	return fmt.Sprintf("parameter integrity (%s): %s: %s", e.Network,
		e.Field, e.Description)
}

// integrityError creates a ParameterIntegrityError for the given network.
func integrityError(net Network, field, format string, args ...interface{}) error {
	return &ParameterIntegrityError{
		Network:     net.String(),
		Field:       field,
		Description: fmt.Sprintf(format, args...),
	}
}
