// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"sync"
	"sync/atomic"
)

// constructors holds the constructor of every defined network, indexed by
// Network.
var constructors = [numNetworks]func() (*Params, error){
	MainNet: newMainNetParams,
	TestNet: newTestNetParams,
	RegTest: newRegTestParams,
}

// builtParams memoizes the constructors so that each network is built and
// verified at most once per process.
var builtParams = func() [numNetworks]func() (*Params, error) {
	var built [numNetworks]func() (*Params, error)
	for n, constructor := range constructors {
		built[n] = sync.OnceValues(constructor)
	}
	return built
}()

// ParamsFor returns the parameters of the passed network, constructing and
// verifying them on first use.  A ParameterIntegrityError is returned when
// the hardcoded parameters are inconsistent.
func ParamsFor(net Network) (*Params, error) {
	if net >= numNetworks {
		return nil, &UnknownNetworkError{Name: net.String()}
	}
	return builtParams[net]()
}

// Registry holds the network selected for the process.  The zero value has no
// network selected and is ready for use.
//
// Selection is expected to happen once during startup, before the parameters
// are read elsewhere.  A later Select replaces the active network.
type Registry struct {
	active atomic.Pointer[Params]
}

// Select makes the network identified by name the active network.  An
// UnknownNetworkError is returned for names other than main, test and
// regtest, and a ParameterIntegrityError when the network's parameters fail
// their startup checks.
func (r *Registry) Select(name string) error {
	params, err := r.Lookup(name)
	if err != nil {
		return err
	}
	r.active.Store(params)
	log.Infof("Selected %s network (genesis %v)", params.Name,
		params.GenesisHash)
	return nil
}

// Active returns the parameters of the selected network.  A
// ParameterIntegrityError is returned when no network has been selected.
func (r *Registry) Active() (*Params, error) {
	params := r.active.Load()
	if params == nil {
		return nil, &ParameterIntegrityError{
			Field:       "active network",
			Description: "parameters read before a network was selected",
		}
	}
	return params, nil
}

// MustActive returns the parameters of the selected network and panics when
// no network has been selected.
func (r *Registry) MustActive() *Params {
	params, err := r.Active()
	if err != nil {
		panic(err)
	}
	return params
}

// Lookup returns the parameters of the network identified by name without
// changing the active network.
func (r *Registry) Lookup(name string) (*Params, error) {
	net, err := ParseNetwork(name)
	if err != nil {
		return nil, err
	}
	return ParamsFor(net)
}

// defaultRegistry is the registry used by the package-level functions.
var defaultRegistry Registry

// SelectParams selects the active network of the process.  See
// Registry.Select.
func SelectParams(name string) error {
	return defaultRegistry.Select(name)
}

// ActiveParams returns the parameters of the network selected with
// SelectParams.  See Registry.Active.
func ActiveParams() (*Params, error) {
	return defaultRegistry.Active()
}

// LookupParams returns the parameters of the network identified by name
// without changing the selection.  See Registry.Lookup.
func LookupParams(name string) (*Params, error) {
	return defaultRegistry.Lookup(name)
}
