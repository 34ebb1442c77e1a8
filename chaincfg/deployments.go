// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"
)

// DeploymentID identifies a consensus rule change deployment.  It is used as
// the index into a DeploymentTable.
type DeploymentID int

// Constants that define the deployment offset in the deployments field of the
// parameters for each deployment.  This is useful to be able to get the details
// of a specific deployment by name.
const (
	// DeploymentTestDummy defines the rule change deployment ID for testing
	// purposes.
	DeploymentTestDummy DeploymentID = iota

	// DeploymentCSV defines the rule change deployment ID for the CSV
	// soft-fork package. The CSV package includes the deployment of BIPS
	// 68, 112, and 113.
	DeploymentCSV

	// NOTE: DefinedDeployments must always come last since it is used to
	// determine how many defined deployments there currently are.

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

// String returns the name of the deployment.
func (id DeploymentID) String() string {
	switch id {
	case DeploymentTestDummy:
		return "testdummy"
	case DeploymentCSV:
		return "csv"
	}
	return fmt.Sprintf("Unknown DeploymentID (%d)", int(id))
}

// MaxDeploymentBit is the highest block version bit a deployment may signal
// on.  The top three bits of the version are reserved for the versionbits
// signature.
const MaxDeploymentBit = 28

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
//
// Two deployments may only share a bit when their voting windows do not
// overlap.  This is not checked here.
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts.
	StartTime uint64

	// ExpireTime is the median block time after which the attempted
	// deployment expires.
	ExpireTime uint64
}

// DeploymentWindow classifies a point in time relative to the voting window
// of a deployment.
type DeploymentWindow int

const (
	// WindowPending means voting has not started and the version bit is
	// ignored.
	WindowPending DeploymentWindow = iota

	// WindowOpen means blocks signalling the version bit count towards
	// the activation threshold.
	WindowOpen

	// WindowExpired means the timeout has passed.  A deployment that did
	// not lock in before this point has failed on the network.
	WindowExpired
)

var windowStrings = map[DeploymentWindow]string{
	WindowPending: "pending",
	WindowOpen:    "open",
	WindowExpired: "expired",
}

// String returns the DeploymentWindow as a human-readable name.
func (w DeploymentWindow) String() string {
	if s := windowStrings[w]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown DeploymentWindow (%d)", int(w))
}

// Window returns where the passed median time falls relative to the voting
// window of the deployment.  The expire time takes precedence over the start
// time so that an entry whose timeout predates its start is never open.
func (d *ConsensusDeployment) Window(medianTime time.Time) DeploymentWindow {
	t := medianTime.Unix()
	if t < 0 {
		return WindowPending
	}
	switch ut := uint64(t); {
	case ut >= d.ExpireTime:
		return WindowExpired
	case ut >= d.StartTime:
		return WindowOpen
	default:
		return WindowPending
	}
}

// DeploymentTable holds the voting window of every defined deployment,
// indexed by DeploymentID.
type DeploymentTable [DefinedDeployments]ConsensusDeployment

// Get returns the deployment details for the passed ID.  The ID must be one
// of the defined deployments.
func (t *DeploymentTable) Get(id DeploymentID) ConsensusDeployment {
	return t[id]
}

// validate checks that every deployment signals on a usable version bit.
func (t *DeploymentTable) validate(net Network) error {
	for id := DeploymentID(0); id < DefinedDeployments; id++ {
		if bit := t[id].BitNumber; bit > MaxDeploymentBit {
			return integrityError(net, "deployments",
				"deployment %v uses bit %d, max is %d", id, bit,
				MaxDeploymentBit)
		}
	}
	return nil
}
