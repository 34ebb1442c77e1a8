// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// reefparams describes the chain parameters of a Reef network.  It selects the
// network the way the node does, verifies the hardcoded genesis block and
// prints the resulting profile.  Block hashes can be checked against the
// network's checkpoints and public keys encoded as addresses of the network.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/davecgh/go-spew/spew"
	"github.com/reefcore/reefd/blockchain"
	"github.com/reefcore/reefd/chaincfg"
)

// errCheckpointMismatch is returned when a block hash passed with --checkpoint
// differs from the network's checkpoint at the same height.
var errCheckpointMismatch = errors.New("block hash does not match checkpoint")

// dumpConfig is the spew configuration used by --dump.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// reefParamsMain is the real main function for reefparams.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func reefParamsMain() error {
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	log.Infof("Version %s", version())

	if err := chaincfg.SelectParams(cfg.Network); err != nil {
		log.Errorf("Unable to select network: %v", err)
		return err
	}
	params, err := chaincfg.ActiveParams()
	if err != nil {
		log.Errorf("%v", err)
		return err
	}

	return run(os.Stdout, cfg, params, time.Now())
}

// run writes the profile of params to w followed by the results of the
// checkpoint and address requests in cfg.
func run(w io.Writer, cfg *config, params *chaincfg.Params, now time.Time) error {
	if err := writeProfile(w, params, now); err != nil {
		return err
	}

	var mismatch bool
	for _, checkpoint := range cfg.checkpoints {
		result := params.Checkpoints.Verify(checkpoint.Height,
			checkpoint.Hash)
		fmt.Fprintf(w, "Checkpoint %d %v: %v\n", checkpoint.Height,
			checkpoint.Hash, result)
		if result == chaincfg.CheckpointMismatch {
			mismatch = true
		}
	}

	for _, pubKeyHex := range cfg.PubKeys {
		addr, err := pubKeyAddress(params, pubKeyHex)
		if err != nil {
			return fmt.Errorf("unable to encode public key %q: %w",
				pubKeyHex, err)
		}
		fmt.Fprintf(w, "Address of %s: %s\n", pubKeyHex, addr)
	}

	if cfg.Dump {
		dumpConfig.Fdump(w, params)
	}

	if mismatch {
		return errCheckpointMismatch
	}
	return nil
}

// pubKeyAddress returns the pay-to-pubkey-hash address of the hex-encoded
// public key on the passed network.
func pubKeyAddress(params *chaincfg.Params, pubKeyHex string) (string, error) {
	pubKey, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return "", err
	}
	addr, err := btcutil.NewAddressPubKey(pubKey, params.BtcdParams())
	if err != nil {
		return "", err
	}
	return addr.AddressPubKeyHash().EncodeAddress(), nil
}

// writeProfile writes a human-readable summary of params to w.  Deployment
// windows are classified at now.
func writeProfile(w io.Writer, params *chaincfg.Params, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	c := &params.Consensus
	genesis := &params.GenesisBlock.Header

	powResult := "ok"
	if err := blockchain.CheckProofOfWork(params, genesis); err != nil {
		powResult = err.Error()
	}
	retargeting := "enabled"
	if c.NoRetargeting {
		retargeting = "disabled"
	}

	fmt.Fprintf(tw, "Network:\t%s\n", params.Name)
	fmt.Fprintf(tw, "Message start:\t%x\n", params.MessageStart())
	fmt.Fprintf(tw, "Default port:\t%s\n", params.DefaultPort)
	fmt.Fprintf(tw, "Genesis hash:\t%v\n", params.GenesisHash)
	fmt.Fprintf(tw, "Genesis merkle root:\t%v\n", genesis.MerkleRoot)
	fmt.Fprintf(tw, "Genesis time:\t%v\n", genesis.Timestamp.UTC())
	fmt.Fprintf(tw, "Genesis bits:\t%08x\n", genesis.Bits)
	fmt.Fprintf(tw, "Genesis proof of work:\t%s\n", powResult)
	fmt.Fprintf(tw, "Genesis work:\t%v\n", blockchain.CalcWork(genesis.Bits))
	fmt.Fprintf(tw, "Proof of work limit:\t%08x\n", c.PowLimitBits)
	fmt.Fprintf(tw, "Target timespan:\t%v\n", c.TargetTimespan)
	fmt.Fprintf(tw, "Target spacing:\t%v\n", c.TargetTimePerBlock)
	fmt.Fprintf(tw, "Blocks per retarget:\t%d\n", c.BlocksPerRetarget())
	fmt.Fprintf(tw, "Retargeting:\t%s\n", retargeting)
	fmt.Fprintf(tw, "Minimum difficulty blocks:\t%t\n", c.ReduceMinDifficulty)
	fmt.Fprintf(tw, "Subsidy reduction interval:\t%d\n", c.SubsidyReductionInterval)
	fmt.Fprintf(tw, "BIP0034 height:\t%d\n", c.BIP0034Height)
	fmt.Fprintf(tw, "Minimum chain work:\t%x\n", c.MinimumChainWork)
	fmt.Fprintf(tw, "Assume valid:\t%v\n", c.AssumeValid)
	fmt.Fprintf(tw, "Rule change threshold:\t%d/%d\n",
		c.RuleChangeActivationThreshold, c.MinerConfirmationWindow)
	for id := chaincfg.DeploymentID(0); id < chaincfg.DefinedDeployments; id++ {
		d := c.Deployments.Get(id)
		fmt.Fprintf(tw, "Deployment %v:\tbit %d, %d-%d (%v)\n", id,
			d.BitNumber, d.StartTime, d.ExpireTime, d.Window(now))
	}

	for _, seed := range params.DNSSeeds {
		fmt.Fprintf(tw, "DNS seed %s:\t%v\n", seed.Name, seed)
	}
	for _, seed := range params.FixedSeeds {
		fmt.Fprintf(tw, "Fixed seed:\t%v\n", seed)
	}
	if latest := params.Checkpoints.LatestCheckpoint(); latest != nil {
		fmt.Fprintf(tw, "Checkpoints:\t%d (latest %d %v)\n",
			len(params.Checkpoints.Checkpoints), latest.Height,
			latest.Hash)
	}

	fmt.Fprintf(tw, "P2PKH address version:\t%d\n", params.PubKeyHashAddrID)
	fmt.Fprintf(tw, "P2SH address version:\t%d\n", params.ScriptHashAddrID)
	fmt.Fprintf(tw, "Private key version:\t%d\n", params.PrivateKeyID)
	fmt.Fprintf(tw, "Extended keys:\t%x/%x\n", params.HDPrivateKeyID,
		params.HDPublicKeyID)
	fmt.Fprintf(tw, "BIP44 coin type:\t%d\n", params.HDCoinType)

	keys := []struct {
		name  string
		value string
	}{
		{"Alert key", params.AlertPubKey},
		{"Spork key", params.SporkPubKey},
		{"Masternode payments key", params.MasternodePaymentsPubKey},
	}
	for _, key := range keys {
		value := key.value
		if value == "" {
			value = "none"
		}
		fmt.Fprintf(tw, "%s:\t%s\n", key.name, value)
	}

	return tw.Flush()
}

func main() {
	// Work around defer not working after os.Exit()
	if err := reefParamsMain(); err != nil {
		os.Exit(1)
	}
}
