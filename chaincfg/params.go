// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a Reef block can
	// have for the main network.  It is the value 0x0fffff << 216.
	mainPowLimit = new(big.Int).Lsh(big.NewInt(0x0fffff), 216)

	// testNetPowLimit is the highest proof of work value a Reef block can
	// have for the test network.  It is the value 0x0fffff << 216.
	testNetPowLimit = new(big.Int).Lsh(big.NewInt(0x0fffff), 216)

	// regressionPowLimit is the highest proof of work value a Reef block
	// can have for the regression test network.  It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// ErrNoAuthorityKey describes an attempt to parse an authority key the
// network does not define.
var ErrNoAuthorityKey = errors.New("network does not define the authority key")

// Network identifies one of the defined Reef networks.
type Network uint8

const (
	// MainNet is the main Reef network.
	MainNet Network = iota

	// TestNet is the public test network.
	TestNet

	// RegTest is the regression test network.
	RegTest

	// NOTE: numNetworks must always come last.
	numNetworks
)

// String returns the identifier of the network as used for selection.
func (n Network) String() string {
	switch n {
	case MainNet:
		return "main"
	case TestNet:
		return "test"
	case RegTest:
		return "regtest"
	}
	return fmt.Sprintf("Unknown Network (%d)", uint8(n))
}

// ParseNetwork returns the network identified by name.  An
// UnknownNetworkError is returned for any name other than main, test and
// regtest.
func ParseNetwork(name string) (Network, error) {
	for n := Network(0); n < numNetworks; n++ {
		if n.String() == name {
			return n, nil
		}
	}
	return 0, &UnknownNetworkError{Name: name}
}

// Params defines a Reef network by its parameters.  These parameters may be
// used by Reef applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// A Params is immutable once its constructor returned and may be read
// concurrently without synchronization.
type Params struct {
	// Network is the kind of network these parameters describe.
	Network Network

	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// MaxTipAge is the age of the best block after which the node no
	// longer considers itself synced.
	MaxTipAge time.Duration

	// PruneAfterHeight is the height below which block files are never
	// pruned.
	PruneAfterHeight int32

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are the peers used when no DNS seed answers.
	FixedSeeds []FixedSeed

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// PoWFunction hashes a serialized block header.  The result is both
	// the proof of work and the block hash.
	PoWFunction func(b []byte) chainhash.Hash

	// Consensus holds the consensus rules of the network.
	Consensus ConsensusParams

	// Checkpoints holds the hardcoded checkpoints and sync statistics.
	Checkpoints CheckpointTable

	// MiningRequiresPeers defines whether mining needs at least one
	// connected peer.
	MiningRequiresPeers bool

	// DefaultConsistencyChecks defines whether expensive internal
	// consistency checks run by default.
	DefaultConsistencyChecks bool

	// RequireStandard defines whether non-standard transactions are
	// rejected from the mempool.
	RequireStandard bool

	// MineBlocksOnDemand defines whether blocks can be generated on request
	// without a proof of work search.
	MineBlocksOnDemand bool

	// TestnetToBeDeprecatedFieldRPC keeps the deprecated testnet field in
	// RPC results.
	TestnetToBeDeprecatedFieldRPC bool

	// PoolMaxTransactions is the maximum number of transactions considered
	// in a single mixing pool.
	PoolMaxTransactions int

	// FulfilledRequestExpireTime is how long a fulfilled network request
	// is remembered.
	FulfilledRequestExpireTime time.Duration

	// Hex-encoded public keys of the alert, spork and masternode payment
	// authorities.  An empty string means the network has no such key.
	AlertPubKey              string
	SporkPubKey              string
	MasternodePaymentsPubKey string

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType uint32
}

// MessageStart returns the four bytes that start every message on the
// network, in wire order.
func (p *Params) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(p.Net))
	return start
}

// BlockHash returns the hash of the block header using the proof of work
// function of the network.
//
// NOTE: wire.BlockHeader.BlockHash is the double sha256 of the header and is
// not the block hash on Reef networks.
func (p *Params) BlockHash(header *wire.BlockHeader) chainhash.Hash {
	return headerHash(header, p.PoWFunction)
}

// parseAuthorityKey parses a hex-encoded secp256k1 authority key.
func parseAuthorityKey(keyHex string) (*btcec.PublicKey, error) {
	if keyHex == "" {
		return nil, ErrNoAuthorityKey
	}
	b, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, err
	}
	return btcec.ParsePubKey(b)
}

// AlertKey returns the parsed alert authority key.
func (p *Params) AlertKey() (*btcec.PublicKey, error) {
	return parseAuthorityKey(p.AlertPubKey)
}

// SporkKey returns the parsed spork authority key.
func (p *Params) SporkKey() (*btcec.PublicKey, error) {
	return parseAuthorityKey(p.SporkPubKey)
}

// MasternodePaymentsKey returns the parsed masternode payments authority
// key.
func (p *Params) MasternodePaymentsKey() (*btcec.PublicKey, error) {
	return parseAuthorityKey(p.MasternodePaymentsPubKey)
}

// validate runs the startup integrity checks that do not involve the genesis
// block.
func (p *Params) validate() error {
	if err := p.Consensus.validate(p.Network); err != nil {
		return err
	}
	if err := p.Checkpoints.validate(p.Network); err != nil {
		return err
	}

	keys := []struct {
		field string
		value string
	}{
		{"alert key", p.AlertPubKey},
		{"spork key", p.SporkPubKey},
		{"masternode payments key", p.MasternodePaymentsPubKey},
	}
	for _, key := range keys {
		if key.value == "" {
			continue
		}
		if _, err := parseAuthorityKey(key.value); err != nil {
			return integrityError(p.Network, key.field, "%v", err)
		}
	}
	return nil
}

// finalize builds the genesis block of p, asserts it against the expected
// hash and merkle root and runs the remaining integrity checks.
func finalize(p *Params, in genesisInputs, wantHash, wantMerkleRoot *chainhash.Hash) (*Params, error) {
	if err := buildGenesis(p, in); err != nil {
		return nil, err
	}
	log.Debugf("Built %s genesis block %v (%v)", p.Network, p.GenesisHash,
		in)

	if err := verifyGenesis(p, wantHash, wantMerkleRoot); err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes.  Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

// newBigFromHex converts the passed big-endian hex string into a big.Int.  It
// panics on an error for the same reason as newHashFromStr.
func newBigFromHex(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("invalid hex in source file: " + hexStr)
	}
	return n
}
