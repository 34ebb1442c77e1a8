// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

const (
	// genesisCoinbaseBits is the legacy difficulty constant pushed first
	// in the genesis coinbase script.
	genesisCoinbaseBits = 486604799

	// genesisCoinbaseExtraNonce is pushed as a single data byte after the
	// difficulty constant.
	genesisCoinbaseExtraNonce = 4
)

// genesisTimestamp is the message embedded in the coinbase of every Reef
// genesis block.
var genesisTimestamp = []byte("Reef Coin MainNet Test launches on May 6, 2018")

// genesisPubKey is the key the genesis reward is paid to.  The output can
// never be spent.
const genesisPubKey = "040a3ada5ba6280b99f49a92ba47221e6a72af844ec49d0c8bbdae1ec09a4c79b2" +
	"2e42eefe670ae04490556f91780eb57de76493d020c91d0c421c2fa052b28a2b"

// genesisReward is the value of the genesis coinbase output.
const genesisReward = btcutil.Amount(5000 * btcutil.SatoshiPerBitcoin)

// genesisCoinbaseScript returns the unlock script of the genesis coinbase:
// the legacy difficulty constant, the number 4 pushed as data and the raw
// timestamp message.
func genesisCoinbaseScript(message []byte) []byte {
	// The builder only records an error when the script grows past
	// MaxScriptSize in AddInt64 or AddOps, which the two fixed leading
	// pushes cannot do.  AddFullData keeps arbitrarily long messages.
	script, _ := txscript.NewScriptBuilder().
		AddInt64(genesisCoinbaseBits).
		AddOps([]byte{txscript.OP_DATA_1, genesisCoinbaseExtraNonce}).
		AddFullData(message).
		Script()
	return script
}

// GenesisOutputScript returns the pay-to-pubkey script for the passed
// hex-encoded public key.
func GenesisOutputScript(pubKeyHex string) ([]byte, error) {
	pubKey, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return nil, err
	}
	if _, err := btcec.ParsePubKey(pubKey); err != nil {
		return nil, err
	}
	return txscript.NewScriptBuilder().
		AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// BuildGenesisBlock builds the first block of a chain from its literal
// inputs.  The block holds a single coinbase transaction whose unlock script
// embeds message and whose only output pays reward to outputScript.  The
// header has an all-zero previous block hash and the hash of the coinbase as
// its merkle root.
//
// The nonce is used as given; no proof of work search is performed.
func BuildGenesisBlock(message, outputScript []byte, blockTime, nonce, bits uint32,
	version int32, reward btcutil.Amount) *wire.MsgBlock {

	coinbase := wire.NewMsgTx(1)
	coinbase.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{},
			wire.MaxPrevOutIndex),
		SignatureScript: genesisCoinbaseScript(message),
		Sequence:        wire.MaxTxInSequenceNum,
	})
	coinbase.AddTxOut(wire.NewTxOut(int64(reward), outputScript))

	// With a single transaction the merkle tree store holds just the
	// transaction hash, which is also the root.
	merkles := blockchain.BuildMerkleTreeStore(
		[]*btcutil.Tx{btcutil.NewTx(coinbase)}, false,
	)

	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: *merkles[len(merkles)-1],
			Timestamp:  time.Unix(int64(blockTime), 0),
			Bits:       bits,
			Nonce:      nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
}

// headerHash serializes the header and hashes it with powFunc.
func headerHash(header *wire.BlockHeader, powFunc func([]byte) chainhash.Hash) chainhash.Hash {
	var buf bytes.Buffer
	buf.Grow(wire.MaxBlockHeaderPayload)

	// Writes to a bytes.Buffer never fail.
	_ = header.Serialize(&buf)
	return powFunc(buf.Bytes())
}

// verifyGenesis checks the constructed genesis block of p against the
// expected hash and merkle root.
func verifyGenesis(p *Params, wantHash, wantMerkleRoot *chainhash.Hash) error {
	if !p.GenesisHash.IsEqual(wantHash) {
		return integrityError(p.Network, "genesis hash",
			"got %v, want %v", p.GenesisHash, wantHash)
	}
	merkleRoot := &p.GenesisBlock.Header.MerkleRoot
	if !merkleRoot.IsEqual(wantMerkleRoot) {
		return integrityError(p.Network, "genesis merkle root",
			"got %v, want %v", merkleRoot, wantMerkleRoot)
	}
	return nil
}

// genesisInputs holds the per-network literals the genesis block is built
// from.
type genesisInputs struct {
	time    uint32
	nonce   uint32
	bits    uint32
	version int32
}

// buildGenesis builds the genesis block of p from the shared Reef genesis
// message and output together with the network specific inputs.
func buildGenesis(p *Params, in genesisInputs) error {
	outputScript, err := GenesisOutputScript(genesisPubKey)
	if err != nil {
		return integrityError(p.Network, "genesis output script",
			"%v", err)
	}

	p.GenesisBlock = BuildGenesisBlock(genesisTimestamp, outputScript,
		in.time, in.nonce, in.bits, in.version, genesisReward)
	hash := p.BlockHash(&p.GenesisBlock.Header)
	p.GenesisHash = &hash
	p.Consensus.GenesisHash = hash
	return nil
}

// String returns the inputs in the order they are passed to
// BuildGenesisBlock.
func (in genesisInputs) String() string {
	return fmt.Sprintf("time=%d nonce=%d bits=%08x version=%d", in.time,
		in.nonce, in.bits, in.version)
}
