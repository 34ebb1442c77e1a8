// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// genesisCoinbaseTxHex is the serialized coinbase transaction shared by the
// genesis blocks of all Reef networks.
const genesisCoinbaseTxHex = "01000000010000000000000000000000000000000000000000000000000000000000000000ffffffff" +
	"3604ffff001d01042e5265656620436f696e204d61696e4e65742054657374206c61756e63686573206f6e204d617920362c2032303138" +
	"ffffffff010088526a740000004341040a3ada5ba6280b99f49a92ba47221e6a72af844ec49d0c8bbdae1ec09a4c79b22e42eefe670ae0" +
	"4490556f91780eb57de76493d020c91d0c421c2fa052b28a2bac00000000"

// TestGenesisBlock tests the genesis block of every network against the
// hardcoded hash and merkle root.
func TestGenesisBlock(t *testing.T) {
	tests := []struct {
		net        Network
		hash       string
		merkleRoot string
		timestamp  int64
		nonce      uint32
		bits       uint32
	}{
		{
			net:        MainNet,
			hash:       "0000010e08cdaff5220e3db48752673b1b05b08129a2c8121e88350d6d5ef0ef",
			merkleRoot: "5441361edd31ed9073d5efc41f2ec32154fbee009d19c7ba32e6f25ff1165a52",
			timestamp:  1526191846,
			nonce:      4585107,
			bits:       0x1e0ffff0,
		},
		{
			net:        TestNet,
			hash:       "000000bcc46441623bf58ecd450460e8ad9465c018c0bcbb6f4d1ceef00f8d5c",
			merkleRoot: "5441361edd31ed9073d5efc41f2ec32154fbee009d19c7ba32e6f25ff1165a52",
			timestamp:  1526191746,
			nonce:      6892045,
			bits:       0x1e0ffff0,
		},
		{
			net:        RegTest,
			hash:       "00000f06f0373d435738e2be9b7e042e004718ad9fce41b4f3ec8bf99284925f",
			merkleRoot: "5441361edd31ed9073d5efc41f2ec32154fbee009d19c7ba32e6f25ff1165a52",
			timestamp:  1526191646,
			nonce:      824823,
			bits:       0x1e146cc0,
		},
	}

	for _, test := range tests {
		params, err := ParamsFor(test.net)
		require.NoError(t, err, test.net.String())

		header := &params.GenesisBlock.Header
		require.Equal(t, test.hash, params.GenesisHash.String(), test.net.String())
		require.Equal(t, test.hash, params.Consensus.GenesisHash.String(), test.net.String())
		require.Equal(t, test.merkleRoot, header.MerkleRoot.String(), test.net.String())
		require.Equal(t, test.timestamp, header.Timestamp.Unix(), test.net.String())
		require.Equal(t, test.nonce, header.Nonce, test.net.String())
		require.Equal(t, test.bits, header.Bits, test.net.String())
		require.Equal(t, int32(1), header.Version, test.net.String())
		require.Equal(t, chainhash.Hash{}, header.PrevBlock, test.net.String())

		blockHash := params.BlockHash(header)
		require.True(t, params.GenesisHash.IsEqual(&blockHash), test.net.String())

		require.Len(t, params.GenesisBlock.Transactions, 1, test.net.String())
		coinbase := params.GenesisBlock.Transactions[0]
		require.Equal(t, header.MerkleRoot, coinbase.TxHash(), test.net.String())
		require.Equal(t, int64(5000*1e8), coinbase.TxOut[0].Value, test.net.String())
	}
}

// TestGenesisCoinbaseSerialization ensures the genesis coinbase serializes to
// the known transaction bytes and that its double sha256 is the merkle root.
func TestGenesisCoinbaseSerialization(t *testing.T) {
	params, err := ParamsFor(MainNet)
	require.NoError(t, err)

	var buf bytes.Buffer
	coinbase := params.GenesisBlock.Transactions[0]
	require.NoError(t, coinbase.Serialize(&buf))

	want, err := hex.DecodeString(genesisCoinbaseTxHex)
	require.NoError(t, err)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("genesis coinbase mismatch - got %v, want %v",
			spew.Sdump(buf.Bytes()), spew.Sdump(want))
	}

	require.Equal(t, params.GenesisBlock.Header.MerkleRoot,
		chainhash.DoubleHashH(want))
}

// TestGenesisCoinbaseScript ensures the unlock script pushes the number 4 as a
// data byte rather than as a small integer opcode.
func TestGenesisCoinbaseScript(t *testing.T) {
	script := genesisCoinbaseScript(genesisTimestamp)

	want := []byte{txscript.OP_DATA_4, 0xff, 0xff, 0x00, 0x1d,
		txscript.OP_DATA_1, 0x04, byte(len(genesisTimestamp))}
	want = append(want, genesisTimestamp...)
	require.Equal(t, want, script)

	// Messages past 75 bytes need a pushdata opcode.
	long := bytes.Repeat([]byte{'r'}, 100)
	script = genesisCoinbaseScript(long)
	require.Equal(t, byte(txscript.OP_PUSHDATA1), script[7])
	require.Equal(t, byte(len(long)), script[8])
	require.Equal(t, long, script[9:])
}

// TestGenesisOutputScript tests the pay-to-pubkey output script.
func TestGenesisOutputScript(t *testing.T) {
	script, err := GenesisOutputScript(genesisPubKey)
	require.NoError(t, err)
	require.Len(t, script, 67)
	require.Equal(t, byte(txscript.OP_DATA_65), script[0])
	require.Equal(t, byte(txscript.OP_CHECKSIG), script[66])
	require.Equal(t, txscript.PubKeyTy, txscript.GetScriptClass(script))

	_, err = GenesisOutputScript("zz")
	require.Error(t, err)

	// Valid hex that is not a point on the curve.
	_, err = GenesisOutputScript("04" + hex.EncodeToString(make([]byte, 64)))
	require.Error(t, err)
}

// TestBuildGenesisDeterministic ensures building the same network twice gives
// byte identical blocks.
func TestBuildGenesisDeterministic(t *testing.T) {
	for _, constructor := range constructors {
		a, err := constructor()
		require.NoError(t, err)
		b, err := constructor()
		require.NoError(t, err)

		var bufA, bufB bytes.Buffer
		require.NoError(t, a.GenesisBlock.Serialize(&bufA))
		require.NoError(t, b.GenesisBlock.Serialize(&bufB))
		require.Equal(t, bufA.Bytes(), bufB.Bytes(), a.Name)
		require.Equal(t, a.GenesisHash, b.GenesisHash, a.Name)
	}
}

// TestVerifyGenesisMismatch ensures a genesis block built from altered inputs
// is reported as an integrity failure.
func TestVerifyGenesisMismatch(t *testing.T) {
	p := &Params{Network: MainNet, PoWFunction: X16SHash}
	err := buildGenesis(p, genesisInputs{
		time:    1526191846,
		nonce:   4585108,
		bits:    0x1e0ffff0,
		version: 1,
	})
	require.NoError(t, err)

	err = verifyGenesis(p, mainNetGenesisHash, genesisMerkleRoot)
	var integrityErr *ParameterIntegrityError
	require.True(t, errors.As(err, &integrityErr))
	require.Equal(t, "main", integrityErr.Network)
	require.Equal(t, "genesis hash", integrityErr.Field)

	// The merkle root only depends on the coinbase and is checked once the
	// hash matches.
	err = verifyGenesis(p, p.GenesisHash, mainNetGenesisHash)
	require.True(t, errors.As(err, &integrityErr))
	require.Equal(t, "genesis merkle root", integrityErr.Field)

	require.NoError(t, verifyGenesis(p, p.GenesisHash, genesisMerkleRoot))
}

// TestBlockHashUsesPoWFunction ensures the block hash comes from the network's
// proof of work function and not from the double sha256 of the header.
func TestBlockHashUsesPoWFunction(t *testing.T) {
	params, err := ParamsFor(MainNet)
	require.NoError(t, err)

	header := params.GenesisBlock.Header
	require.NotEqual(t, header.BlockHash(), *params.GenesisHash)

	var calls int
	p := &Params{PoWFunction: func(b []byte) chainhash.Hash {
		calls++
		require.Len(t, b, 80)
		return chainhash.DoubleHashH(b)
	}}
	require.Equal(t, header.BlockHash(), p.BlockHash(&header))
	require.Equal(t, 1, calls)
}
