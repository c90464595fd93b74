package main

import (
	"encoding/hex"
	"fmt"

	"kasparule.dev/isolation/externalapi"
)

// The wire types below mirror the domain types in externalapi but with
// hex-string fields, matching the request/response JSON convention this
// tool's ancestor CLI used for hash- and script-shaped fields.

type blockJSON struct {
	Header       headerJSON        `json:"header"`
	Transactions []transactionJSON `json:"transactions"`
}

type headerJSON struct {
	HashMerkleRoot string `json:"hash_merkle_root"`
	DAAScore       uint64 `json:"daa_score"`
}

type outpointJSON struct {
	TransactionID string `json:"transaction_id"`
	Index         uint32 `json:"index"`
}

type inputJSON struct {
	PreviousOutpoint outpointJSON `json:"previous_outpoint"`
	SignatureScript  string       `json:"signature_script_hex"`
	Sequence         uint64       `json:"sequence"`
	SigOpCount       byte         `json:"sig_op_count"`
}

type scriptPublicKeyJSON struct {
	Version uint16 `json:"version"`
	Script  string `json:"script_hex"`
}

type outputJSON struct {
	Value           uint64              `json:"value"`
	ScriptPublicKey scriptPublicKeyJSON `json:"script_public_key"`
}

type transactionJSON struct {
	Version      uint16       `json:"version"`
	Inputs       []inputJSON  `json:"inputs"`
	Outputs      []outputJSON `json:"outputs"`
	LockTime     uint64       `json:"lock_time"`
	SubnetworkID string       `json:"subnetwork_id"`
	Gas          uint64       `json:"gas"`
	Payload      string       `json:"payload_hex"`
	CommittedMass uint64      `json:"committed_mass"`
}

func (b *blockJSON) toDomain() (*externalapi.Block, error) {
	root, err := decodeHash(b.Header.HashMerkleRoot)
	if err != nil {
		return nil, fmt.Errorf("header.hash_merkle_root: %w", err)
	}

	txs := make([]*externalapi.Transaction, len(b.Transactions))
	for i, txj := range b.Transactions {
		tx, err := txj.toDomain()
		if err != nil {
			return nil, fmt.Errorf("transactions[%d]: %w", i, err)
		}
		txs[i] = tx
	}

	return &externalapi.Block{
		Header: &externalapi.BlockHeader{
			HashMerkleRoot: root,
			DAAScore:       b.Header.DAAScore,
		},
		Transactions: txs,
	}, nil
}

func (t *transactionJSON) toDomain() (*externalapi.Transaction, error) {
	subnetworkID, err := decodeSubnetworkID(t.SubnetworkID)
	if err != nil {
		return nil, fmt.Errorf("subnetwork_id: %w", err)
	}
	payload, err := hex.DecodeString(t.Payload)
	if err != nil {
		return nil, fmt.Errorf("payload_hex: %w", err)
	}

	inputs := make([]*externalapi.TransactionInput, len(t.Inputs))
	for i, inj := range t.Inputs {
		in, err := inj.toDomain()
		if err != nil {
			return nil, fmt.Errorf("inputs[%d]: %w", i, err)
		}
		inputs[i] = in
	}

	outputs := make([]*externalapi.TransactionOutput, len(t.Outputs))
	for i, outj := range t.Outputs {
		out, err := outj.toDomain()
		if err != nil {
			return nil, fmt.Errorf("outputs[%d]: %w", i, err)
		}
		outputs[i] = out
	}

	return &externalapi.Transaction{
		Version:       t.Version,
		Inputs:        inputs,
		Outputs:       outputs,
		LockTime:      t.LockTime,
		SubnetworkID:  subnetworkID,
		Gas:           t.Gas,
		Payload:       payload,
		CommittedMass: t.CommittedMass,
	}, nil
}

func (in *inputJSON) toDomain() (*externalapi.TransactionInput, error) {
	prevTxID, err := decodeHash(in.PreviousOutpoint.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("previous_outpoint.transaction_id: %w", err)
	}
	sigScript, err := hex.DecodeString(in.SignatureScript)
	if err != nil {
		return nil, fmt.Errorf("signature_script_hex: %w", err)
	}
	return &externalapi.TransactionInput{
		PreviousOutpoint: externalapi.TransactionOutpoint{
			TransactionID: prevTxID,
			Index:         in.PreviousOutpoint.Index,
		},
		SignatureScript: sigScript,
		Sequence:        in.Sequence,
		SigOpCount:      in.SigOpCount,
	}, nil
}

func (out *outputJSON) toDomain() (*externalapi.TransactionOutput, error) {
	script, err := hex.DecodeString(out.ScriptPublicKey.Script)
	if err != nil {
		return nil, fmt.Errorf("script_public_key.script_hex: %w", err)
	}
	return &externalapi.TransactionOutput{
		Value: out.Value,
		ScriptPublicKey: &externalapi.ScriptPublicKey{
			Version: out.ScriptPublicKey.Version,
			Script:  script,
		},
	}, nil
}

func decodeHash(s string) (externalapi.Hash, error) {
	var h externalapi.Hash
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}
	if len(decoded) != externalapi.DomainHashSize {
		return h, fmt.Errorf("expected %d bytes, got %d", externalapi.DomainHashSize, len(decoded))
	}
	copy(h[:], decoded)
	return h, nil
}

func decodeSubnetworkID(s string) (externalapi.SubnetworkID, error) {
	var id externalapi.SubnetworkID
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return id, err
	}
	if len(decoded) != externalapi.SubnetworkIDSize {
		return id, fmt.Errorf("expected %d bytes, got %d", externalapi.SubnetworkIDSize, len(decoded))
	}
	copy(id[:], decoded)
	return id, nil
}
