// Command gen-fixtures emits the concrete end-to-end conformance scenarios
// named in this module's test fixtures: a happy block plus four mutations
// of it that each trigger a specific rule error, a coinbase transaction that
// fails the coinbase-shape check, and the canonical script-builder push
// table. Each scenario is written as a standalone JSON file; the five block
// scenarios use the same wire shape isolation-cli reads.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"kasparule.dev/isolation/config"
	"kasparule.dev/isolation/externalapi"
	"kasparule.dev/isolation/hashing"
	"kasparule.dev/isolation/mass"
	"kasparule.dev/isolation/merkle"
	"kasparule.dev/isolation/txscript"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gen-fixtures", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outDir := fs.String("out", "fixtures", "output directory for generated fixture files")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := os.MkdirAll(*outDir, 0o750); err != nil {
		fmt.Fprintf(stderr, "mkdir %s: %v\n", *outDir, err)
		return 1
	}

	hasher := hashing.New()
	massCalc := mass.New()
	params := config.Devnet()

	scenarios, err := buildScenarios(hasher, massCalc, params)
	if err != nil {
		fmt.Fprintf(stderr, "build scenarios: %v\n", err)
		return 1
	}

	for name, doc := range scenarios {
		path := filepath.Join(*outDir, name+".json")
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "marshal %s: %v\n", name, err)
			return 1
		}
		if err := os.WriteFile(path, b, 0o640); err != nil {
			fmt.Fprintf(stderr, "write %s: %v\n", path, err)
			return 1
		}
		fmt.Fprintf(stdout, "wrote %s\n", path)
	}

	return 0
}

func buildScenarios(hasher hashing.Hasher, massCalc mass.Calculator, params *config.Params) (map[string]any, error) {
	out := map[string]any{}

	happy, happyBlock, err := happyBlockDoc(hasher, params)
	if err != nil {
		return nil, fmt.Errorf("happy block: %w", err)
	}
	out["01-happy-block"] = happy

	badMerkle, err := badMerkleDoc(happyBlock, hasher, params)
	if err != nil {
		return nil, fmt.Errorf("bad merkle: %w", err)
	}
	out["02-bad-merkle"] = badMerkle

	massLimit, err := massLimitDoc(happyBlock, hasher, params)
	if err != nil {
		return nil, fmt.Errorf("mass limit: %w", err)
	}
	out["03-mass-limit"] = massLimit

	dup, err := duplicateTxDoc(happyBlock, hasher, params)
	if err != nil {
		return nil, fmt.Errorf("duplicate tx: %w", err)
	}
	out["04-duplicate-tx"] = dup

	chained, err := chainedTxDoc(happyBlock, hasher, params)
	if err != nil {
		return nil, fmt.Errorf("chained tx: %w", err)
	}
	out["05-chained-tx"] = chained

	out["06-script-builder-canonical-pushes"] = scriptBuilderDoc()
	out["07-coinbase-shape"] = coinbaseShapeDoc()

	return out, nil
}

// happyBlockDoc builds one coinbase plus four native transactions, each
// spending a distinct synthetic outpoint, and returns both the JSON
// document and the domain block it was derived from (so mutation scenarios
// can start from the same base).
func happyBlockDoc(hasher hashing.Hasher, params *config.Params) (any, *externalapi.Block, error) {
	coinbase := nativeCoinbase(params, 1)
	txs := []*externalapi.Transaction{coinbase}
	for i := 1; i <= 4; i++ {
		txs = append(txs, nativeSpend(i))
	}

	block, err := finalizeBlock(txs, hasher, params, 0)
	if err != nil {
		return nil, nil, err
	}
	return blockDoc(block), block, nil
}

func badMerkleDoc(base *externalapi.Block, hasher hashing.Hasher, params *config.Params) (any, error) {
	block := cloneBlock(base)
	block.Transactions[1].Version++
	// Header keeps the original (now stale) root, so recomputation mismatches.
	return blockDoc(block), nil
}

func massLimitDoc(base *externalapi.Block, hasher hashing.Hasher, params *config.Params) (any, error) {
	block := cloneBlock(base)
	for _, in := range block.Transactions[1].Inputs {
		in.SigOpCount = 255
	}
	if err := recomputeMerkle(block, hasher, params); err != nil {
		return nil, err
	}
	return blockDoc(block), nil
}

func duplicateTxDoc(base *externalapi.Block, hasher hashing.Hasher, params *config.Params) (any, error) {
	block := cloneBlock(base)
	block.Transactions = append(block.Transactions, cloneTx(block.Transactions[1]))
	if err := recomputeMerkle(block, hasher, params); err != nil {
		return nil, err
	}
	return blockDoc(block), nil
}

func chainedTxDoc(base *externalapi.Block, hasher hashing.Hasher, params *config.Params) (any, error) {
	block := cloneBlock(base)
	tx2ID := hasher.TransactionID(block.Transactions[2])
	block.Transactions[3].Inputs[0].PreviousOutpoint = externalapi.TransactionOutpoint{
		TransactionID: tx2ID,
		Index:         0,
	}
	if err := recomputeMerkle(block, hasher, params); err != nil {
		return nil, err
	}
	return blockDoc(block), nil
}

func coinbaseShapeDoc() any {
	tx := &externalapi.Transaction{
		Version:      0,
		SubnetworkID: externalapi.SubnetworkIDCoinbase,
		Inputs: []*externalapi.TransactionInput{
			{
				PreviousOutpoint: externalapi.TransactionOutpoint{},
				SignatureScript:  nil,
				Sequence:         0,
				SigOpCount:       0,
			},
		},
		Outputs: []*externalapi.TransactionOutput{
			{Value: 1, ScriptPublicKey: &externalapi.ScriptPublicKey{Version: 0, Script: []byte{}}},
		},
	}
	return map[string]any{
		"description":  "coinbase transaction with one input: CoinbaseHasInputs(1)",
		"expected_err": "ErrCoinbaseHasInputs",
		"transaction":  transactionDoc(tx),
	}
}

func scriptBuilderDoc() any {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"one", []byte{1}},
		{"minus-one", []byte{0x81}},
		{"zero-one", []byte{0, 1}},
		{"75-bytes", make([]byte, 75)},
		{"76-bytes", make([]byte, 76)},
		{"256-bytes", make([]byte, 256)},
	}

	results := make([]map[string]any, 0, len(cases))
	for _, c := range cases {
		b := txscript.New().AddData(c.data)
		results = append(results, map[string]any{
			"name":   c.name,
			"input":  hex.EncodeToString(c.data),
			"output": hex.EncodeToString(b.Script()),
		})
	}
	return map[string]any{"cases": results}
}

// --- domain construction helpers ---

func nativeCoinbase(params *config.Params, value uint64) *externalapi.Transaction {
	return &externalapi.Transaction{
		Version:      params.TxVersion,
		SubnetworkID: externalapi.SubnetworkIDCoinbase,
		Outputs: []*externalapi.TransactionOutput{
			{Value: value, ScriptPublicKey: &externalapi.ScriptPublicKey{Version: 0, Script: []byte{txscript.OpDup, txscript.OpBlake2b}}},
		},
		Payload: encodeBlueScorePayload(1),
	}
}

func nativeSpend(seed int) *externalapi.Transaction {
	var prevID externalapi.Hash
	prevID[0] = byte(seed)
	return &externalapi.Transaction{
		Version: 0,
		Inputs: []*externalapi.TransactionInput{
			{
				PreviousOutpoint: externalapi.TransactionOutpoint{TransactionID: prevID, Index: 0},
				SignatureScript:  []byte{byte(seed)},
				Sequence:         0,
				SigOpCount:       1,
			},
		},
		Outputs: []*externalapi.TransactionOutput{
			{Value: uint64(100 * seed), ScriptPublicKey: &externalapi.ScriptPublicKey{Version: 0, Script: []byte{txscript.OpDup, txscript.OpBlake2b, txscript.OpEqualVerify}}},
		},
		SubnetworkID: externalapi.SubnetworkIDNative,
	}
}

func encodeBlueScorePayload(blueScore uint64) []byte {
	b := txscript.New().AddI64(int64(blueScore))
	return b.Script()
}

func finalizeBlock(txs []*externalapi.Transaction, hasher hashing.Hasher, params *config.Params, daaScore uint64) (*externalapi.Block, error) {
	root, err := merkle.Root(hasher, txs, daaScore > params.StorageMassActivationDAAScore)
	if err != nil {
		return nil, err
	}
	return &externalapi.Block{
		Header:       &externalapi.BlockHeader{HashMerkleRoot: root, DAAScore: daaScore},
		Transactions: txs,
	}, nil
}

func recomputeMerkle(block *externalapi.Block, hasher hashing.Hasher, params *config.Params) error {
	root, err := merkle.Root(hasher, block.Transactions, block.Header.DAAScore > params.StorageMassActivationDAAScore)
	if err != nil {
		return err
	}
	block.Header.HashMerkleRoot = root
	return nil
}

func cloneBlock(b *externalapi.Block) *externalapi.Block {
	txs := make([]*externalapi.Transaction, len(b.Transactions))
	for i, tx := range b.Transactions {
		txs[i] = cloneTx(tx)
	}
	header := *b.Header
	return &externalapi.Block{Header: &header, Transactions: txs}
}

func cloneTx(tx *externalapi.Transaction) *externalapi.Transaction {
	inputs := make([]*externalapi.TransactionInput, len(tx.Inputs))
	for i, in := range tx.Inputs {
		clone := *in
		inputs[i] = &clone
	}
	outputs := make([]*externalapi.TransactionOutput, len(tx.Outputs))
	for i, out := range tx.Outputs {
		outputs[i] = &externalapi.TransactionOutput{Value: out.Value, ScriptPublicKey: out.ScriptPublicKey.Clone()}
	}
	payload := make([]byte, len(tx.Payload))
	copy(payload, tx.Payload)
	return &externalapi.Transaction{
		Version:       tx.Version,
		Inputs:        inputs,
		Outputs:       outputs,
		LockTime:      tx.LockTime,
		SubnetworkID:  tx.SubnetworkID,
		Gas:           tx.Gas,
		Payload:       payload,
		CommittedMass: tx.CommittedMass,
	}
}

// --- JSON document helpers (mirror cmd/isolation-cli's wire shape) ---

func blockDoc(b *externalapi.Block) any {
	txs := make([]any, len(b.Transactions))
	for i, tx := range b.Transactions {
		txs[i] = transactionDoc(tx)
	}
	return map[string]any{
		"header": map[string]any{
			"hash_merkle_root": hex.EncodeToString(b.Header.HashMerkleRoot[:]),
			"daa_score":        b.Header.DAAScore,
		},
		"transactions": txs,
	}
}

func transactionDoc(tx *externalapi.Transaction) any {
	inputs := make([]any, len(tx.Inputs))
	for i, in := range tx.Inputs {
		inputs[i] = map[string]any{
			"previous_outpoint": map[string]any{
				"transaction_id": hex.EncodeToString(in.PreviousOutpoint.TransactionID[:]),
				"index":          in.PreviousOutpoint.Index,
			},
			"signature_script_hex": hex.EncodeToString(in.SignatureScript),
			"sequence":             in.Sequence,
			"sig_op_count":         in.SigOpCount,
		}
	}
	outputs := make([]any, len(tx.Outputs))
	for i, out := range tx.Outputs {
		outputs[i] = map[string]any{
			"value": out.Value,
			"script_public_key": map[string]any{
				"version":    out.ScriptPublicKey.Version,
				"script_hex": hex.EncodeToString(out.ScriptPublicKey.Script),
			},
		}
	}
	return map[string]any{
		"version":        tx.Version,
		"inputs":         inputs,
		"outputs":        outputs,
		"lock_time":      tx.LockTime,
		"subnetwork_id":  hex.EncodeToString(tx.SubnetworkID[:]),
		"gas":            tx.Gas,
		"payload_hex":    hex.EncodeToString(tx.Payload),
		"committed_mass": tx.CommittedMass,
	}
}
