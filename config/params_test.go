package config

import "testing"

func TestNetworkParamSetsAreDistinct(t *testing.T) {
	mainnet := Mainnet()
	testnet := Testnet()
	devnet := Devnet()

	if mainnet.NetworkName == testnet.NetworkName || mainnet.NetworkName == devnet.NetworkName {
		t.Fatalf("network names must be distinct: %s, %s, %s", mainnet.NetworkName, testnet.NetworkName, devnet.NetworkName)
	}
	if testnet.StorageMassActivationDAAScore == mainnet.StorageMassActivationDAAScore {
		t.Fatalf("testnet should use a lower storage-mass activation threshold than mainnet")
	}
	if devnet.MaxBlockMass >= mainnet.MaxBlockMass {
		t.Fatalf("devnet should use a smaller mass ceiling than mainnet")
	}
}

func TestMutatingOneNetworkDoesNotAffectAnother(t *testing.T) {
	mainnet := Mainnet()
	devnet := Devnet()
	originalMainnetInputs := mainnet.MaxTxInputs

	devnet.MaxTxInputs = 999999

	if mainnet.MaxTxInputs != originalMainnetInputs {
		t.Fatalf("Devnet() mutation leaked into an independently constructed Mainnet()")
	}
}

func TestTxValidatorParamsProjection(t *testing.T) {
	p := Mainnet()
	tv := p.TxValidatorParams()
	if tv.MaxTxInputs != p.MaxTxInputs || tv.MaxTxOutputs != p.MaxTxOutputs || tv.TxVersion != p.TxVersion {
		t.Fatalf("TxValidatorParams projection mismatch: %+v vs %+v", tv, p)
	}
}

func TestBodyProcessorParamsProjection(t *testing.T) {
	p := Mainnet()
	bp := p.BodyProcessorParams()
	if bp.MaxBlockMass != p.MaxBlockMass || bp.StorageMassActivationDAAScore != p.StorageMassActivationDAAScore {
		t.Fatalf("BodyProcessorParams projection mismatch: %+v vs %+v", bp, p)
	}
}
