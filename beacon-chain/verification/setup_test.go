package verification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/attestation/beacon-chain/blockchain"
	"github.com/prysmaticlabs/attestation/beacon-chain/cache"
	"github.com/prysmaticlabs/attestation/beacon-chain/core/helpers"
	coreState "github.com/prysmaticlabs/attestation/beacon-chain/core/state"
	"github.com/prysmaticlabs/attestation/beacon-chain/forkchoice"
	stateTrie "github.com/prysmaticlabs/attestation/beacon-chain/state"
	"github.com/prysmaticlabs/attestation/beacon-chain/state/stategen"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/bls"
	"github.com/prysmaticlabs/attestation/shared/bytesutil"
	"github.com/prysmaticlabs/attestation/shared/params"
	"github.com/prysmaticlabs/attestation/shared/roughtime"
	"github.com/prysmaticlabs/attestation/shared/testutil"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

type mapStateProvider struct {
	states map[[32]byte]*stateTrie.BeaconState
}

func (m *mapStateProvider) State(_ context.Context, stateRoot [32]byte) (*stateTrie.BeaconState, error) {
	return m.states[stateRoot], nil
}

type recordingSlasher struct {
	lock     sync.Mutex
	received []*ethpb.IndexedAttestation
}

func (r *recordingSlasher) AcceptAttestation(att *ethpb.IndexedAttestation) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.received = append(r.received, att)
}

func (r *recordingSlasher) count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.received)
}

// harness wires a verification service around an in-memory chain whose only
// block is the genesis block.
type harness struct {
	service     *Service
	st          *stateTrie.BeaconState
	keys        []bls.SecretKey
	chain       *blockchain.Service
	genesisRoot [32]byte
	slasher     *recordingSlasher
}

type setupOpts struct {
	numValidators      uint64
	currentSlot        types.Slot
	importMaxSkipSlots uint64
	withSlasher        bool
}

func setupHarness(t *testing.T, opts setupOpts) *harness {
	if opts.numValidators == 0 {
		opts.numValidators = 64
	}
	st, keys := testutil.GenesisState(t, opts.numValidators)

	genesisRoot := bytesutil.ToBytes32([]byte("genesisblockroot"))
	stateRoot := bytesutil.ToBytes32([]byte("genesisstateroot"))
	fc := forkchoice.NewStore()
	fc.InsertBlock(&forkchoice.Block{Slot: 0, Root: genesisRoot, StateRoot: stateRoot})

	sg := stategen.New(&mapStateProvider{states: map[[32]byte]*stateTrie.BeaconState{
		stateRoot: st,
	}})

	secsPerSlot := time.Duration(params.BeaconConfig().SecondsPerSlot) * time.Second
	genesisTime := roughtime.Now().Add(-time.Duration(opts.currentSlot) * secsPerSlot).Add(-time.Second)
	chain := blockchain.NewService(&blockchain.Config{
		GenesisTime:           genesisTime,
		GenesisValidatorsRoot: bytesutil.ToBytes32(st.GenesisValidatorsRoot()),
		ForkChoiceStore:       fc,
	})

	pubkeyCache, err := cache.NewValidatorPubkeyCache(st)
	require.NoError(t, err)

	var slasherSink *recordingSlasher
	cfg := &Config{
		Clock:              chain.Clock(),
		Chain:              chain,
		ForkChoice:         fc,
		StateGen:           sg,
		PubkeyCache:        pubkeyCache,
		ImportMaxSkipSlots: opts.importMaxSkipSlots,
	}
	if opts.withSlasher {
		slasherSink = &recordingSlasher{}
		cfg.Slasher = slasherSink
	}
	service, err := NewService(cfg)
	require.NoError(t, err)

	return &harness{
		service:     service,
		st:          st,
		keys:        keys,
		chain:       chain,
		genesisRoot: genesisRoot,
		slasher:     slasherSink,
	}
}

// stateForEpoch replays empty slots on a copy of the genesis state exactly the
// way the committee resolution miss path does.
func (h *harness) stateForEpoch(t *testing.T, epoch types.Epoch) *stateTrie.BeaconState {
	st := h.st.Copy()
	var err error
	for helpers.CurrentEpoch(st)+1 < epoch {
		st, err = coreState.ProcessSlotsNoStateRoot(context.Background(), st, st.Slot()+1)
		require.NoError(t, err)
	}
	return st
}

// committeeAt resolves the committee and committee count per slot the service
// is expected to derive for the given slot and committee index.
func (h *harness) committeeAt(t *testing.T, slot types.Slot, committeeIndex types.CommitteeIndex) ([]types.ValidatorIndex, uint64) {
	epoch := helpers.SlotToEpoch(slot)
	st := h.stateForEpoch(t, epoch)

	activeIndices, err := helpers.ActiveValidatorIndices(st, epoch)
	require.NoError(t, err)
	seed, err := helpers.Seed(st, epoch, params.BeaconConfig().DomainBeaconAttester)
	require.NoError(t, err)

	committee, err := helpers.BeaconCommittee(activeIndices, seed, slot, committeeIndex)
	require.NoError(t, err)
	return committee, helpers.SlotCommitteeCount(uint64(len(activeIndices)))
}

func (h *harness) attestationData(slot types.Slot, committeeIndex types.CommitteeIndex) *ethpb.AttestationData {
	return &ethpb.AttestationData{
		Slot:            slot,
		CommitteeIndex:  committeeIndex,
		BeaconBlockRoot: h.genesisRoot[:],
		Source:          &ethpb.Checkpoint{Epoch: 0, Root: make([]byte, 32)},
		Target:          &ethpb.Checkpoint{Epoch: helpers.SlotToEpoch(slot), Root: h.genesisRoot[:]},
	}
}

func (h *harness) signAttestationData(t *testing.T, data *ethpb.AttestationData, attesters []types.ValidatorIndex) []byte {
	fork, err := h.chain.HeadFork()
	require.NoError(t, err)
	gvr := h.chain.GenesisValidatorsRoot()
	domain, err := helpers.Domain(fork, data.Target.Epoch, params.BeaconConfig().DomainBeaconAttester, gvr[:])
	require.NoError(t, err)
	root, err := helpers.ComputeSigningRoot(data, domain)
	require.NoError(t, err)

	sigs := make([]bls.Signature, len(attesters))
	for i, idx := range attesters {
		sigs[i] = h.keys[idx].Sign(root[:])
	}
	return bls.AggregateSignatures(sigs).Marshal()
}

// unaggregatedAtt builds a fully signed single-attester attestation for the
// committee position and returns it with the subnet it belongs on.
func (h *harness) unaggregatedAtt(t *testing.T, slot types.Slot, committeeIndex types.CommitteeIndex, position uint64) (*ethpb.Attestation, uint64, types.ValidatorIndex) {
	committee, committeesPerSlot := h.committeeAt(t, slot, committeeIndex)
	require.Equal(t, true, position < uint64(len(committee)), "Committee position out of range")

	bits := bitfield.NewBitlist(uint64(len(committee)))
	bits.SetBitAt(position, true)
	data := h.attestationData(slot, committeeIndex)
	att := &ethpb.Attestation{
		AggregationBits: bits,
		Data:            data,
		Signature:       h.signAttestationData(t, data, []types.ValidatorIndex{committee[position]}),
	}
	subnet := helpers.ComputeSubnetForAttestation(committeesPerSlot, att)
	return att, subnet, committee[position]
}

func (h *harness) selectionProof(t *testing.T, slot types.Slot, aggregator types.ValidatorIndex) []byte {
	fork, err := h.chain.HeadFork()
	require.NoError(t, err)
	gvr := h.chain.GenesisValidatorsRoot()
	domain, err := helpers.Domain(fork, helpers.SlotToEpoch(slot), params.BeaconConfig().DomainSelectionProof, gvr[:])
	require.NoError(t, err)
	root, err := helpers.ComputeSigningRoot(slot, domain)
	require.NoError(t, err)
	return h.keys[aggregator].Sign(root[:]).Marshal()
}

func (h *harness) signEnvelope(t *testing.T, message *ethpb.AggregateAttestationAndProof) []byte {
	fork, err := h.chain.HeadFork()
	require.NoError(t, err)
	gvr := h.chain.GenesisValidatorsRoot()
	domain, err := helpers.Domain(fork, helpers.SlotToEpoch(message.Aggregate.Data.Slot), params.BeaconConfig().DomainAggregateAndProof, gvr[:])
	require.NoError(t, err)
	root, err := helpers.ComputeSigningRoot(message, domain)
	require.NoError(t, err)
	return h.keys[message.AggregatorIndex].Sign(root[:]).Marshal()
}

// electedAggregator returns a committee member whose selection proof elects it
// for the slot.
func (h *harness) electedAggregator(t *testing.T, slot types.Slot, committee []types.ValidatorIndex) (types.ValidatorIndex, []byte) {
	for _, member := range committee {
		proof := h.selectionProof(t, slot, member)
		elected, err := helpers.IsAggregator(uint64(len(committee)), proof)
		require.NoError(t, err)
		if elected {
			return member, proof
		}
	}
	t.Fatal("No committee member elected as aggregator")
	return 0, nil
}

// aggregateAttestation builds a fully signed attestation covering the given
// committee positions.
func (h *harness) aggregateAttestation(t *testing.T, slot types.Slot, committeeIndex types.CommitteeIndex, positions []uint64) *ethpb.Attestation {
	committee, _ := h.committeeAt(t, slot, committeeIndex)

	bits := bitfield.NewBitlist(uint64(len(committee)))
	attesters := make([]types.ValidatorIndex, 0, len(positions))
	for _, p := range positions {
		require.Equal(t, true, p < uint64(len(committee)), "Committee position out of range")
		bits.SetBitAt(p, true)
		attesters = append(attesters, committee[p])
	}
	data := h.attestationData(slot, committeeIndex)
	return &ethpb.Attestation{
		AggregationBits: bits,
		Data:            data,
		Signature:       h.signAttestationData(t, data, attesters),
	}
}

// signedAggregate builds a fully signed aggregate and proof covering the
// given committee positions, published by an elected committee member.
func (h *harness) signedAggregate(t *testing.T, slot types.Slot, committeeIndex types.CommitteeIndex, positions []uint64) *ethpb.SignedAggregateAttestationAndProof {
	committee, _ := h.committeeAt(t, slot, committeeIndex)
	att := h.aggregateAttestation(t, slot, committeeIndex, positions)

	aggregator, proof := h.electedAggregator(t, slot, committee)
	message := &ethpb.AggregateAttestationAndProof{
		AggregatorIndex: aggregator,
		Aggregate:       att,
		SelectionProof:  proof,
	}
	return &ethpb.SignedAggregateAttestationAndProof{
		Message:   message,
		Signature: h.signEnvelope(t, message),
	}
}

func useMinimal(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	params.UseMinimalConfig()
}

func metricValue(t *testing.T, c prometheus.Collector) float64 {
	t.Helper()
	return promtestutil.ToFloat64(c)
}
