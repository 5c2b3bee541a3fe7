// Package epoch contains the epoch processing that committee shuffling
// depends on: validator registry updates and randao mix rotation. Balance
// updates, justification and finalization are not processed here.
package epoch

import (
	"sort"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/attestation/beacon-chain/core/validators"
	stateTrie "github.com/prysmaticlabs/attestation/beacon-chain/state"
	"github.com/prysmaticlabs/attestation/shared/params"
)

// ProcessRegistryUpdates rotates validators in and out of active pool.
// The amount to rotate is determined by the churn limit.
//
// Spec pseudocode definition:
//   def process_registry_updates(state: BeaconState) -> None:
//    # Process activation eligibility and ejections
//    for index, validator in enumerate(state.validators):
//        if is_eligible_for_activation_queue(validator):
//            validator.activation_eligibility_epoch = get_current_epoch(state) + 1
//
//        if is_active_validator(validator, get_current_epoch(state)) and validator.effective_balance <= EJECTION_BALANCE:
//            initiate_validator_exit(state, ValidatorIndex(index))
//
//    # Queue validators eligible for activation and not yet dequeued for activation
//    activation_queue = sorted([
//        index for index, validator in enumerate(state.validators)
//        if is_eligible_for_activation(state, validator)
//        # Order by the sequence of activation_eligibility_epoch setting and then index
//    ], key=lambda index: (state.validators[index].activation_eligibility_epoch, index))
//    # Dequeued validators for activation up to churn limit
//    for index in activation_queue[:get_validator_churn_limit(state)]:
//        validator = state.validators[index]
//        validator.activation_epoch = compute_activation_exit_epoch(get_current_epoch(state))
func ProcessRegistryUpdates(state *stateTrie.BeaconState) (*stateTrie.BeaconState, error) {
	currentEpoch := helpers.CurrentEpoch(state)
	farFutureEpoch := params.BeaconConfig().FarFutureEpoch
	ejectionBal := params.BeaconConfig().EjectionBalance
	activationEligibilityEpoch := currentEpoch + 1

	vals := state.Validators()
	var err error
	for idx, validator := range vals {
		// Process the validators for activation eligibility.
		if helpers.IsEligibleForActivationQueue(validator, farFutureEpoch, params.BeaconConfig().MaxEffectiveBalance) {
			validator.ActivationEligibilityEpoch = activationEligibilityEpoch
			if err := state.UpdateValidatorAtIndex(types.ValidatorIndex(idx), validator); err != nil {
				return nil, err
			}
		}

		// Process the validators for ejection.
		isActive := helpers.IsActiveValidator(validator, currentEpoch)
		belowEjectionBalance := validator.EffectiveBalance <= ejectionBal
		if isActive && belowEjectionBalance {
			state, err = validators.InitiateValidatorExit(state, types.ValidatorIndex(idx))
			if err != nil {
				return nil, errors.Wrapf(err, "could not initiate exit for validator %d", idx)
			}
		}
	}

	// Queue validators eligible for activation and not yet dequeued for activation.
	var activationQ []types.ValidatorIndex
	finalizedEpoch := state.FinalizedCheckpointEpoch()
	for idx, validator := range vals {
		if helpers.IsEligibleForActivation(validator, finalizedEpoch, farFutureEpoch) {
			activationQ = append(activationQ, types.ValidatorIndex(idx))
		}
	}

	// Order by the sequence of activation_eligibility_epoch setting and then index.
	sort.Slice(activationQ, func(i, j int) bool {
		a := vals[activationQ[i]].ActivationEligibilityEpoch
		b := vals[activationQ[j]].ActivationEligibilityEpoch
		if a == b {
			return activationQ[i] < activationQ[j]
		}
		return a < b
	})

	// Only activate just enough validators according to the activation churn limit.
	activeValidatorCount, err := helpers.ActiveValidatorCount(state, currentEpoch)
	if err != nil {
		return nil, errors.Wrap(err, "could not get active validator count")
	}
	churnLimit := helpers.ValidatorChurnLimit(activeValidatorCount)
	if churnLimit < uint64(len(activationQ)) {
		activationQ = activationQ[:churnLimit]
	}

	activationExitEpoch := helpers.ActivationExitEpoch(currentEpoch)
	for _, index := range activationQ {
		validator, err := state.ValidatorAtIndex(index)
		if err != nil {
			return nil, err
		}
		validator.ActivationEpoch = activationExitEpoch
		if err := state.UpdateValidatorAtIndex(index, validator); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// ProcessRandaoMixesReset processes the final updates to randao mixes during epoch processing.
//
// Spec pseudocode definition:
//  def process_randao_mixes_reset(state: BeaconState) -> None:
//    current_epoch = get_current_epoch(state)
//    next_epoch = Epoch(current_epoch + 1)
//    # Set randao mix
//    state.randao_mixes[next_epoch % EPOCHS_PER_HISTORICAL_VECTOR] = get_randao_mix(state, current_epoch)
func ProcessRandaoMixesReset(state *stateTrie.BeaconState) (*stateTrie.BeaconState, error) {
	currentEpoch := helpers.CurrentEpoch(state)
	nextEpoch := currentEpoch + 1

	mix, err := helpers.RandaoMix(state, currentEpoch)
	if err != nil {
		return nil, err
	}
	randaoIndex := uint64(nextEpoch % types.Epoch(params.BeaconConfig().EpochsPerHistoricalVector))
	if err := state.UpdateRandaoMixAtIndex(randaoIndex, mix); err != nil {
		return nil, err
	}

	return state, nil
}
