// Package validators contains the validator lifecycle helper used by
// registry updates: initiating a validator exit through the exit queue.
package validators

import (
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/beacon-chain/core/helpers"
	stateTrie "github.com/prysmaticlabs/attestation/beacon-chain/state"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/params"
)

// InitiateValidatorExit takes in validator index and updates
// validator with correct voluntary exit parameters.
//
// Spec pseudocode definition:
//  def initiate_validator_exit(state: BeaconState, index: ValidatorIndex) -> None:
//    """
//    Initiate the exit of the validator with index ``index``.
//    """
//    # Return if validator already initiated exit
//    validator = state.validators[index]
//    if validator.exit_epoch != FAR_FUTURE_EPOCH:
//        return
//
//    # Compute exit queue epoch
//    exit_epochs = [v.exit_epoch for v in state.validators if v.exit_epoch != FAR_FUTURE_EPOCH]
//    exit_queue_epoch = max(exit_epochs + [compute_activation_exit_epoch(get_current_epoch(state))])
//    exit_queue_churn = len([v for v in state.validators if v.exit_epoch == exit_queue_epoch])
//    if exit_queue_churn >= get_validator_churn_limit(state):
//        exit_queue_epoch += Epoch(1)
//
//    # Set validator exit epoch and withdrawable epoch
//    validator.exit_epoch = exit_queue_epoch
//    validator.withdrawable_epoch = Epoch(validator.exit_epoch + MIN_VALIDATOR_WITHDRAWABILITY_DELAY)
func InitiateValidatorExit(state *stateTrie.BeaconState, idx types.ValidatorIndex) (*stateTrie.BeaconState, error) {
	validator, err := state.ValidatorAtIndex(idx)
	if err != nil {
		return nil, err
	}
	if validator.ExitEpoch != params.BeaconConfig().FarFutureEpoch {
		return state, nil
	}

	exitEpochs := []types.Epoch{}
	if err := state.ReadFromEveryValidator(func(idx int, val *ethpb.Validator) error {
		if val.ExitEpoch != params.BeaconConfig().FarFutureEpoch {
			exitEpochs = append(exitEpochs, val.ExitEpoch)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	exitQueueEpoch := helpers.ActivationExitEpoch(helpers.CurrentEpoch(state))
	for _, i := range exitEpochs {
		if exitQueueEpoch < i {
			exitQueueEpoch = i
		}
	}

	// We use the exit queue churn to determine if we have passed a churn limit.
	exitQueueChurn := uint64(0)
	if err := state.ReadFromEveryValidator(func(idx int, val *ethpb.Validator) error {
		if val.ExitEpoch == exitQueueEpoch {
			exitQueueChurn++
		}
		return nil
	}); err != nil {
		return nil, err
	}
	activeValidatorCount, err := helpers.ActiveValidatorCount(state, helpers.CurrentEpoch(state))
	if err != nil {
		return nil, errors.Wrap(err, "could not get active validator count")
	}
	currentChurn := helpers.ValidatorChurnLimit(activeValidatorCount)

	if exitQueueChurn >= currentChurn {
		exitQueueEpoch++
	}
	validator.ExitEpoch = exitQueueEpoch
	validator.WithdrawableEpoch = exitQueueEpoch + params.BeaconConfig().MinValidatorWithdrawabilityDelay
	if err := state.UpdateValidatorAtIndex(idx, validator); err != nil {
		return nil, err
	}
	return state, nil
}
