package rules

// Definition of the expected reward: the one-step reward expectation gets a
// name of its own.
//
//	\mathbb{E}[R_{t+1}\mid S_t=s]  ->  r(s)

const (
	ExpectedRewardID = "expected-reward"

	rewardExpect = `\mathbb{E}[R_{t+1}\mid S_t=s]`
	rewardFunc   = `r(s)`
)

// AppliesExpectedReward reports whether the one-step reward expectation is
// present in unnamed form.
func AppliesExpectedReward(expr string) bool {
	return containsToken(expr, rewardExpect)
}

// ApplyExpectedReward abbreviates the one-step reward expectation as r(s).
func ApplyExpectedReward(expr string) (string, error) {
	return replaceExact(ExpectedRewardID, expr, rewardExpect, rewardFunc)
}
