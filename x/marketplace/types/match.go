package types

// MatchOutcome classifies the decision taken when a new order is checked
// against the book. Non-matching outcomes are still emitted on events for
// observability.
type MatchOutcome string

const (
	MatchOutcomeMatch         MatchOutcome = "match"
	MatchOutcomeNoAsk         MatchOutcome = "no-ask"
	MatchOutcomeAskExpired    MatchOutcome = "ask-expired"
	MatchOutcomeTokenReserved MatchOutcome = "token-reserved"
	MatchOutcomePriceMismatch MatchOutcome = "invalid-price"
	MatchOutcomeBidTooLow     MatchOutcome = "bid-too-low"
	MatchOutcomeNoBid         MatchOutcome = "no-bid"
)

func (o MatchOutcome) Matched() bool { return o == MatchOutcomeMatch }
