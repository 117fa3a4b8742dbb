package domain

// Contestant is one entrant of a single-elimination tournament:
// a model together with the response being judged.
type Contestant struct {
	// Model identifies the contestant.
	Model string `json:"model"`

	// Response is the answer text carried through the bracket.
	Response string `json:"response"`

	// ResponseTimeMs is how long the response took to produce.
	ResponseTimeMs int64 `json:"response_time_ms"`
}

// Matchup is a single pairing within a tournament round. A bye matchup
// has no second contestant and no judged decision; its sole contestant
// auto-advances. ContestantB == nil and IsBye == true always occur
// together.
type Matchup struct {
	// RoundNumber is the one-based round the matchup belongs to.
	RoundNumber int `json:"round_number"`

	// MatchIndex is the zero-based position within the round.
	MatchIndex int `json:"match_index"`

	// ContestantA is the first side of the pairing.
	ContestantA Contestant `json:"contestant_a"`

	// ContestantB is the second side, nil for a bye.
	ContestantB *Contestant `json:"contestant_b,omitempty"`

	// IsBye marks an unopposed matchup.
	IsBye bool `json:"is_bye"`

	// Winner is "A" or "B" once decided, empty before judgment.
	Winner string `json:"winner"`

	// WinnerModel is the advancing model's identifier.
	WinnerModel string `json:"winner_model"`

	// LoserModel is the eliminated model's identifier, empty for byes.
	LoserModel string `json:"loser_model"`

	// JudgeReasoning is the judge's explanation for the decision.
	JudgeReasoning string `json:"judge_reasoning"`

	// ResponseTimeMs is the judging duration in milliseconds.
	ResponseTimeMs int64 `json:"response_time_ms"`
}

// TournamentRound groups the matchups of one bracket round. Rounds form
// an ordered sequence; round n+1's contestants are exactly round n's
// winners.
type TournamentRound struct {
	// RoundNumber is the one-based round index.
	RoundNumber int `json:"round_number"`

	// Matchups are the pairings of this round, in match-index order.
	Matchups []Matchup `json:"matchups"`

	// Winners are the contestants advancing to the next round.
	Winners []Contestant `json:"winners"`

	// Eliminated lists the models knocked out this round.
	Eliminated []string `json:"eliminated"`
}

// PathResult classifies one round of a contestant's bracket path.
type PathResult string

// Path results emitted by path reconstruction.
const (
	// PathBye marks a round the model advanced through unopposed.
	PathBye PathResult = "bye"

	// PathWon marks a round the model won by judgment.
	PathWon PathResult = "won"

	// PathLost marks the round the model was eliminated in.
	PathLost PathResult = "lost"
)

// PathEntry is one round of a contestant's reconstructed path through a
// bracket.
type PathEntry struct {
	// Round is the one-based round number.
	Round int `json:"round"`

	// Opponent is the opposing model, empty for a bye.
	Opponent string `json:"opponent,omitempty"`

	// Result records how the round ended for the model.
	Result PathResult `json:"result"`
}

// MatchupWinRate summarizes one model's record across judged matchups.
type MatchupWinRate struct {
	// Model is the model identifier.
	Model string `json:"model"`

	// Wins counts matchups the model won.
	Wins int `json:"wins"`

	// Matches counts matchups the model appeared in.
	Matches int `json:"matches"`

	// WinRate is Wins / Matches, 0 when the model never played.
	WinRate float64 `json:"win_rate"`
}
