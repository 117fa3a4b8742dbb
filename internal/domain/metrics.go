package domain

// CountEntry is one bucket of a value distribution, e.g. one vote
// choice and how often it was chosen. Distributions are sorted
// descending by count with ties kept in first-encounter order.
type CountEntry struct {
	// Value is the grouped value (choice, verdict label, champion, ...).
	Value string `json:"value"`

	// Count is how many times the value occurred.
	Count int `json:"count"`
}

// DimensionScore is the average of one named numeric dimension across
// all stages that carried it.
type DimensionScore struct {
	// Dimension is the rubric/cluster dimension key.
	Dimension string `json:"dimension"`

	// Average is the arithmetic mean of the dimension's scores.
	Average float64 `json:"average"`

	// Samples is how many scores contributed to the average.
	Samples int `json:"samples"`
}

// ModeMetrics is the tagged union of protocol-specific summary
// statistics. Kind identifies the populated variant; exactly one
// variant pointer is non-nil per value. Unrecognized modes produce the
// council variant.
type ModeMetrics struct {
	Kind Mode `json:"kind"`

	Council    *CouncilMetrics    `json:"council,omitempty"`
	Vote       *VoteMetrics       `json:"vote,omitempty"`
	Jury       *JuryMetrics       `json:"jury,omitempty"`
	Debate     *DebateMetrics     `json:"debate,omitempty"`
	Tournament *TournamentMetrics `json:"tournament,omitempty"`
	Synthesis  *SynthesisMetrics  `json:"synthesis,omitempty"`
	Rubric     *RubricMetrics     `json:"rubric,omitempty"`
	Duel       *DuelMetrics       `json:"duel,omitempty"`
	Chain      *ChainMetrics      `json:"chain,omitempty"`
	Relay      *RelayMetrics      `json:"relay,omitempty"`
	Gauntlet   *GauntletMetrics   `json:"gauntlet,omitempty"`
	Cluster    *ClusterMetrics    `json:"cluster,omitempty"`
	Blueprint  *BlueprintMetrics  `json:"blueprint,omitempty"`
	Consensus  *ConsensusMetrics  `json:"consensus,omitempty"`
	Redteam    *RedteamMetrics    `json:"redteam,omitempty"`
}

// CouncilMetrics summarizes baseline peer-ranking deliberations.
type CouncilMetrics struct {
	// Responses counts answer stages.
	Responses int `json:"responses"`

	// Rankings counts peer-ranking stages.
	Rankings int `json:"rankings"`

	// Models counts distinct participating models.
	Models int `json:"models"`

	// AvgResponseTimeMs is the mean stage duration.
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
}

// VoteMetrics summarizes majority-vote deliberations.
type VoteMetrics struct {
	// TotalVotes counts individual vote stages.
	TotalVotes int `json:"total_votes"`

	// Distribution is the per-choice vote count, sorted descending.
	Distribution []CountEntry `json:"distribution"`

	// TiebreakerRate is the fraction of vote rounds that needed a
	// tiebreaker.
	TiebreakerRate float64 `json:"tiebreaker_rate"`
}

// JuryMetrics summarizes juror-panel deliberations.
type JuryMetrics struct {
	// Verdicts counts individual juror verdict stages.
	Verdicts int `json:"verdicts"`

	// VerdictDistribution is the per-label verdict count, sorted
	// descending.
	VerdictDistribution []CountEntry `json:"verdict_distribution"`

	// UnanimousRate is the fraction of messages whose jurors all agreed.
	UnanimousRate float64 `json:"unanimous_rate"`
}

// DebateMetrics summarizes debate-with-revision deliberations.
type DebateMetrics struct {
	// Debates counts revision stages.
	Debates int `json:"debates"`

	// AvgRevisionDelta is the mean word-count change between the
	// original argument and its revision.
	AvgRevisionDelta float64 `json:"avg_revision_delta"`

	// DefenseAcceptRate is the fraction of defense stages whose critique
	// was accepted by the defender.
	DefenseAcceptRate float64 `json:"defense_accept_rate"`

	// AvgRevisionSimilarity is the mean normalized edit-distance
	// similarity between original and revised text, in [0, 1].
	AvgRevisionSimilarity float64 `json:"avg_revision_similarity"`
}

// TournamentMetrics summarizes bracket deliberations.
type TournamentMetrics struct {
	// TotalMatches counts judged (non-bye) matchups.
	TotalMatches int `json:"total_matches"`

	// ByeCount counts unopposed matchups.
	ByeCount int `json:"bye_count"`

	// ChampionDistribution counts how often each model won a bracket,
	// sorted descending.
	ChampionDistribution []CountEntry `json:"champion_distribution"`

	// ModelWinRates is each model's judged-matchup record, sorted
	// descending by win rate.
	ModelWinRates []MatchupWinRate `json:"model_win_rates"`
}

// SynthesisMetrics summarizes confidence-weighted synthesis
// deliberations.
type SynthesisMetrics struct {
	// Syntheses counts synthesis stages.
	Syntheses int `json:"syntheses"`

	// AvgConfidence is the mean self-reported confidence.
	AvgConfidence float64 `json:"avg_confidence"`

	// OutlierCount counts confidence reports above 0.95 or below 0.10.
	OutlierCount int `json:"outlier_count"`

	// AvgSynthesisWords is the mean word count of synthesis texts.
	AvgSynthesisWords float64 `json:"avg_synthesis_words"`
}

// RubricMetrics summarizes rubric-scored deliberations.
type RubricMetrics struct {
	// Evaluations counts rubric scoring stages.
	Evaluations int `json:"evaluations"`

	// DimensionAverages holds the per-dimension score means.
	DimensionAverages []DimensionScore `json:"dimension_averages"`
}

// DuelMetrics summarizes judged head-to-head deliberations.
type DuelMetrics struct {
	// Duels counts verdict stages.
	Duels int `json:"duels"`

	// WinnerSplit is the A/B verdict distribution, sorted descending.
	WinnerSplit []CountEntry `json:"winner_split"`

	// ModelWinRates is each model's duel record, sorted descending by
	// win rate.
	ModelWinRates []MatchupWinRate `json:"model_win_rates"`
}

// ChainMetrics summarizes sequential-refinement deliberations.
type ChainMetrics struct {
	// Links counts chain link stages.
	Links int `json:"links"`

	// AvgWordsPerLink is the mean word count across all links.
	AvgWordsPerLink float64 `json:"avg_words_per_link"`

	// WordProgression is the mean word count per stage order, index 0
	// first, showing how answers grow or shrink along the chain.
	WordProgression []float64 `json:"word_progression"`
}

// RelayMetrics summarizes relay deliberations.
type RelayMetrics struct {
	// Legs counts relay leg stages.
	Legs int `json:"legs"`

	// SkipRate is the fraction of legs the assigned model skipped.
	SkipRate float64 `json:"skip_rate"`

	// AvgResponseTimeMs is the mean leg duration.
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
}

// GauntletMetrics summarizes pass/fail gauntlet deliberations.
type GauntletMetrics struct {
	// Attempts counts gauntlet check stages.
	Attempts int `json:"attempts"`

	// TaskSuccessRate is passed checks over total checks.
	TaskSuccessRate float64 `json:"task_success_rate"`
}

// ClusterMetrics summarizes similarity-cluster deliberations.
type ClusterMetrics struct {
	// Assignments counts cluster assignment stages.
	Assignments int `json:"assignments"`

	// ClusterAverages holds the per-cluster score means.
	ClusterAverages []DimensionScore `json:"cluster_averages"`
}

// BlueprintMetrics summarizes plan-first deliberations.
type BlueprintMetrics struct {
	// Blueprints counts blueprint stages.
	Blueprints int `json:"blueprints"`

	// AvgBlueprintWords is the mean word count of blueprint texts.
	AvgBlueprintWords float64 `json:"avg_blueprint_words"`
}

// ConsensusMetrics summarizes iterative-agreement deliberations.
type ConsensusMetrics struct {
	// Rounds counts consensus voting rounds.
	Rounds int `json:"rounds"`

	// AgreementRate is the fraction of positions matching the final
	// majority across all rounds.
	AgreementRate float64 `json:"agreement_rate"`

	// FinalDistribution is the last round's position distribution,
	// sorted descending.
	FinalDistribution []CountEntry `json:"final_distribution"`
}

// RedteamMetrics summarizes adversarial-probe deliberations.
type RedteamMetrics struct {
	// Probes counts attack stages.
	Probes int `json:"probes"`

	// FlagRate is flagged probes over total probes.
	FlagRate float64 `json:"flag_rate"`
}
