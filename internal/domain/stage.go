package domain

import "time"

// Mode identifies a deliberation protocol. Every stage record and every
// metrics result is tagged with exactly one mode.
type Mode string

// Supported deliberation protocols.
const (
	// ModeCouncil is the baseline protocol: every model answers, then
	// peer-ranks every other model's answer anonymously. It is also the
	// fallback kind for unrecognized modes at the metrics boundary.
	ModeCouncil Mode = "council"

	// ModeVote runs a majority vote over a fixed set of choices.
	ModeVote Mode = "vote"

	// ModeJury collects independent verdict labels from a juror panel.
	ModeJury Mode = "jury"

	// ModeDebate runs argument, critique, defense, and revision stages.
	ModeDebate Mode = "debate"

	// ModeTournament runs a single-elimination bracket over responses.
	ModeTournament Mode = "tournament"

	// ModeSynthesis produces a confidence-weighted combined answer.
	ModeSynthesis Mode = "synthesis"

	// ModeRubric scores answers against named rubric dimensions.
	ModeRubric Mode = "rubric"

	// ModeDuel is a single judged head-to-head comparison.
	ModeDuel Mode = "duel"

	// ModeChain passes the answer through sequential refinement links.
	ModeChain Mode = "chain"

	// ModeRelay hands a task between models, each free to skip its leg.
	ModeRelay Mode = "relay"

	// ModeGauntlet runs an answer through a series of pass/fail checks.
	ModeGauntlet Mode = "gauntlet"

	// ModeCluster groups scored answers into named similarity clusters.
	ModeCluster Mode = "cluster"

	// ModeBlueprint produces a structured plan before answering.
	ModeBlueprint Mode = "blueprint"

	// ModeConsensus iterates voting rounds until agreement stabilizes.
	ModeConsensus Mode = "consensus"

	// ModeRedteam probes an answer with adversarial attacks.
	ModeRedteam Mode = "redteam"
)

// String returns the protocol identifier.
func (m Mode) String() string { return string(m) }

// StageRecord is one persisted unit of protocol activity: a response, a
// verdict, a ranking round, and so on. Records are created once when a
// deliberation stage completes, never mutated, and read many times by
// analytics.
type StageRecord struct {
	// MessageID groups all stages produced for one user query.
	MessageID string `json:"message_id"`

	// StageType names the kind of activity ("response", "ranking",
	// "vote", ...). Metrics routines consume only the stage types they
	// recognize and ignore the rest.
	StageType string `json:"stage_type"`

	// StageOrder is the zero-based position of this stage within its
	// message.
	StageOrder int `json:"stage_order"`

	// Model identifies the model that produced the stage, when any did.
	Model string `json:"model"`

	// Role is the protocol role the model played ("proposer", "critic",
	// "judge", ...).
	Role string `json:"role"`

	// ParsedData is the open, protocol-dependent payload. Each metrics
	// routine owns the expected shape for its known stage types and
	// treats anything it does not recognize as absent.
	ParsedData map[string]any `json:"parsed_data"`

	// ResponseTimeMs is the wall-clock duration of the stage in
	// milliseconds.
	ResponseTimeMs int64 `json:"response_time_ms"`

	// Mode tags the protocol the stage belongs to.
	Mode Mode `json:"mode"`
}

// UsageRow is one raw timing/date record consumed by cross-protocol
// analytics. It carries only what the rollups need.
type UsageRow struct {
	// MessageID identifies the deliberation message.
	MessageID string `json:"message_id"`

	// Model identifies the responding model.
	Model string `json:"model"`

	// Mode is the protocol the message ran under.
	Mode Mode `json:"mode"`

	// ResponseTimeMs is the response duration in milliseconds.
	ResponseTimeMs int64 `json:"response_time_ms"`

	// CreatedAt is when the message was recorded.
	CreatedAt time.Time `json:"created_at"`
}
