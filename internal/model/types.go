package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// RunMetadata is the scenario and GA configuration recorded in an output
// table. Values are kept as the engine wrote them.
type RunMetadata struct {
	Source          string `json:"source"`
	GraphSize       string `json:"graph_size"`
	CompressionRate string `json:"compression_rate"`
	ElitismRate     string `json:"elitism_rate"`
	TournamentSize  string `json:"tournament_size"`
	MutationRate    string `json:"mutation_rate"`
	CrossoverRate   string `json:"crossover_rate"`
	MaximumDistance string `json:"maximum_distance"`
}

// RunSummary is one aggregated output file. Summaries written by the same
// aggregate pass share a BatchID.
type RunSummary struct {
	VersionedRecord
	ID          string      `json:"id"`
	BatchID     string      `json:"batch_id"`
	File        string      `json:"file"`
	CreatedAt   string      `json:"created_at_utc"`
	Runs        int         `json:"runs"`
	Generations int         `json:"generations"`
	Meta        RunMetadata `json:"meta"`
	RunBest     []float64   `json:"run_best"`
	GlobalBest  float64     `json:"global_best"`
	Average     float64     `json:"average"`
	Min         float64     `json:"min"`
	Max         float64     `json:"max"`
	StdDev      float64     `json:"std_dev"`
}

func SummaryID(batchID, file string) string {
	return batchID + "/" + file
}
